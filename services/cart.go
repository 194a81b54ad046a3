package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/cache"
	"github.com/imadityagolu/mct-5-amazone/models"
	"github.com/imadityagolu/mct-5-amazone/repository"
)

// CartService reconciles a user's cart against the document store. Totals
// are never stored: every materialized cart recomputes them by full
// reduction over the items.
type CartService struct {
	repo  repository.CartRepository
	cache cache.CartCache
	log   zerolog.Logger
}

func NewCartService(repo repository.CartRepository, cartCache cache.CartCache, log zerolog.Logger) *CartService {
	return &CartService{
		repo:  repo,
		cache: cartCache,
		log:   log,
	}
}

// Add creates the cart record with quantity 1 or increments an existing one,
// returning the resulting item.
func (s *CartService) Add(ctx context.Context, userID string, product models.Product) (models.CartItem, error) {
	if err := requireUser(userID); err != nil {
		return models.CartItem{}, err
	}

	item, err := s.repo.AddOrIncrement(ctx, userID, product)
	if err != nil {
		return models.CartItem{}, err
	}

	s.invalidate(userID)
	return item, nil
}

// Get materializes the full cart, last-fetch-wins. A cached snapshot is
// served when present; cache failures fall through to the store.
func (s *CartService) Get(ctx context.Context, userID string) (models.Cart, error) {
	if err := requireUser(userID); err != nil {
		return models.Cart{}, err
	}

	if s.cache != nil {
		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("cart cache read failed")
		}
	}

	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}
	cart := models.NewCart(items)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, cart); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("cart cache write failed")
		}
	}
	return cart, nil
}

// Remove deletes the record unconditionally; a missing record is not an
// error.
func (s *CartService) Remove(ctx context.Context, userID string, productID int) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	if _, err := s.repo.DeleteItem(ctx, userID, productID); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

// UpdateQuantity merge-writes a positive quantity, deletes the record for
// quantity <= 0 (reporting 0), and fails NOT_FOUND when no record exists.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID, quantity int) (int, error) {
	if err := requireUser(userID); err != nil {
		return 0, err
	}

	if quantity <= 0 {
		deleted, err := s.repo.DeleteItem(ctx, userID, productID)
		if err != nil {
			return 0, err
		}
		if !deleted {
			return 0, apperr.New(apperr.CodeNotFound, "item not found")
		}
		s.invalidate(userID)
		return 0, nil
	}

	if err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return 0, err
	}

	s.invalidate(userID)
	return quantity, nil
}

// Clear empties the cart, used once a payment is confirmed.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	if err := s.repo.Clear(ctx, userID); err != nil {
		return err
	}

	s.invalidate(userID)
	return nil
}

func (s *CartService) invalidate(userID string) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cart cache invalidate failed")
	}
}
