package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/models"
	"github.com/imadityagolu/mct-5-amazone/repository"
)

// WishlistService reconciles a user's wishlist. Same shape as the cart but
// without quantities: a duplicate add is an error, never a silent merge.
type WishlistService struct {
	repo repository.WishlistRepository
	log  zerolog.Logger
}

func NewWishlistService(repo repository.WishlistRepository, log zerolog.Logger) *WishlistService {
	return &WishlistService{repo: repo, log: log}
}

// Add stores the product, failing DUPLICATE when its id is already present.
func (s *WishlistService) Add(ctx context.Context, userID string, product models.Product) (models.Product, error) {
	if err := requireUser(userID); err != nil {
		return models.Product{}, err
	}

	if err := s.repo.AddItem(ctx, userID, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Get returns the full wishlist, last-fetch-wins.
func (s *WishlistService) Get(ctx context.Context, userID string) ([]models.Product, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, userID)
}

// Remove deletes the record unconditionally.
func (s *WishlistService) Remove(ctx context.Context, userID string, productID int) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, userID, productID)
}
