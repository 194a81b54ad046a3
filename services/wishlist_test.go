package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
)

type mockWishlistRepo struct {
	items []models.Product
	calls int
}

func (m *mockWishlistRepo) AddItem(_ context.Context, _ string, p models.Product) error {
	m.calls++
	for _, item := range m.items {
		if item.ID == p.ID {
			return apperr.New(apperr.CodeDuplicate, "item already in wishlist")
		}
	}
	m.items = append(m.items, p)
	return nil
}

func (m *mockWishlistRepo) ListItems(context.Context, string) ([]models.Product, error) {
	m.calls++
	out := make([]models.Product, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockWishlistRepo) DeleteItem(_ context.Context, _ string, productID int) error {
	m.calls++
	for i, item := range m.items {
		if item.ID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestWishlistAddAndFetch(t *testing.T) {
	repo := &mockWishlistRepo{}
	svc := NewWishlistService(repo, zerolog.Nop())
	ctx := context.Background()

	added, err := svc.Add(ctx, "u1", headphones)
	require.NoError(t, err)
	assert.Equal(t, headphones, added)

	items, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.Product{headphones}, items)
}

func TestWishlistDuplicateAddFailsAndKeepsRecord(t *testing.T) {
	repo := &mockWishlistRepo{items: []models.Product{headphones}}
	svc := NewWishlistService(repo, zerolog.Nop())

	changed := headphones
	changed.Price = 1

	_, err := svc.Add(context.Background(), "u1", changed)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDuplicate, apperr.CodeOf(err))

	// The existing record is untouched, not overwritten.
	require.Len(t, repo.items, 1)
	assert.Equal(t, headphones.Price, repo.items[0].Price)
}

func TestWishlistRemoveIsUnconditional(t *testing.T) {
	repo := &mockWishlistRepo{items: []models.Product{headphones}}
	svc := NewWishlistService(repo, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "u1", headphones.ID))
	require.NoError(t, svc.Remove(ctx, "u1", headphones.ID))
	assert.Empty(t, repo.items)
}

func TestWishlistOperationsRequireAuthentication(t *testing.T) {
	repo := &mockWishlistRepo{}
	svc := NewWishlistService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Add(ctx, "", headphones)
	assert.Equal(t, apperr.CodeNotAuthenticated, apperr.CodeOf(err))

	_, err = svc.Get(ctx, "")
	assert.Equal(t, apperr.CodeNotAuthenticated, apperr.CodeOf(err))

	err = svc.Remove(ctx, "", 1)
	assert.Equal(t, apperr.CodeNotAuthenticated, apperr.CodeOf(err))

	assert.Zero(t, repo.calls)
}
