// Package cache holds the cart snapshot cache. A miss or cache failure is
// never surfaced to callers; the service falls back to the store.
package cache

import (
	"context"
	"errors"

	"github.com/imadityagolu/mct-5-amazone/models"
)

type CartCache interface {
	Get(ctx context.Context, userID string) (models.Cart, error)
	Set(ctx context.Context, userID string, cart models.Cart) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
