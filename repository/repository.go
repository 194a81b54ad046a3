// Package repository defines the document-store contracts the services
// consume, plus their MongoDB implementations. Consumers depend on these
// interfaces, not on the driver.
package repository

import (
	"context"

	"github.com/imadityagolu/mct-5-amazone/models"
)

// CartRepository is per-user cart storage keyed by product id.
type CartRepository interface {
	// AddOrIncrement atomically creates the record with quantity 1 or
	// increments the stored quantity by 1, returning the resulting item.
	AddOrIncrement(ctx context.Context, userID string, product models.Product) (models.CartItem, error)
	ListItems(ctx context.Context, userID string) ([]models.CartItem, error)
	// SetQuantity merge-writes only the quantity field. Fails NOT_FOUND when
	// no record exists.
	SetQuantity(ctx context.Context, userID string, productID, quantity int) error
	// DeleteItem removes the record unconditionally and reports whether a
	// record existed.
	DeleteItem(ctx context.Context, userID string, productID int) (bool, error)
	Clear(ctx context.Context, userID string) error
}

// WishlistRepository is per-user wishlist storage keyed by product id.
type WishlistRepository interface {
	// AddItem fails DUPLICATE when the product id already exists; the
	// existing record is left untouched.
	AddItem(ctx context.Context, userID string, product models.Product) error
	ListItems(ctx context.Context, userID string) ([]models.Product, error)
	DeleteItem(ctx context.Context, userID string, productID int) error
}

// ProfileRepository stores one free-form profile document per user.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (models.Profile, error)
	// Merge writes only the fields set on profile, preserving the rest of
	// the remote record.
	Merge(ctx context.Context, userID string, profile models.Profile) error
}

// UserRepository stores auth accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// OrderRepository stores checkout records.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	MarkPaid(ctx context.Context, userID, gatewayOrderID, paymentID string) (models.Order, error)
}
