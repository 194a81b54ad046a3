// Package services holds the storefront's business rules: cart and wishlist
// reconciliation, catalog-backed checkout, profiles and accounts. Services
// talk to the document store only through the repository interfaces, so the
// rules are testable without a live backend.
package services

import (
	"github.com/imadityagolu/mct-5-amazone/apperr"
)

// requireUser gates every operation that needs a signed-in identity. With no
// identity the operation fails before any remote call is made.
func requireUser(userID string) error {
	if userID == "" {
		return apperr.New(apperr.CodeNotAuthenticated, "user not authenticated")
	}
	return nil
}
