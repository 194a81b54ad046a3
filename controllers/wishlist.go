package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/catalog"
	"github.com/imadityagolu/mct-5-amazone/models"
)

// WishlistAPI is what the controller needs from the wishlist service.
type WishlistAPI interface {
	Add(ctx context.Context, userID string, product models.Product) (models.Product, error)
	Get(ctx context.Context, userID string) ([]models.Product, error)
	Remove(ctx context.Context, userID string, productID int) error
}

// WishlistController handles wishlist-related requests.
type WishlistController struct {
	Wishlists WishlistAPI
	Catalog   *catalog.Catalog
	Log       zerolog.Logger
}

func NewWishlistController(wishlists WishlistAPI, cat *catalog.Catalog, log zerolog.Logger) *WishlistController {
	return &WishlistController{Wishlists: wishlists, Catalog: cat, Log: log}
}

type addToWishlistRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// AddToWishlist stores a catalog product on the user's wishlist. A product
// already present fails with a conflict and is left untouched.
func (wc *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	var req addToWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, wc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, wc.Log, apperr.Wrap(apperr.CodeValidation, err, "invalid input"))
		return
	}

	product, ok := wc.Catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, wc.Log, apperr.New(apperr.CodeNotFound, "product not found"))
		return
	}

	added, err := wc.Wishlists.Add(r.Context(), userID, product)
	if err != nil {
		writeError(w, wc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, added)
}

// GetWishlist retrieves the user's wishlist.
func (wc *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	items, err := wc.Wishlists.Get(r.Context(), userID)
	if err != nil {
		writeError(w, wc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// RemoveFromWishlist deletes a wishlist record unconditionally.
func (wc *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	productID, err := strconv.Atoi(mux.Vars(r)["product_id"])
	if err != nil {
		writeError(w, wc.Log, apperr.New(apperr.CodeValidation, "invalid product id"))
		return
	}

	if err := wc.Wishlists.Remove(r.Context(), userID, productID); err != nil {
		writeError(w, wc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item removed from wishlist"})
}
