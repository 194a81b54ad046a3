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

// CartAPI is what the controller needs from the cart service.
type CartAPI interface {
	Add(ctx context.Context, userID string, product models.Product) (models.CartItem, error)
	Get(ctx context.Context, userID string) (models.Cart, error)
	Remove(ctx context.Context, userID string, productID int) error
	UpdateQuantity(ctx context.Context, userID string, productID, quantity int) (int, error)
}

// CartController handles cart-related requests. Products are resolved from
// the catalog server-side so clients cannot set their own prices.
type CartController struct {
	Carts   CartAPI
	Catalog *catalog.Catalog
	Log     zerolog.Logger
}

func NewCartController(carts CartAPI, cat *catalog.Catalog, log zerolog.Logger) *CartController {
	return &CartController{Carts: carts, Catalog: cat, Log: log}
}

type addToCartRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// AddToCart adds one unit of a catalog product to the user's cart.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, cc.Log, apperr.Wrap(apperr.CodeValidation, err, "invalid input"))
		return
	}

	product, ok := cc.Catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, cc.Log, apperr.New(apperr.CodeNotFound, "product not found"))
		return
	}

	item, err := cc.Carts.Add(r.Context(), userID, product)
	if err != nil {
		writeError(w, cc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GetCart retrieves the user's cart with derived totals.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	cart, err := cc.Carts.Get(r.Context(), userID)
	if err != nil {
		writeError(w, cc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// RemoveFromCart deletes a cart record unconditionally.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	productID, err := strconv.Atoi(mux.Vars(r)["product_id"])
	if err != nil {
		writeError(w, cc.Log, apperr.New(apperr.CodeValidation, "invalid product id"))
		return
	}

	if err := cc.Carts.Remove(r.Context(), userID, productID); err != nil {
		writeError(w, cc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item removed from cart"})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets a cart record's quantity; zero or less removes it.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	productID, err := strconv.Atoi(mux.Vars(r)["product_id"])
	if err != nil {
		writeError(w, cc.Log, apperr.New(apperr.CodeValidation, "invalid product id"))
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}

	quantity, err := cc.Carts.UpdateQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		writeError(w, cc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"product_id": productID, "quantity": quantity})
}
