package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
	"github.com/imadityagolu/mct-5-amazone/services"
)

// OrderAPI is what the controller needs from the order service.
type OrderAPI interface {
	Checkout(ctx context.Context, userID string) (services.CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, userID, email, gatewayOrderID, paymentID, signature string) (models.Order, error)
	List(ctx context.Context, userID string) ([]models.Order, error)
}

// OrderController handles checkout initiation and order history.
type OrderController struct {
	Orders OrderAPI
	Log    zerolog.Logger
}

func NewOrderController(orders OrderAPI, log zerolog.Logger) *OrderController {
	return &OrderController{Orders: orders, Log: log}
}

// Checkout totals the cart and opens a payment-gateway order for the hosted
// widget.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	resp, err := oc.Orders.Checkout(r.Context(), userID)
	if err != nil {
		writeError(w, oc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type confirmPaymentRequest struct {
	GatewayOrderID string `json:"razorpay_order_id" validate:"required"`
	PaymentID      string `json:"razorpay_payment_id" validate:"required"`
	Signature      string `json:"razorpay_signature" validate:"required"`
}

// ConfirmPayment verifies the widget callback and marks the order paid.
func (oc *OrderController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID, email := sessionFrom(r)

	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, oc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, oc.Log, apperr.Wrap(apperr.CodeValidation, err, "invalid input"))
		return
	}

	order, err := oc.Orders.ConfirmPayment(r.Context(), userID, email, req.GatewayOrderID, req.PaymentID, req.Signature)
	if err != nil {
		writeError(w, oc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GetOrders retrieves the authenticated user's order history.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	orders, err := oc.Orders.List(r.Context(), userID)
	if err != nil {
		writeError(w, oc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
