package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
	"github.com/imadityagolu/mct-5-amazone/repository"
)

// PaymentGateway opens hosted-checkout orders and verifies the signatures
// the widget returns.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(amount int64, currency, receipt string) (string, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// Emailer sends the order confirmation mail.
type Emailer interface {
	SendOrderConfirmationEmail(toEmail string, order models.Order) error
}

// OrderService initiates checkout against the payment gateway and records
// the resulting orders.
type OrderService struct {
	orders  repository.OrderRepository
	cart    *CartService
	gateway PaymentGateway
	email   Emailer
	log     zerolog.Logger
}

func NewOrderService(orders repository.OrderRepository, cart *CartService, gateway PaymentGateway, email Emailer, log zerolog.Logger) *OrderService {
	return &OrderService{
		orders:  orders,
		cart:    cart,
		gateway: gateway,
		email:   email,
		log:     log,
	}
}

// CheckoutResponse carries everything the hosted widget needs to open.
type CheckoutResponse struct {
	OrderID        string `json:"order_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"key_id"`
}

// Checkout totals the cart by full reduction, opens a gateway order for that
// amount in paise, and persists a pending order record.
func (s *OrderService) Checkout(ctx context.Context, userID string) (CheckoutResponse, error) {
	if err := requireUser(userID); err != nil {
		return CheckoutResponse{}, err
	}

	cart, err := s.cart.Get(ctx, userID)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(cart.Items) == 0 {
		return CheckoutResponse{}, apperr.New(apperr.CodeValidation, "cart is empty")
	}

	amount := int64(math.Round(cart.Total * 100))
	receipt := uuid.NewString()

	gatewayOrderID, err := s.gateway.CreateOrder(amount, "INR", receipt)
	if err != nil {
		return CheckoutResponse{}, err
	}

	order, err := s.orders.Create(ctx, models.Order{
		UserID:         userID,
		Items:          cart.Items,
		Amount:         amount,
		Currency:       "INR",
		Receipt:        receipt,
		GatewayOrderID: gatewayOrderID,
		Status:         models.OrderStatusCreated,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return CheckoutResponse{}, err
	}

	return CheckoutResponse{
		OrderID:        order.ID.Hex(),
		GatewayOrderID: order.GatewayOrderID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		KeyID:          s.gateway.KeyID(),
	}, nil
}

// ConfirmPayment verifies the widget's callback signature, marks the order
// paid, clears the cart and sends the confirmation mail.
func (s *OrderService) ConfirmPayment(ctx context.Context, userID, email, gatewayOrderID, paymentID, signature string) (models.Order, error) {
	if err := requireUser(userID); err != nil {
		return models.Order{}, err
	}

	if !s.gateway.VerifySignature(gatewayOrderID, paymentID, signature) {
		return models.Order{}, apperr.New(apperr.CodeValidation, "payment signature mismatch")
	}

	order, err := s.orders.MarkPaid(ctx, userID, gatewayOrderID, paymentID)
	if err != nil {
		return models.Order{}, err
	}

	// The order is paid either way; a failed cart clear or mail must not
	// undo the confirmation.
	if err := s.cart.Clear(ctx, userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("clearing cart after payment failed")
	}

	if s.email != nil && email != "" {
		go func(toEmail string, order models.Order) {
			if err := s.email.SendOrderConfirmationEmail(toEmail, order); err != nil {
				s.log.Error().Err(err).Str("email", toEmail).Msg("sending order confirmation failed")
			}
		}(email, order)
	}

	return order, nil
}

// List returns the user's order history.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, userID)
}
