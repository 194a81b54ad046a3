package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order payment lifecycle.
const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
)

// Order is a checkout record. It is created pending when a gateway order is
// opened and marked paid once the payment signature verifies.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Items          []CartItem         `bson:"items" json:"items"`
	Amount         int64              `bson:"amount" json:"amount"` // paise
	Currency       string             `bson:"currency" json:"currency"`
	Receipt        string             `bson:"receipt" json:"receipt"`
	GatewayOrderID string             `bson:"gateway_order_id" json:"gateway_order_id"`
	PaymentID      string             `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
