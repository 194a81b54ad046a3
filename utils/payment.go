package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/imadityagolu/mct-5-amazone/apperr"
)

// RazorpayGateway opens hosted-checkout orders and verifies the signatures
// the checkout widget returns.
type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// KeyID is the public key the checkout widget is initialized with.
func (g *RazorpayGateway) KeyID() string { return g.keyID }

// CreateOrder opens a gateway order for the given amount in paise.
func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeRemote, err, "creating payment order")
	}
	id, ok := body["id"].(string)
	if !ok {
		return "", apperr.New(apperr.CodeRemote, "payment order response missing id")
	}
	return id, nil
}

// VerifySignature checks a checkout callback signature.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	return VerifyRazorpaySignature(gatewayOrderID, paymentID, signature, g.keySecret)
}

// VerifyRazorpaySignature validates the HMAC-SHA256 of "orderID|paymentID"
// under the key secret, as documented by the gateway.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
