package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentGateway abstracts the online payment provider so the fee service
// can be exercised without network access.
type PaymentGateway interface {
	CreateOrder(amountPaise int64, currency, receipt string, notes map[string]interface{}) (string, error)
}

// RazorpayGateway is the production gateway.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create failed: %w", err)
	}
	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return id, nil
}

// UnconfiguredGateway stands in when no Razorpay credentials are set; every
// order attempt fails with a conflict the caller can render.
type UnconfiguredGateway struct{}

func (UnconfiguredGateway) CreateOrder(int64, string, string, map[string]interface{}) (string, error) {
	return "", Conflictf("Online payments are not configured")
}

// VerifyPaymentSignature checks the checkout callback signature:
// HMAC-SHA256 over "order_id|payment_id" with the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
