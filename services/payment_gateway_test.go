package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func signOrder(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	const secret = "test-secret"

	sig := signOrder("order_123", "pay_456", secret)
	require.True(t, VerifyPaymentSignature("order_123", "pay_456", sig, secret))

	require.False(t, VerifyPaymentSignature("order_123", "pay_456", sig, "other-secret"))
	require.False(t, VerifyPaymentSignature("order_999", "pay_456", sig, secret))
	require.False(t, VerifyPaymentSignature("order_123", "pay_456", "deadbeef", secret))
	require.False(t, VerifyPaymentSignature("order_123", "pay_456", "", secret))
}

func TestUnconfiguredGatewayRejectsOrders(t *testing.T) {
	_, err := UnconfiguredGateway{}.CreateOrder(100, "INR", "rcpt", nil)
	require.Error(t, err)
	require.Equal(t, KindConflict, KindOf(err))
}
