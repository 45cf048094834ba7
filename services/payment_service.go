package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"

	"wardrobe-api/models"
)

// Cents converts a dollar amount to the smallest currency unit the payment
// gateways bill in. Rounded, not truncated: 19.99 must bill as 1999.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// GatewaySignature computes the HMAC-SHA256 hex signature a gateway
// attaches to its orderID|paymentID callback.
func GatewaySignature(gatewayOrderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidGatewaySignature reports whether a callback signature matches in
// constant time.
func ValidGatewaySignature(gatewayOrderID, paymentID, signature, secret string) bool {
	expected := GatewaySignature(gatewayOrderID, paymentID, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}

// MatchesGatewayOrder reports whether a verified gateway callback actually
// refers to the order being settled. The signature only covers gateway ids,
// so without this check a valid callback for one cheap payment could be
// replayed against any other unpaid order the user owns.
func MatchesGatewayOrder(order models.Order, gatewayOrderID string) bool {
	return order.PaymentMethod == "Razorpay" &&
		order.GatewayOrderID != "" &&
		gatewayOrderID == order.GatewayOrderID
}
