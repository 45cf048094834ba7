package services

import (
	"testing"

	"wardrobe-api/models"
)

func TestCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole dollars", 35, 3500},
		{"rounds instead of truncating", 19.99, 1999},
		{"accumulated float error", 123.45, 12345},
		{"single cent", 0.01, 1},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cents(tt.amount); got != tt.want {
				t.Errorf("Cents(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestValidGatewaySignature(t *testing.T) {
	const secret = "gateway-secret"
	signature := GatewaySignature("order_abc", "pay_xyz", secret)

	t.Run("accepts a matching signature", func(t *testing.T) {
		if !ValidGatewaySignature("order_abc", "pay_xyz", signature, secret) {
			t.Error("expected signature to be accepted")
		}
	})

	t.Run("rejects a signature for a different payment", func(t *testing.T) {
		if ValidGatewaySignature("order_abc", "pay_other", signature, secret) {
			t.Error("expected signature to be rejected")
		}
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		if ValidGatewaySignature("order_abc", "pay_xyz", signature+"00", secret) {
			t.Error("expected signature to be rejected")
		}
	})

	t.Run("rejects a signature made with another secret", func(t *testing.T) {
		if ValidGatewaySignature("order_abc", "pay_xyz", signature, "wrong-secret") {
			t.Error("expected signature to be rejected")
		}
	})
}

func TestMatchesGatewayOrder(t *testing.T) {
	t.Run("accepts the callback for the stored gateway order", func(t *testing.T) {
		order := models.Order{PaymentMethod: "Razorpay", GatewayOrderID: "order_abc"}
		if !MatchesGatewayOrder(order, "order_abc") {
			t.Error("expected callback to match")
		}
	})

	t.Run("rejects a callback for a different gateway order", func(t *testing.T) {
		order := models.Order{PaymentMethod: "Razorpay", GatewayOrderID: "order_abc"}
		if MatchesGatewayOrder(order, "order_other") {
			t.Error("expected callback for another payment to be rejected")
		}
	})

	t.Run("rejects replay against an order without a gateway id", func(t *testing.T) {
		order := models.Order{PaymentMethod: "COD"}
		if MatchesGatewayOrder(order, "order_abc") {
			t.Error("expected non-gateway order to be rejected")
		}
	})

	t.Run("rejects an empty callback id even if the stored id is empty", func(t *testing.T) {
		order := models.Order{PaymentMethod: "Razorpay"}
		if MatchesGatewayOrder(order, "") {
			t.Error("expected empty ids to be rejected")
		}
	})
}
