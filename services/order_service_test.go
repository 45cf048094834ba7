package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wardrobe-api/models"
)

func completeAddress() models.Address {
	return models.Address{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "5550100",
		Street:     "12 Analytical Row",
		City:       "London",
		PostalCode: "EC1A",
	}
}

func TestValidateAddress(t *testing.T) {
	t.Run("complete address passes", func(t *testing.T) {
		if missing := ValidateAddress(completeAddress()); missing != nil {
			t.Errorf("expected no missing fields, got %v", missing)
		}
	})

	t.Run("reports a missing city", func(t *testing.T) {
		address := completeAddress()
		address.City = ""
		missing := ValidateAddress(address)
		if !reflect.DeepEqual(missing, []string{"city"}) {
			t.Errorf("expected [city], got %v", missing)
		}
	})

	t.Run("reports every missing field", func(t *testing.T) {
		missing := ValidateAddress(models.Address{Email: "ada@example.com"})
		want := []string{"address", "city", "fullName", "phone", "postalCode"}
		if !reflect.DeepEqual(missing, want) {
			t.Errorf("expected %v, got %v", want, missing)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		address := completeAddress()
		address.Email = "not-an-email"
		missing := ValidateAddress(address)
		if !reflect.DeepEqual(missing, []string{"email"}) {
			t.Errorf("expected [email], got %v", missing)
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		if !ValidStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}

	for _, status := range []string{"", "Cancelled", "shipped", "Order placed"} {
		if ValidStatus(status) {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestExpandItems(t *testing.T) {
	hoodie := models.Product{
		ID:    primitive.NewObjectID(),
		Name:  "Hoodie",
		Price: 20,
		Image: []string{"/uploads/hoodie-front.png", "/uploads/hoodie-back.png"},
	}
	catalog := MapCatalog{hoodie.ID.Hex(): hoodie}

	t.Run("freezes product fields", func(t *testing.T) {
		snapshot := models.CartData{hoodie.ID.Hex(): {"M": 2}}
		items := ExpandItems(snapshot, catalog)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}

		want := models.OrderItem{
			ProductID: hoodie.ID,
			Name:      "Hoodie",
			Image:     "/uploads/hoodie-front.png",
			Price:     20,
			Size:      "M",
			Quantity:  2,
		}
		if items[0] != want {
			t.Errorf("expected %+v, got %+v", want, items[0])
		}
	})

	t.Run("one item per size", func(t *testing.T) {
		snapshot := models.CartData{hoodie.ID.Hex(): {"M": 1, "L": 3}}
		items := ExpandItems(snapshot, catalog)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		// Sizes come out sorted.
		if items[0].Size != "L" || items[1].Size != "M" {
			t.Errorf("unexpected size order: %s, %s", items[0].Size, items[1].Size)
		}
	})

	t.Run("skips products gone from the catalog", func(t *testing.T) {
		snapshot := models.CartData{
			hoodie.ID.Hex(): {"M": 1},
			"deleted":       {"M": 5},
		}
		items := ExpandItems(snapshot, catalog)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("skips non-positive quantities", func(t *testing.T) {
		snapshot := models.CartData{hoodie.ID.Hex(): {"M": 0, "L": -1}}
		if items := ExpandItems(snapshot, catalog); len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
	})
}

func TestNewOrder(t *testing.T) {
	hoodie := models.Product{ID: primitive.NewObjectID(), Name: "Hoodie", Price: 20}
	jeans := models.Product{ID: primitive.NewObjectID(), Name: "Jeans", Price: 15}
	catalog := MapCatalog{hoodie.ID.Hex(): hoodie, jeans.ID.Hex(): jeans}
	userID := primitive.NewObjectID()
	now := time.Now()

	t.Run("starts unpaid in the initial state", func(t *testing.T) {
		snapshot := models.CartData{hoodie.ID.Hex(): {"M": 2}, jeans.ID.Hex(): {"32": 1}}
		order, missing := NewOrder(userID, snapshot, catalog, completeAddress(), "COD", now)
		if missing != nil {
			t.Fatalf("expected no missing fields, got %v", missing)
		}
		if order.Status != StatusOrderPlaced {
			t.Errorf("expected status %q, got %q", StatusOrderPlaced, order.Status)
		}
		if order.Payment {
			t.Error("expected payment to start unsettled")
		}
		if order.PaymentMethod != "COD" {
			t.Errorf("expected payment method COD, got %q", order.PaymentMethod)
		}
		if order.UserID != userID {
			t.Errorf("expected owner %s, got %s", userID.Hex(), order.UserID.Hex())
		}
		if order.Amount != 90 {
			t.Errorf("expected amount 90, got %v", order.Amount)
		}
		if len(order.Items) != 2 {
			t.Errorf("expected 2 line items, got %d", len(order.Items))
		}
	})

	t.Run("empty cart is still a valid order", func(t *testing.T) {
		order, missing := NewOrder(userID, models.CartData{}, catalog, completeAddress(), "COD", now)
		if missing != nil {
			t.Fatalf("expected no missing fields, got %v", missing)
		}
		if len(order.Items) != 0 {
			t.Errorf("expected no line items, got %d", len(order.Items))
		}
		if order.Amount != DeliveryFee {
			t.Errorf("expected amount %v, got %v", DeliveryFee, order.Amount)
		}
		if order.Status != StatusOrderPlaced || order.Payment {
			t.Errorf("unexpected order state: status=%q payment=%v", order.Status, order.Payment)
		}
	})

	t.Run("incomplete address builds nothing", func(t *testing.T) {
		address := completeAddress()
		address.City = ""
		order, missing := NewOrder(userID, models.CartData{}, catalog, address, "COD", now)
		if !reflect.DeepEqual(missing, []string{"city"}) {
			t.Errorf("expected [city], got %v", missing)
		}
		if !order.ID.IsZero() {
			t.Error("expected no order to be built")
		}
	})
}

func TestSettlePayment(t *testing.T) {
	order := models.Order{ID: primitive.NewObjectID(), PaymentMethod: "Stripe", Status: StatusOrderPlaced}

	t.Run("failure keeps the order unpaid and the cart", func(t *testing.T) {
		settled, clear := SettlePayment(order, false)
		if settled.Payment {
			t.Error("expected payment to stay unsettled")
		}
		if clear {
			t.Error("expected the cart to be kept for a retry")
		}
		if settled.Status != StatusOrderPlaced {
			t.Errorf("expected status %q, got %q", StatusOrderPlaced, settled.Status)
		}
	})

	t.Run("success settles and clears the cart", func(t *testing.T) {
		settled, clear := SettlePayment(order, true)
		if !settled.Payment {
			t.Error("expected payment to be settled")
		}
		if !clear {
			t.Error("expected the cart to be cleared")
		}
	})
}

func TestApplyStatus(t *testing.T) {
	t.Run("overwrites without requiring forward progression", func(t *testing.T) {
		order := models.Order{Status: StatusDelivered}
		updated, err := ApplyStatus(order, StatusShipped)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != StatusShipped {
			t.Errorf("expected status %q, got %q", StatusShipped, updated.Status)
		}
	})

	t.Run("rejects values outside the enumeration", func(t *testing.T) {
		order := models.Order{Status: StatusPacking}
		updated, err := ApplyStatus(order, "Cancelled")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if updated.Status != StatusPacking {
			t.Errorf("expected status to be unchanged, got %q", updated.Status)
		}
	})
}
