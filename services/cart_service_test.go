package services

import (
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wardrobe-api/models"
)

func testCatalog() (MapCatalog, string, string) {
	hoodie := models.Product{ID: primitive.NewObjectID(), Name: "Hoodie", Price: 20, Image: []string{"/uploads/hoodie.png"}}
	jeans := models.Product{ID: primitive.NewObjectID(), Name: "Jeans", Price: 15, Image: []string{"/uploads/jeans.png"}}
	catalog := MapCatalog{
		hoodie.ID.Hex(): hoodie,
		jeans.ID.Hex():  jeans,
	}
	return catalog, hoodie.ID.Hex(), jeans.ID.Hex()
}

func TestAddItem(t *testing.T) {
	t.Run("increments count by one", func(t *testing.T) {
		snapshot := models.CartData{"p1": {"M": 2}}
		before := Count(snapshot)

		next := AddItem(snapshot, "p1", "M")
		if got := Count(next); got != before+1 {
			t.Errorf("expected count %d, got %d", before+1, got)
		}
	})

	t.Run("creates nested entries as needed", func(t *testing.T) {
		next := AddItem(models.CartData{}, "p1", "L")
		if next["p1"]["L"] != 1 {
			t.Errorf("expected quantity 1, got %d", next["p1"]["L"])
		}
	})

	t.Run("does not mutate the input snapshot", func(t *testing.T) {
		snapshot := models.CartData{"p1": {"M": 1}}
		AddItem(snapshot, "p1", "M")
		if snapshot["p1"]["M"] != 1 {
			t.Errorf("input snapshot mutated: %v", snapshot)
		}
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("sets the slot", func(t *testing.T) {
		next, err := SetQuantity(models.CartData{}, "p1", "M", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next["p1"]["M"] != 3 {
			t.Errorf("expected quantity 3, got %d", next["p1"]["M"])
		}
	})

	t.Run("zero removes the slot", func(t *testing.T) {
		snapshot := models.CartData{"p1": {"M": 2, "L": 1}}
		next, err := SetQuantity(snapshot, "p1", "M", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := next["p1"]["M"]; ok {
			t.Error("expected slot to be removed")
		}
		if got := Count(next); got != 1 {
			t.Errorf("expected count 1, got %d", got)
		}
	})

	t.Run("zero on the last size drops the product", func(t *testing.T) {
		snapshot := models.CartData{"p1": {"M": 2}}
		next, _ := SetQuantity(snapshot, "p1", "M", 0)
		if _, ok := next["p1"]; ok {
			t.Error("expected product entry to be dropped")
		}
		if !reflect.DeepEqual(next, models.CartData{}) {
			t.Errorf("expected empty snapshot, got %v", next)
		}
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		_, err := SetQuantity(models.CartData{}, "p1", "M", -1)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("idempotent for the same quantity", func(t *testing.T) {
		first, err := SetQuantity(models.CartData{"p1": {"M": 1}}, "p1", "M", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := SetQuantity(first, "p1", "M", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical snapshots, got %v and %v", first, second)
		}
	})
}

func TestCount(t *testing.T) {
	snapshot := models.CartData{
		"p1": {"M": 2, "L": 0},
		"p2": {"S": 1, "XL": -3},
	}
	if got := Count(snapshot); got != 3 {
		t.Errorf("expected count 3, got %d", got)
	}
}

func TestSubtotal(t *testing.T) {
	catalog, hoodieID, jeansID := testCatalog()

	t.Run("prices the snapshot", func(t *testing.T) {
		// $20 x 2 plus $15 x 1.
		snapshot := models.CartData{
			hoodieID: {"M": 2},
			jeansID:  {"32": 1},
		}
		if got := Subtotal(snapshot, catalog); got != 55 {
			t.Errorf("expected subtotal 55, got %v", got)
		}
	})

	t.Run("insertion order does not matter", func(t *testing.T) {
		a := AddItem(AddItem(models.CartData{}, hoodieID, "M"), jeansID, "32")
		b := AddItem(AddItem(models.CartData{}, jeansID, "32"), hoodieID, "M")
		if Subtotal(a, catalog) != Subtotal(b, catalog) {
			t.Error("subtotal changed with insertion order")
		}
	})

	t.Run("skips products missing from the catalog", func(t *testing.T) {
		snapshot := models.CartData{
			hoodieID:  {"M": 1},
			"deleted": {"M": 10},
		}
		if got := Subtotal(snapshot, catalog); got != 20 {
			t.Errorf("expected subtotal 20, got %v", got)
		}
	})

	t.Run("skips non-positive quantities", func(t *testing.T) {
		snapshot := models.CartData{hoodieID: {"M": 0, "L": -2}}
		if got := Subtotal(snapshot, catalog); got != 0 {
			t.Errorf("expected subtotal 0, got %v", got)
		}
	})
}

func TestTotal(t *testing.T) {
	catalog, hoodieID, jeansID := testCatalog()
	snapshot := models.CartData{
		hoodieID: {"M": 2},
		jeansID:  {"32": 1},
	}

	if got := Total(snapshot, catalog, DeliveryFee); got != 90 {
		t.Errorf("expected total 90, got %v", got)
	}
	if got := Total(snapshot, catalog, DeliveryFee); got != Subtotal(snapshot, catalog)+DeliveryFee {
		t.Errorf("total does not equal subtotal plus fee, got %v", got)
	}
}

func TestPrune(t *testing.T) {
	snapshot := models.CartData{
		"p1": {"M": 2, "L": 0},
		"p2": {"S": -1},
	}
	pruned := Prune(snapshot)

	want := models.CartData{"p1": {"M": 2}}
	if !reflect.DeepEqual(pruned, want) {
		t.Errorf("expected %v, got %v", want, pruned)
	}
}
