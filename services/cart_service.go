package services

import "wardrobe-api/models"

// DeliveryFee is the flat shipping surcharge added to every order total.
const DeliveryFee float64 = 35

// Catalog resolves current product prices for cart totals. The second return
// is false when the product no longer exists; callers treat such entries as
// worth nothing rather than failing.
type Catalog interface {
	Price(productID string) (float64, bool)
}

// CloneSnapshot copies a cart snapshot so mutations never alias the stored
// document.
func CloneSnapshot(snapshot models.CartData) models.CartData {
	next := models.CartData{}
	for productID, sizes := range snapshot {
		next[productID] = make(map[string]int, len(sizes))
		for size, qty := range sizes {
			next[productID][size] = qty
		}
	}
	return next
}

// AddItem returns a snapshot with the quantity for (productID, size) raised
// by one, creating nested entries as needed. The product is not checked
// against the catalog here; that happens at checkout.
func AddItem(snapshot models.CartData, productID, size string) models.CartData {
	next := CloneSnapshot(snapshot)
	if next[productID] == nil {
		next[productID] = map[string]int{}
	}
	next[productID][size]++
	return next
}

// SetQuantity returns a snapshot with the (productID, size) slot set to
// quantity. Zero removes the slot; a negative value is rejected.
func SetQuantity(snapshot models.CartData, productID, size string, quantity int) (models.CartData, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	next := CloneSnapshot(snapshot)
	if quantity == 0 {
		if sizes, ok := next[productID]; ok {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(next, productID)
			}
		}
		return next, nil
	}

	if next[productID] == nil {
		next[productID] = map[string]int{}
	}
	next[productID][size] = quantity
	return next, nil
}

// Count sums every positive quantity across all products and sizes.
func Count(snapshot models.CartData) int {
	total := 0
	for _, sizes := range snapshot {
		for _, qty := range sizes {
			if qty > 0 {
				total += qty
			}
		}
	}
	return total
}

// Subtotal prices the snapshot against the catalog. Entries whose product is
// gone from the catalog contribute nothing, so a stale cart never errors.
func Subtotal(snapshot models.CartData, catalog Catalog) float64 {
	var total float64
	for productID, sizes := range snapshot {
		price, ok := catalog.Price(productID)
		if !ok {
			continue
		}
		for _, qty := range sizes {
			if qty > 0 {
				total += price * float64(qty)
			}
		}
	}
	return total
}

// Total is the subtotal plus the flat delivery fee.
func Total(snapshot models.CartData, catalog Catalog, deliveryFee float64) float64 {
	return Subtotal(snapshot, catalog) + deliveryFee
}

// Prune drops non-positive quantities and empty size maps.
func Prune(snapshot models.CartData) models.CartData {
	next := models.CartData{}
	for productID, sizes := range snapshot {
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			if next[productID] == nil {
				next[productID] = map[string]int{}
			}
			next[productID][size] = qty
		}
	}
	return next
}
