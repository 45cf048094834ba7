package services

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wardrobe-api/models"
)

const (
	StatusOrderPlaced    = "Order Placed"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// OrderStatuses lists every state an order can be in. Admins may set any of
// them in any sequence; only membership is enforced.
var OrderStatuses = []string{
	StatusOrderPlaced,
	StatusPacking,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

func ValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way the API spells them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAddress returns the json names of required address fields that are
// missing or malformed. An empty result means the address is complete.
func ValidateAddress(address models.Address) []string {
	err := validate.Struct(address)
	if err == nil {
		return nil
	}

	var missing []string
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			missing = append(missing, fe.Field())
		}
	}
	sort.Strings(missing)
	return missing
}

// ProductLookup resolves a product by id when expanding a cart into order
// line items.
type ProductLookup interface {
	Product(productID string) (models.Product, bool)
}

// MapCatalog is an in-memory Catalog and ProductLookup keyed by product id
// hex. Controllers load the referenced products once and wrap them in this.
type MapCatalog map[string]models.Product

func (m MapCatalog) Price(productID string) (float64, bool) {
	p, ok := m[productID]
	return p.Price, ok
}

func (m MapCatalog) Product(productID string) (models.Product, bool) {
	p, ok := m[productID]
	return p, ok
}

// ExpandItems turns a cart snapshot into order line items, copying the
// product fields needed for display. Entries whose product no longer exists
// and non-positive quantities are skipped. Output order is deterministic.
func ExpandItems(snapshot models.CartData, lookup ProductLookup) []models.OrderItem {
	productIDs := make([]string, 0, len(snapshot))
	for productID := range snapshot {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	items := []models.OrderItem{}
	for _, productID := range productIDs {
		product, ok := lookup.Product(productID)
		if !ok {
			continue
		}

		sizes := make([]string, 0, len(snapshot[productID]))
		for size := range snapshot[productID] {
			sizes = append(sizes, size)
		}
		sort.Strings(sizes)

		for _, size := range sizes {
			qty := snapshot[productID][size]
			if qty <= 0 {
				continue
			}
			image := ""
			if len(product.Image) > 0 {
				image = product.Image[0]
			}
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     image,
				Price:     product.Price,
				Size:      size,
				Quantity:  qty,
			})
		}
	}
	return items
}

// NewOrder materializes an order from a cart snapshot. The returned missing
// list is non-empty when the address is incomplete, in which case no order
// is built. An empty cart still yields a valid order whose amount is just
// the delivery fee.
func NewOrder(userID primitive.ObjectID, snapshot models.CartData, catalog MapCatalog, address models.Address, paymentMethod string, now time.Time) (models.Order, []string) {
	if missing := ValidateAddress(address); len(missing) > 0 {
		return models.Order{}, missing
	}

	snapshot = Prune(snapshot)
	return models.Order{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Items:         ExpandItems(snapshot, catalog),
		Address:       address,
		Amount:        Total(snapshot, catalog, DeliveryFee),
		PaymentMethod: paymentMethod,
		Payment:       false,
		Status:        StatusOrderPlaced,
		Date:          now,
	}, nil
}

// SettlePayment applies a gateway verification result to an order. The
// second return value tells the caller whether to clear the cart: only a
// successful settlement does, a failed one leaves both the order record and
// the cart untouched so the buyer can retry.
func SettlePayment(order models.Order, success bool) (models.Order, bool) {
	if !success {
		return order, false
	}
	order.Payment = true
	return order, true
}

// ApplyStatus overwrites the order's status with any enumerated value.
// Progression is not required to be monotonic; a delivered order can move
// back to Shipped.
func ApplyStatus(order models.Order, status string) (models.Order, error) {
	if !ValidStatus(status) {
		return order, ErrInvalidStatus
	}
	order.Status = status
	return order, nil
}
