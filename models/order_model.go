package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the shipping address submitted at checkout. Every field is
// required; validation reports the missing ones by json name.
type Address struct {
	FullName   string `bson:"fullName" json:"fullName" validate:"required"`
	Email      string `bson:"email" json:"email" validate:"required,email"`
	Phone      string `bson:"phone" json:"phone" validate:"required"`
	Street     string `bson:"address" json:"address" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" validate:"required"`
}

// OrderItem is a line item frozen at order-creation time, so later catalog
// edits never alter historical orders.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Size      string             `bson:"size" json:"size"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Items          []OrderItem        `bson:"items" json:"items"`
	Address        Address            `bson:"address" json:"address"`
	Amount         float64            `bson:"amount" json:"amount"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"` // COD, Stripe, Razorpay
	Payment        bool               `bson:"payment" json:"payment"`
	Status         string             `bson:"status" json:"status"`
	GatewayOrderID string             `bson:"gatewayOrderId,omitempty" json:"gatewayOrderId,omitempty"`
	Date           time.Time          `bson:"date" json:"date"`
}
