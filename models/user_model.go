package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartData maps product id -> size -> quantity. A zero or absent entry means
// the item is not in the cart.
type CartData map[string]map[string]int

type User struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password" json:"password" validate:"required,min=8"`
	CartData CartData           `bson:"cartData" json:"cartData"`
}
