package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Image       []string           `bson:"image" json:"image" validate:"required,min=1,dive"`
	Category    string             `bson:"category" json:"category" validate:"required,oneof=Men Women Kids"`
	SubCategory string             `bson:"subCategory" json:"subCategory" validate:"required,oneof=Topwear Bottomwear Winterwear"`
	Sizes       []string           `bson:"sizes" json:"sizes" validate:"required,min=1"`
	Bestseller  bool               `bson:"bestseller" json:"bestseller"`
	Date        time.Time          `bson:"date" json:"date"`
}
