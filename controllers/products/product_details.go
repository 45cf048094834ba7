package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wardrobe-api/models"
	"wardrobe-api/responses"
)

type singleProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// SingleProduct returns one catalog entry for the storefront detail page.
func SingleProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request singleProductRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid request",
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid product Id",
		})
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Success: false,
			Message: "Product not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Error fetching product details",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Product fetched successfully",
		Result:  &fiber.Map{"product": product},
	})
}
