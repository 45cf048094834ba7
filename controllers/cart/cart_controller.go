package cartController

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wardrobe-api/configs"
	"wardrobe-api/models"
	"wardrobe-api/responses"
	"wardrobe-api/services"
)

var userCollection *mongo.Collection = configs.GetCollection("users")

type addToCartRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Size   string `json:"size" validate:"required"`
}

type updateCartRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// currentUser loads the authenticated user's document. The auth middleware
// has already placed the account id in Locals.
func currentUser(ctx context.Context, c *fiber.Ctx) (models.User, primitive.ObjectID, error) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return models.User{}, primitive.NilObjectID, errors.New("user ID not found in token")
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return models.User{}, primitive.NilObjectID, errors.New("invalid user ID format")
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return models.User{}, primitive.NilObjectID, errors.New("user not found")
	}
	return user, userObjectID, nil
}

func saveCart(ctx context.Context, userObjectID primitive.ObjectID, cart models.CartData) error {
	_, err := userCollection.UpdateOne(ctx, bson.M{"_id": userObjectID}, bson.M{"$set": bson.M{"cartData": cart}})
	return err
}

// AddToCart increments the quantity for (itemId, size) by one. The product
// is not validated against the catalog here; a stale id is caught at
// checkout.
func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request addToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid request",
		})
	}
	if request.ItemID == "" || request.Size == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Missing itemId or size",
		})
	}

	user, userObjectID, err := currentUser(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	cart := services.AddItem(user.CartData, request.ItemID, request.Size)
	if err := saveCart(ctx, userObjectID, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to update cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Added to cart successfully",
		Result:  &fiber.Map{"cartCount": services.Count(cart)},
	})
}

// UpdateCart sets the quantity for (itemId, size). Zero removes the line
// item; a negative quantity is rejected.
func UpdateCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request updateCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid request",
		})
	}
	if request.ItemID == "" || request.Size == "" || request.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Missing itemId, size, or quantity",
		})
	}

	user, userObjectID, err := currentUser(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	cart, err := services.SetQuantity(user.CartData, request.ItemID, request.Size, *request.Quantity)
	if errors.Is(err, services.ErrInvalidQuantity) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Quantity must not be negative",
		})
	}

	if err := saveCart(ctx, userObjectID, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to update cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Cart updated successfully",
		Result:  &fiber.Map{"cartCount": services.Count(cart)},
	})
}

// GetUserCart returns the stored snapshot with dead slots pruned.
func GetUserCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, _, err := currentUser(ctx, c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	cart := services.Prune(user.CartData)
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Fetched cart successfully",
		Result:  &fiber.Map{"cartData": cart},
	})
}
