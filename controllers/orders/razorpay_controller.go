package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wardrobe-api/configs"
	"wardrobe-api/models"
	"wardrobe-api/responses"
	"wardrobe-api/services"
)

type verifyRazorpayRequest struct {
	OrderID         string `json:"orderId"`
	RazorpayOrderID string `json:"razorpayOrderId"`
	PaymentID       string `json:"paymentId"`
	Signature       string `json:"signature"`
}

// PlaceOrderRazorpay is the alternate card gateway: a provisional order plus
// a gateway order the client pays against. Settlement happens in
// VerifyRazorpay.
func PlaceOrderRazorpay(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, _, failure := buildOrder(ctx, c, "Razorpay")
	if failure != nil {
		return c.Status(failure.status).JSON(failure.response)
	}

	keyID := configs.EnvRazorpayKeyId()
	client := razorpay.NewClient(keyID, configs.EnvRazorpayKeySecret())

	// Amount is in the smallest currency unit.
	data := map[string]interface{}{
		"amount":   services.Cents(order.Amount),
		"currency": "USD",
		"receipt":  "receipt_" + uuid.NewString(),
	}
	gatewayOrder, err := client.Order.Create(data, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to create payment order",
		})
	}

	gatewayOrderID, _ := gatewayOrder["id"].(string)
	order.GatewayOrderID = gatewayOrderID

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to create order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Payment order created",
		Result: &fiber.Map{
			"orderId":         order.ID.Hex(),
			"razorpayOrderId": gatewayOrderID,
			"amount":          gatewayOrder["amount"],
			"currency":        gatewayOrder["currency"],
			"key_id":          keyID,
		},
	})
}

// VerifyRazorpay settles a gateway payment. The callback signature only
// covers the gateway's own ids, so the order is loaded first and the
// callback must reference the gateway order stored on it; otherwise a valid
// callback for one payment could settle a different unpaid order.
func VerifyRazorpay(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "User ID not found in token",
		})
	}

	var request verifyRazorpayRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid request",
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(request.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid order ID format",
		})
	}

	filter := bson.M{"_id": orderObjectID, "userId": userObjectID}
	var order models.Order
	if err := orderCollection.FindOne(ctx, filter).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Success: false,
				Message: "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to fetch order",
		})
	}

	if !services.MatchesGatewayOrder(order, request.RazorpayOrderID) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Payment does not match order",
		})
	}

	if !services.ValidGatewaySignature(request.RazorpayOrderID, request.PaymentID, request.Signature, configs.EnvRazorpayKeySecret()) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid payment signature",
		})
	}

	if _, err := orderCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"payment": true}}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to update order",
		})
	}

	if err := clearCart(ctx, userObjectID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Payment verified but failed to clear cart",
		})
	}

	settled, _ := services.SettlePayment(order, true)
	broadcastNewOrder(settled)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Payment verified successfully",
	})
}
