package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wardrobe-api/configs"
	"wardrobe-api/models"
	"wardrobe-api/responses"
	"wardrobe-api/services"
)

var orderCollection *mongo.Collection = configs.GetCollection("orders")
var userCollection *mongo.Collection = configs.GetCollection("users")
var productCollection *mongo.Collection = configs.GetCollection("products")

type placeOrderRequest struct {
	Address models.Address `json:"address"`
}

type verifyStripeRequest struct {
	OrderID string `json:"orderId"`
	Success string `json:"success"`
}

type updateStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func currentUserID(c *fiber.Ctx) (primitive.ObjectID, error) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return primitive.NilObjectID, errors.New("user ID not found in token")
	}
	return primitive.ObjectIDFromHex(userId)
}

// loadCatalog fetches every product the snapshot references in one query.
// Ids that are malformed or no longer in the catalog simply end up absent
// from the result.
func loadCatalog(ctx context.Context, snapshot models.CartData) (services.MapCatalog, error) {
	var ids []primitive.ObjectID
	for productID := range snapshot {
		objectID, err := primitive.ObjectIDFromHex(productID)
		if err != nil {
			continue
		}
		ids = append(ids, objectID)
	}

	catalog := services.MapCatalog{}
	if len(ids) == 0 {
		return catalog, nil
	}

	cursor, err := productCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, product := range products {
		catalog[product.ID.Hex()] = product
	}
	return catalog, nil
}

// orderFailure carries the HTTP status together with the envelope so
// callers never have to inspect the message to pick one.
type orderFailure struct {
	status   int
	response responses.ApiResponse
}

func failOrder(status int, message string) *orderFailure {
	return &orderFailure{status: status, response: responses.ApiResponse{Success: false, Message: message}}
}

// buildOrder expands the authenticated user's cart into an order document.
// It does not insert or clear anything; callers decide when the order is
// confirmed.
func buildOrder(ctx context.Context, c *fiber.Ctx, paymentMethod string) (models.Order, primitive.ObjectID, *orderFailure) {
	userObjectID, err := currentUserID(c)
	if err != nil {
		return models.Order{}, primitive.NilObjectID, failOrder(fiber.StatusUnauthorized, "User ID not found in token")
	}

	var request placeOrderRequest
	if err := c.BodyParser(&request); err != nil {
		return models.Order{}, primitive.NilObjectID, failOrder(fiber.StatusBadRequest, "Invalid request")
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return models.Order{}, primitive.NilObjectID, failOrder(fiber.StatusNotFound, "User not found")
	}

	catalog, err := loadCatalog(ctx, services.Prune(user.CartData))
	if err != nil {
		return models.Order{}, primitive.NilObjectID, failOrder(fiber.StatusInternalServerError, "Error fetching products")
	}

	// An empty cart still produces a valid order; line items that reference
	// deleted products are simply dropped.
	order, missing := services.NewOrder(userObjectID, user.CartData, catalog, request.Address, paymentMethod, time.Now())
	if len(missing) > 0 {
		return models.Order{}, primitive.NilObjectID, failOrder(fiber.StatusBadRequest, "Missing fields: "+strings.Join(missing, ", "))
	}
	return order, userObjectID, nil
}

func clearCart(ctx context.Context, userObjectID primitive.ObjectID) error {
	_, err := userCollection.UpdateOne(ctx, bson.M{"_id": userObjectID}, bson.M{"$set": bson.M{"cartData": models.CartData{}}})
	return err
}

// PlaceOrder handles cash-on-delivery checkout: the order is confirmed
// immediately, payment stays unsettled until delivery.
func PlaceOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, userObjectID, failure := buildOrder(ctx, c, "COD")
	if failure != nil {
		return c.Status(failure.status).JSON(failure.response)
	}

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to create order",
		})
	}

	if err := clearCart(ctx, userObjectID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Order created but failed to clear cart",
		})
	}

	broadcastNewOrder(order)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Order placed successfully",
		Result:  &fiber.Map{"orderId": order.ID.Hex()},
	})
}

// PlaceOrderStripe creates a provisional order and a hosted checkout
// session. The cart is cleared only after VerifyStripe confirms payment.
func PlaceOrderStripe(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, _, failure := buildOrder(ctx, c, "Stripe")
	if failure != nil {
		return c.Status(failure.status).JSON(failure.response)
	}

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to create order",
		})
	}

	stripe.Key = configs.EnvStripeSecretKey()
	frontend := configs.EnvFrontendURL()

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.Items)+1)
	for _, item := range order.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name + " (" + item.Size + ")"),
				},
				UnitAmount: stripe.Int64(services.Cents(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String("usd"),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String("Delivery Charges"),
			},
			UnitAmount: stripe.Int64(services.Cents(services.DeliveryFee)),
		},
		Quantity: stripe.Int64(1),
	})

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(frontend + "/verify?success=true&orderId=" + order.ID.Hex()),
		CancelURL:  stripe.String(frontend + "/verify?success=false&orderId=" + order.ID.Hex()),
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
	}

	s, err := session.New(params)
	if err != nil {
		// The provisional order is useless without a session.
		_, _ = orderCollection.DeleteOne(ctx, bson.M{"_id": order.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to create payment session",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Payment session created",
		Result: &fiber.Map{
			"orderId":     order.ID.Hex(),
			"session_url": s.URL,
		},
	})
}

// VerifyStripe settles a card payment. On success the order is marked paid
// and the cart cleared; on failure the order record stays so the storefront
// can retry, and the cart is left untouched.
func VerifyStripe(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "User ID not found in token",
		})
	}

	var request verifyStripeRequest
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

	settled, clear := services.SettlePayment(order, request.Success == "true")
	if !clear {
		return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
			Success: false,
			Message: "Payment not completed",
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

	broadcastNewOrder(settled)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Payment verified successfully",
	})
}

// UserOrders returns every order owned by the authenticated account.
func UserOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "User ID not found in token",
		})
	}

	cursor, err := orderCollection.Find(ctx, bson.M{"userId": userObjectID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to fetch orders",
		})
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to parse orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Orders fetched successfully",
		Result:  &fiber.Map{"orders": orders},
	})
}

// AllOrders returns every order in the system for the admin dashboard.
func AllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := orderCollection.Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to fetch orders",
		})
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to parse orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Orders fetched successfully",
		Result:  &fiber.Map{"orders": orders},
	})
}

// UpdateStatus overwrites an order's status with any of the enumerated
// values. Progression is not required to be monotonic.
func UpdateStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request updateStatusRequest
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

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order); err != nil {
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

	updated, err := services.ApplyStatus(order, request.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Success: false,
			Message: "Invalid order status",
		})
	}

	if _, err := orderCollection.UpdateOne(ctx, bson.M{"_id": orderObjectID}, bson.M{"$set": bson.M{"status": updated.Status}}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Success: false,
			Message: "Failed to update status",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Success: true,
		Message: "Status updated successfully",
	})
}
