package routes

import (
	orderController "wardrobe-api/controllers/orders"
	"wardrobe-api/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func OrderRoutes(app *fiber.App) {
	//Admin features
	app.Post("/api/order/list", middlewares.AdminAuth, orderController.AllOrders)
	app.Post("/api/order/status", middlewares.AdminAuth, orderController.UpdateStatus)
	app.Get("/api/order/export", middlewares.AdminAuth, orderController.ExportOrders)
	app.Get("/api/order/feed", middlewares.AdminAuth, websocket.New(orderController.OrderFeed))

	//Checkout
	app.Post("/api/order/place", middlewares.Auth, orderController.PlaceOrder)
	app.Post("/api/order/place/stripe", middlewares.Auth, orderController.PlaceOrderStripe)
	app.Post("/api/order/place/razorpay", middlewares.Auth, orderController.PlaceOrderRazorpay)

	//Payment verification
	app.Post("/api/order/verifyStripe", middlewares.Auth, orderController.VerifyStripe)
	app.Post("/api/order/verifyRazorpay", middlewares.Auth, orderController.VerifyRazorpay)

	//User features
	app.Post("/api/order/userorders", middlewares.Auth, orderController.UserOrders)
}
