package routes

import (
	cartController "wardrobe-api/controllers/cart"
	"wardrobe-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Post("/api/cart/add", middlewares.Auth, cartController.AddToCart)
	app.Post("/api/cart/update", middlewares.Auth, cartController.UpdateCart)
	app.Post("/api/cart/get", middlewares.Auth, cartController.GetUserCart)
}
