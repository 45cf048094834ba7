package routes

import (
	controllers "wardrobe-api/controllers/products"
	"wardrobe-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	//Admin catalog management
	app.Post("/api/product/add", middlewares.AdminAuth, controllers.AddProduct)
	app.Post("/api/product/remove", middlewares.AdminAuth, controllers.RemoveProduct)

	//Storefront browsing
	app.Get("/api/product/list", controllers.ListProducts)
	app.Post("/api/product/single", controllers.SingleProduct)
}
