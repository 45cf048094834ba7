package routes

import (
	controllers "wardrobe-api/controllers/user"

	"github.com/gofiber/fiber/v2"
)

func UserRoute(app *fiber.App) {
	app.Post("/api/user/register", controllers.Register)
	app.Post("/api/user/login", controllers.Login)
	app.Post("/api/user/admin", controllers.AdminLogin)
}
