package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"wardrobe-api/configs"
	"wardrobe-api/routes"
)

func main() {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, token",
	}))

	configs.DB()

	if err := os.MkdirAll("uploads", 0o755); err != nil {
		log.Fatal(err)
	}
	app.Static("/uploads", "./uploads")

	routes.UserRoute(app)
	routes.ProductsRoute(app)
	routes.CartRoutes(app)
	routes.OrderRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
