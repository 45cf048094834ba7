package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"wardrobe-api/configs"
	"wardrobe-api/responses"
)

// AdminAuth gates the back-office routes. Admin tokens carry the configured
// admin email plus an admin role claim.
func AdminAuth(c *fiber.Ctx) error {
	tokenString := c.Get("token")
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "Not authorized",
		})
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "Not authorized",
		})
	}

	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	if role != "admin" || email == "" || email != configs.EnvAdminEmail() {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "Not authorized",
		})
	}

	return c.Next()
}
