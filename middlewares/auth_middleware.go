package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"wardrobe-api/configs"
	"wardrobe-api/responses"
)

// Auth resolves the user identity from the custom token header issued at
// login and stores the account id in Locals for the handlers.
func Auth(c *fiber.Ctx) error {
	tokenString := c.Get("token")
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "Not authorized, login again",
		})
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "Token verification failed, access denied",
		})
	}

	userId, ok := claims["id"].(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Success: false,
			Message: "User ID not found in token",
		})
	}

	c.Locals("userId", userId)
	return c.Next()
}
