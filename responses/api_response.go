package responses

import "github.com/gofiber/fiber/v2"

// ApiResponse is the envelope every endpoint returns. Failures are always
// soft: Success false plus a message, never a panic up the transport layer.
type ApiResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}
