package utils

import (
	"github.com/gofiber/fiber/v2"
)

// MessageResponse sends a plain `{"message": ...}` JSON response.
// Defaults to 200 OK unless an explicit status code is provided.
func MessageResponse(c *fiber.Ctx, message string, code ...int) error {
	statusCode := fiber.StatusOK
	if len(code) > 0 {
		statusCode = code[0]
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ErrorResponse sends a `{"error": ...}` JSON response. Defaults to
// 500 Internal Server Error unless an explicit status code is provided.
func ErrorResponse(c *fiber.Ctx, message string, code ...int) error {
	statusCode := fiber.StatusInternalServerError
	if len(code) > 0 {
		statusCode = code[0]
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}
