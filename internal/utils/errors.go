package utils

import "github.com/gofiber/fiber/v2"

// APIError represents a structured API error
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string, status int) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// The error taxonomy surfaced by handlers. Validation problems are 4xx
// and never retried, auth failures force re-login, storage failures are
// logged server-side and reported as a generic 500.
var (
	ErrValidation = NewAPIError("validation_error", "Invalid request", fiber.StatusBadRequest)
	ErrAuth       = NewAPIError("auth_error", "Invalid or expired session", fiber.StatusUnauthorized)
	ErrStorage    = NewAPIError("storage_error", "Database error", fiber.StatusInternalServerError)
)
