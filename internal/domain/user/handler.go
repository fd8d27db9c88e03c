package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/setlive/setlive/internal/utils"
)

type Handler struct {
	svc      Service
	validate *validator.Validate
}

func NewHandler(svc Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword verifies the current password and replaces it.
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.ErrorResponse(c, "Invalid user id", fiber.StatusBadRequest)
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest)
	}

	if err := h.validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, "Current and new password are required", fiber.StatusBadRequest)
	}

	if err := h.svc.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusNotFound)
		case errors.Is(err, ErrWrongPassword):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized)
		default:
			return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
		}
	}

	return utils.MessageResponse(c, "Password changed successfully")
}
