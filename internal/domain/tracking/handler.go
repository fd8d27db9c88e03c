package tracking

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

// ListUserArtists returns the artists a user has seen, newest first.
func (h *Handler) ListUserArtists(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.ErrorResponse(c, "Invalid user id", fiber.StatusBadRequest)
	}

	tracked, err := h.svc.ListByUser(userID)
	if err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(tracked)
}

// AddUserArtist records a new sighting for the user.
func (h *Handler) AddUserArtist(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.ErrorResponse(c, "Invalid user id", fiber.StatusBadRequest)
	}

	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest)
	}

	if err := h.validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, "Artist id and seen date are required", fiber.StatusBadRequest)
	}

	rec, err := h.svc.Add(c.UserContext(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyTracked), errors.Is(err, ErrArtistNotFound):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
		default:
			return utils.ErrorResponse(c, "Failed to add artist", fiber.StatusInternalServerError)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Artist added successfully",
		"trackingId": rec.ID,
	})
}
