package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/setlive/setlive/internal/utils"
)

type Handler struct {
	sessions Service
}

func NewHandler(s Service) *Handler {
	return &Handler{sessions: s}
}

// ListUserSessions returns every session for a user, newest first,
// with the computed currently_online flag.
func (h *Handler) ListUserSessions(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.ErrorResponse(c, "Invalid user id", fiber.StatusBadRequest)
	}

	infos, err := h.sessions.List(userID)
	if err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(infos)
}
