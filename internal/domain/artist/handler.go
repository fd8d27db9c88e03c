package artist

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/setlive/setlive/internal/utils"
)

type Handler struct {
	svc  Service
	fans FanSource
}

// NewHandler creates the catalog handler. fans is usually the Redis
// read-through cache; pass the service itself when Redis is disabled.
func NewHandler(svc Service, fans FanSource) *Handler {
	return &Handler{svc: svc, fans: fans}
}

// SearchArtists matches catalog artists by name substring.
func (h *Handler) SearchArtists(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return utils.ErrorResponse(c, "Search query is required", fiber.StatusBadRequest)
	}

	artists, err := h.svc.Search(query)
	if err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(artists)
}

func (h *Handler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.svc.Genres()
	if err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(genres)
}

func (h *Handler) ListCountries(c *fiber.Ctx) error {
	countries, err := h.svc.Countries()
	if err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(countries)
}

// ListFans returns every user who saw the artist, with their computed
// online status.
func (h *Handler) ListFans(c *fiber.Ctx) error {
	artistID := c.Params("artistId")
	if artistID == "" {
		return utils.ErrorResponse(c, "Artist id is required", fiber.StatusBadRequest)
	}

	fans, err := h.fans.Fans(c.UserContext(), artistID)
	if err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fans)
}
