package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/setlive/setlive/internal/domain/session"
	"github.com/setlive/setlive/internal/domain/user"
	"github.com/setlive/setlive/internal/utils"
)

type Handler struct {
	authService AuthService
	validate    *validator.Validate
}

func NewHandler(s AuthService) *Handler {
	return &Handler{
		authService: s,
		validate:    validator.New(),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenRequest struct {
	SessionToken string `json:"sessionToken" validate:"required"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req user.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest)
	}

	if err := h.validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, "Email, password, first name, last name, and nickname are required", fiber.StatusBadRequest)
	}

	u, err := h.authService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailExists), errors.Is(err, user.ErrNicknameExists):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest)
		default:
			return utils.ErrorResponse(c, "Failed to create account", fiber.StatusInternalServerError)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully",
		"userId":  u.ID,
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest)
	}

	if err := h.validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest)
	}

	res, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrWrongPassword):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized)
		default:
			return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
		}
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil || req.SessionToken == "" {
		return utils.ErrorResponse(c, "Session token is required", fiber.StatusBadRequest)
	}

	if err := h.authService.Logout(req.SessionToken); err != nil {
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return utils.MessageResponse(c, "Logged out successfully")
}

func (h *Handler) ValidateSession(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil || req.SessionToken == "" {
		return utils.ErrorResponse(c, "Session token is required", fiber.StatusBadRequest)
	}

	res, err := h.authService.Validate(req.SessionToken)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return utils.ErrorResponse(c, "Invalid or expired session", fiber.StatusUnauthorized)
		}
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid":     true,
		"user":      res.User,
		"expiresAt": res.ExpiresAt,
	})
}

func (h *Handler) Heartbeat(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil || req.SessionToken == "" {
		return utils.ErrorResponse(c, "Session token is required", fiber.StatusBadRequest)
	}

	if err := h.authService.Heartbeat(req.SessionToken); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return utils.ErrorResponse(c, "Invalid or expired session", fiber.StatusUnauthorized)
		}
		return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"active": true,
	})
}
