package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/setlive/setlive/internal/domain/session"
	"github.com/setlive/setlive/internal/utils"
)

const (
	// IdentityKey is the key used to store the identity in Fiber context
	IdentityKey = "identity"
)

// Identity represents the authenticated caller of a protected route
type Identity struct {
	User *ValidateResult
}

// SessionMiddleware guards routes with a bearer session token. A valid
// token also counts as activity, so passing through the middleware
// refreshes the session the same way a heartbeat does.
func SessionMiddleware(svc AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, "Missing authorization header", fiber.StatusUnauthorized)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return utils.ErrorResponse(c, "Invalid authorization header", fiber.StatusUnauthorized)
		}

		res, err := svc.Validate(parts[1])
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				return utils.ErrorResponse(c, "Invalid or expired session", fiber.StatusUnauthorized)
			}
			return utils.ErrorResponse(c, "Database error", fiber.StatusInternalServerError)
		}

		c.Locals(IdentityKey, &Identity{User: res})

		return c.Next()
	}
}

// GetIdentity extracts the identity from Fiber context
func GetIdentity(c *fiber.Ctx) *Identity {
	identity, ok := c.Locals(IdentityKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}
