package auth

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/setlive/setlive/internal/domain/session"
	"github.com/setlive/setlive/internal/domain/user"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req user.RegisterRequest) (*user.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (*LoginResult, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockAuthService) Validate(token string) (*ValidateResult, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ValidateResult), args.Error(1)
}

func (m *MockAuthService) Heartbeat(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func setupApp(svc AuthService) *fiber.App {
	app := fiber.New()
	h := NewHandler(svc)
	app.Post("/api/register", h.Register)
	app.Post("/api/login", h.Login)
	app.Post("/api/logout", h.Logout)
	app.Post("/api/validate-session", h.ValidateSession)
	app.Post("/api/heartbeat", h.Heartbeat)
	return app
}

// postJSON performs a JSON POST against the test app and returns the
// response status code.
func postJSON(t *testing.T, app *fiber.App, path string, body any) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp.StatusCode
}

func TestHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		svc := new(MockAuthService)
		u := &user.User{Email: "fan@example.com", Nickname: "fan"}
		u.ID = uuid.New()

		svc.On("Login", "fan@example.com", "password123").Return(&LoginResult{
			SessionToken: "ab12",
			ExpiresAt:    time.Now().Add(7 * 24 * time.Hour),
			User:         u,
		}, nil)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/login", fiber.Map{
			"email":    "fan@example.com",
			"password": "password123",
		})

		assert.Equal(t, fiber.StatusOK, status)
		svc.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", "ghost@example.com", "password123").Return(nil, user.ErrUserNotFound)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/login", fiber.Map{
			"email":    "ghost@example.com",
			"password": "password123",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", "fan@example.com", "nope-nope").Return(nil, user.ErrWrongPassword)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/login", fiber.Map{
			"email":    "fan@example.com",
			"password": "nope-nope",
		})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := new(MockAuthService)
		app := setupApp(svc)

		status := postJSON(t, app, "/api/login", fiber.Map{"email": "fan@example.com"})

		assert.Equal(t, fiber.StatusBadRequest, status)
		svc.AssertNotCalled(t, "Login")
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("successful logout", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", "ab12").Return(nil)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/logout", fiber.Map{"sessionToken": "ab12"})

		assert.Equal(t, fiber.StatusOK, status)
		svc.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		svc := new(MockAuthService)
		app := setupApp(svc)

		status := postJSON(t, app, "/api/logout", fiber.Map{})

		assert.Equal(t, fiber.StatusBadRequest, status)
		svc.AssertNotCalled(t, "Logout")
	})
}

func TestHandler_ValidateSession(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		svc := new(MockAuthService)
		u := &user.User{Email: "fan@example.com"}
		u.ID = uuid.New()

		svc.On("Validate", "ab12").Return(&ValidateResult{
			User:      u,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/validate-session", fiber.Map{"sessionToken": "ab12"})

		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("invalid session", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Validate", "dead").Return(nil, session.ErrSessionNotFound)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/validate-session", fiber.Map{"sessionToken": "dead"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestHandler_Heartbeat(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Heartbeat", "ab12").Return(nil)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/heartbeat", fiber.Map{"sessionToken": "ab12"})

		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("stale session", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Heartbeat", "dead").Return(session.ErrSessionNotFound)

		app := setupApp(svc)
		status := postJSON(t, app, "/api/heartbeat", fiber.Map{"sessionToken": "dead"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestSessionMiddleware(t *testing.T) {
	protected := func(svc AuthService) *fiber.App {
		app := fiber.New()
		app.Get("/secret", SessionMiddleware(svc), func(c *fiber.Ctx) error {
			identity := GetIdentity(c)
			require.NotNil(t, identity)
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	t.Run("missing header", func(t *testing.T) {
		app := protected(new(MockAuthService))

		req := httptest.NewRequest(fiber.MethodGet, "/secret", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		svc := new(MockAuthService)
		u := &user.User{Email: "fan@example.com"}
		u.ID = uuid.New()
		svc.On("Validate", "ab12").Return(&ValidateResult{User: u, ExpiresAt: time.Now().Add(time.Hour)}, nil)

		app := protected(svc)

		req := httptest.NewRequest(fiber.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer ab12")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("stale token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Validate", "dead").Return(nil, session.ErrSessionNotFound)

		app := protected(svc)

		req := httptest.NewRequest(fiber.MethodGet, "/secret", nil)
		req.Header.Set("Authorization", "Bearer dead")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
