package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/setlive/setlive/internal/cache"
	"github.com/setlive/setlive/internal/config"
	"github.com/setlive/setlive/internal/domain/artist"
	"github.com/setlive/setlive/internal/domain/auth"
	"github.com/setlive/setlive/internal/domain/session"
	"github.com/setlive/setlive/internal/domain/tracking"
	"github.com/setlive/setlive/internal/domain/user"
)

// SetupRoutes wires repositories, services, and handlers onto the
// Fiber app and mounts the API under "/api". rdb may be nil, in which
// case fan lists are always read from the database. The returned
// janitor is started and stopped by the caller.
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *session.Janitor {
	window := cfg.Session.ActivityWindowOrDefault()

	// Repositories
	userRepo := user.NewRepository(db)
	sessionRepo := session.NewRepository(db)
	artistRepo := artist.NewRepository(db)
	trackingRepo := tracking.NewRepository(db)

	// Services
	userService := user.NewService(userRepo)
	sessionService := session.NewService(sessionRepo, cfg.Session.TTLOrDefault(), window)
	authService := auth.NewService(userRepo, userService, sessionService)
	artistService := artist.NewService(artistRepo, window)

	// Fan lists go through Redis when it is configured
	var fanSource artist.FanSource = artistService
	var fanInvalidator tracking.FanInvalidator
	if rdb != nil {
		fanCache := cache.NewFanCache(rdb, artistService)
		fanSource = fanCache
		fanInvalidator = fanCache
	}

	trackingService := tracking.NewService(trackingRepo, artistRepo, fanInvalidator)

	// Handlers
	authHandler := auth.NewHandler(authService)
	sessionHandler := session.NewHandler(sessionService)
	userHandler := user.NewHandler(userService)
	artistHandler := artist.NewHandler(artistService, fanSource)
	trackingHandler := tracking.NewHandler(trackingService)

	requireSession := auth.SessionMiddleware(authService)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "Server is running",
		})
	})

	// Session lifecycle
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Post("/validate-session", authHandler.ValidateSession)
	api.Post("/heartbeat", authHandler.Heartbeat)

	// Catalog
	api.Get("/search/artists", artistHandler.SearchArtists)
	api.Get("/search/genres", artistHandler.ListGenres)
	api.Get("/search/countries", artistHandler.ListCountries)
	api.Get("/artists/:artistId/fans", artistHandler.ListFans)

	// User-scoped
	api.Get("/user/:userId/artists", trackingHandler.ListUserArtists)
	api.Post("/user/:userId/artists", requireSession, trackingHandler.AddUserArtist)
	api.Post("/user/:userId/change-password", requireSession, userHandler.ChangePassword)
	api.Get("/user/:userId/sessions", sessionHandler.ListUserSessions)

	return session.NewJanitor(sessionRepo, window, cfg.Session.SweepIntervalOrDefault())
}
