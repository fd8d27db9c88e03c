package server

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/setlive/setlive/internal/cache"
	"github.com/setlive/setlive/internal/config"
	"github.com/setlive/setlive/internal/database"
	"github.com/setlive/setlive/internal/migrations"
	"github.com/setlive/setlive/internal/utils"
)

// Start initializes and runs the HTTP server until SIGINT/SIGTERM.
// The database handle, the optional Redis client, and the presence
// janitor are all acquired here and released on the way out.
func Start(cfg *config.Config) error {
	initLogger(cfg.Logging.Level)

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}()
	slog.Info("Database connected successfully")

	if err := migrations.RunMigrations(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return err
	}
	slog.Info("Migrations completed successfully")

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.Connect(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, fan cache disabled", "error", err)
			rdb = nil
		} else {
			defer func() {
				if err := cache.Close(rdb); err != nil {
					slog.Warn("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: errorHandler,
	})

	janitor := SetupRoutes(app, db, rdb, cfg)
	janitor.Start()
	defer janitor.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	serveErr := make(chan error, 1)

	go func() {
		addr := cfg.Server.Address()
		slog.Info("Server starting", "address", addr)
		serveErr <- app.Listen(addr)
	}()

	select {
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
		if err := app.Shutdown(); err != nil {
			slog.Error("Server shutdown failed", "error", err)
			return err
		}
	case err := <-serveErr:
		if err != nil {
			slog.Error("Failed to start server", "error", err)
			return err
		}
	}

	return nil
}

// errorHandler turns errors escaping a handler into the API's JSON
// error shape. Structured API errors keep their status; everything
// else is reported as a storage failure.
func errorHandler(c *fiber.Ctx, err error) error {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		return utils.ErrorResponse(c, apiErr.Message, apiErr.Status)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code)
	}

	slog.Error("Unhandled request error", "path", c.Path(), "error", err)
	return utils.ErrorResponse(c, utils.ErrStorage.Message, utils.ErrStorage.Status)
}

func initLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	slog.SetDefault(slog.New(handler))
}
