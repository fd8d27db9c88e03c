package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/setlive/setlive/internal/config"
)

// Connect creates a Redis client and verifies connectivity with a
// 5-second ping timeout. The client is handed back to the caller; the
// application runs without Redis when this fails at startup.
func Connect(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Redis connected successfully", "address", cfg.Address())
	return client, nil
}

// Close closes the Redis client if it is initialized
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
