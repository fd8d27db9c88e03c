package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/setlive/setlive/internal/domain/artist"
)

const (
	// FanCachePrefix is the prefix for fan list cache keys
	FanCachePrefix = "fans:artist:"
	// FanCacheTTL is kept short because the online flag inside a fan
	// list goes stale as presence changes.
	FanCacheTTL = 1 * time.Minute
)

// FanCache is a Redis read-through cache in front of the fan listing.
// Cache failures degrade to the underlying source; they never fail the
// request.
type FanCache struct {
	client *redis.Client
	source artist.FanSource
}

// NewFanCache creates a FanCache over the given Redis client and
// fan source.
func NewFanCache(client *redis.Client, source artist.FanSource) *FanCache {
	return &FanCache{client: client, source: source}
}

// Fans returns the fan list for an artist, serving from Redis when a
// fresh entry exists.
func (c *FanCache) Fans(ctx context.Context, artistID string) ([]artist.Fan, error) {
	cacheKey := FanCachePrefix + artistID

	cached, err := c.client.Get(ctx, cacheKey).Result()
	if err == nil {
		var fans []artist.Fan
		if err := json.Unmarshal([]byte(cached), &fans); err == nil {
			slog.Debug("Fan cache hit", "artist_id", artistID, "key", cacheKey)
			return fans, nil
		}
	}

	slog.Debug("Fan cache miss, fetching from database", "artist_id", artistID)

	fans, err := c.source.Fans(ctx, artistID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(fans)
	if err == nil {
		if err := c.client.Set(ctx, cacheKey, data, FanCacheTTL).Err(); err != nil {
			slog.Warn("Failed to store fan list in Redis cache", "artist_id", artistID, "error", err)
		}
	}

	return fans, nil
}

// InvalidateFans removes the cached fan list for an artist.
func (c *FanCache) InvalidateFans(ctx context.Context, artistID string) error {
	cacheKey := FanCachePrefix + artistID

	err := c.client.Del(ctx, cacheKey).Err()
	if err == nil {
		slog.Debug("Fan cache invalidated", "artist_id", artistID, "key", cacheKey)
	}
	return err
}
