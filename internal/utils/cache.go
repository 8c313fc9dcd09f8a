package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Dashboard cache settings. Order mutations invalidate the key so the
// dashboard never shows a stale total for longer than one request.
const (
	DashboardKey = "report:dashboard"
	DashboardTTL = 60 * time.Second
)

// GetCache retrieves a value from Redis and unmarshals it into dest.
// Returns false with no error when the key is absent.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// SetCache stores a JSON-marshalled value in Redis with a TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// InvalidateDashboard drops the cached dashboard aggregate.
// Called after every order mutation; a nil client is a no-op.
func InvalidateDashboard(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, DashboardKey).Err() // Best effort; next read recomputes anyway
}
