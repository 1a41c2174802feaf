package services

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
)

// Cache is a key-value store with per-entry expiration.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)             // Decodes a live entry into dest
	Set(ctx context.Context, key string, value any, ttl time.Duration) error // Stores value with expiration
	Delete(ctx context.Context, keys ...string) error                        // Removes exactly the given keys
	Reset(ctx context.Context) error                                         // Removes every entry
}

const usersAllKey = "users:all"

func userKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func debtKey(id uuid.UUID) string {
	return "debt:" + id.String()
}

func summaryKey(userID uuid.UUID) string {
	return "debt-summary:" + userID.String()
}

// debtsAllKey serializes the filter so every filter combination gets its own entry.
func debtsAllKey(filter models.DebtFilter) string {
	data, _ := json.Marshal(filter)
	return "debts:all:" + string(data)
}

// cacheLookup reads key into dest. Cache failures are logged and reported as a miss.
func cacheLookup(ctx context.Context, cache Cache, key string, dest any) bool {
	hit, err := cache.Get(ctx, key, dest)
	if err != nil {
		logger.Log.Errorw("failed to read cache", "key", key, "error", err)
		return false
	}
	return hit
}

// cacheStore writes value at key. Cache failures are logged and otherwise ignored.
func cacheStore(ctx context.Context, cache Cache, key string, value any, ttl time.Duration) {
	if err := cache.Set(ctx, key, value, ttl); err != nil {
		logger.Log.Errorw("failed to write cache", "key", key, "error", err)
	}
}
