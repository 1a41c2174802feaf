package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/redis/go-redis/v9"
)

// CacheRepository is a JSON key-value cache backed by Redis
type CacheRepository struct {
	client *redis.Client
}

// NewCacheRepository creates a new cache repository on top of the given client.
func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

// Get decodes the live entry at key into dest. It reports false when the key is
// absent or expired.
func (r *CacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("cache get",
			"key", key,
			"error", err,
		)
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		logger.Log.Errorw("cache decode",
			"key", key,
			"error", err,
		)
		return false, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return true, nil
}

// Set stores value at key with the given expiration, replacing any previous entry.
func (r *CacheRepository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Delete removes exactly the given keys.
func (r *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	n, err := r.client.Del(ctx, keys...).Result()

	logger.Log.Infow("cache delete",
		"keys", keys,
		"deleted", n,
		"error", err,
	)

	return err
}

// Reset drops every entry of the configured Redis logical database.
func (r *CacheRepository) Reset(ctx context.Context) error {
	err := r.client.FlushDB(ctx).Err()

	logger.Log.Infow("cache reset",
		"error", err,
	)

	return err
}
