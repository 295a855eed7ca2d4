package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teampulse/team-pulse/pkg/config"
)

// Store is a small key-value cache used for directory name resolution.
// Implementations must treat every failure as a miss: the cache is an
// optimization, never a source of truth.
type Store interface {
	// Get retrieves a value by key
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration)

	// Delete removes a key
	Delete(ctx context.Context, key string)
}

// NewRedisClient creates a new Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisStore implements Store on top of a Redis client
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves a value by key; any Redis error counts as a miss
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := rs.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores a key-value pair with expiration; errors are ignored
func (rs *RedisStore) Set(ctx context.Context, key, value string, expiration time.Duration) {
	rs.client.Set(ctx, key, value, expiration)
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) {
	rs.client.Del(ctx, key)
}
