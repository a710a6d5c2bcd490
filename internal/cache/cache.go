package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/logger"
)

// Cache is a typed read-through cache in front of the store
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Get decodes the value at key into dest and reports whether it was found
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set encodes value and stores it at key
	Set(ctx context.Context, key string, value any) error
}

type redisCache struct {
	client adapter.CacheClient
	ttl    time.Duration
}

// NewCache creates a cache storing JSON values through client with a fixed TTL
func NewCache(client adapter.CacheClient, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, adapter.ErrCacheMiss) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

type noopCache struct{}

// NewNoopCache returns a cache that never hits
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (noopCache) Set(context.Context, string, any) error { return nil }

// Fetch returns the cached value at key, or loads it and caches the result.
// Cache failures fall through to load; a nil result is not cached.
func Fetch[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.WarnCtx(ctx, "Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if !isNil(value) {
		if err := c.Set(ctx, key, value); err != nil {
			logger.WarnCtx(ctx, "Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
