package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent from the cache
var ErrCacheMiss = errors.New("cache miss")

// CacheClient defines the interface for the key/value cache operations to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=CacheClient=MockCacheClient
type CacheClient interface {
	// Get returns the value stored at key or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value at key with a time to live
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Del removes the keys, missing keys are ignored
	Del(ctx context.Context, keys []string) error

	// Ping checks if the cache is reachable
	Ping(ctx context.Context) error

	// Close closes the connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client from a redis:// URL
func NewRedisClient(url string) (CacheClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return &RealRedisClient{client: redis.NewClient(opts)}, nil
}

func (r *RealRedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return val, err
}

func (r *RealRedisClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RealRedisClient) Del(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RealRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RealRedisClient) Close() error {
	return r.client.Close()
}
