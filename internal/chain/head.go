package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/logger"
)

// HeadConfig holds configuration for the cached chain head
type HeadConfig struct {
	// TTL is how long to serve the latest height without asking the node
	TTL time.Duration

	// StaleWindow is how long a cached height may still be served when the node is unreachable
	StaleWindow time.Duration
}

type head struct {
	height    uint64
	fetchedAt time.Time
}

// cachedHeadClient decorates a Client with a TTL cache on LatestHeight
type cachedHeadClient struct {
	Client
	config HeadConfig
	clock  adapter.Clock

	mu     sync.RWMutex
	latest *head
}

// WithHeadCache wraps client so that LatestHeight is served from a short-lived cache.
// A stale value is never ahead of the real tip, so it can only delay progress.
func WithHeadCache(client Client, cfg HeadConfig, clock adapter.Clock) Client {
	if cfg.TTL <= 0 {
		return client
	}
	return &cachedHeadClient{
		Client: client,
		config: cfg,
		clock:  clock,
	}
}

// LatestHeight returns the latest height, using the cache if valid
func (c *cachedHeadClient) LatestHeight(ctx context.Context) (uint64, error) {
	c.mu.RLock()
	cached := c.latest
	c.mu.RUnlock()

	now := c.clock.Now()

	if cached != nil && now.Sub(cached.fetchedAt) < c.config.TTL {
		logger.DebugCtx(ctx, "Using cached chain head", zap.Uint64("height", cached.height))
		return cached.height, nil
	}

	height, err := c.Client.LatestHeight(ctx)
	if err != nil {
		if ctx.Err() == nil && cached != nil && now.Sub(cached.fetchedAt) < c.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale chain head", zap.Uint64("height", cached.height), zap.Error(err))
			return cached.height, nil
		}
		if ctx.Err() != nil {
			return 0, err
		}
		return 0, domain.NewTransientError("latest_height", fmt.Errorf("failed to fetch chain head and no valid cache available: %w", err))
	}

	c.mu.Lock()
	c.latest = &head{height: height, fetchedAt: now}
	c.mu.Unlock()

	return height, nil
}
