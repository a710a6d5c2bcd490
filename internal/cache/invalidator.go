package cache

import (
	"context"
	"errors"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/metrics"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 4
	DEFAULT_WORKER_QUEUE_SIZE = 256
	DEFAULT_TIMEOUT           = 2 * time.Second
)

// Invalidator evicts cache entries made stale by a commit.
// Invalidation is best-effort: failures are logged and counted, never returned.
//
//go:generate mockgen -source=invalidator.go -destination=../mocks/invalidator.go -package=mocks -mock_names=Invalidator=MockInvalidator
type Invalidator interface {
	// Invalidate schedules the eviction of the keys affected by records and returns immediately
	Invalidate(ctx context.Context, d domain.Domain, records []domain.Record)

	// Close waits for scheduled evictions to finish
	Close()
}

// InvalidatorConfig holds the invalidation worker pool configuration
type InvalidatorConfig struct {
	WorkerPoolSize  int
	WorkerQueueSize int
	Timeout         time.Duration // per eviction
}

type invalidator struct {
	client  adapter.CacheClient
	pool    pond.Pool
	timeout time.Duration
}

// NewInvalidator creates an invalidator evicting keys through client on a bounded worker pool
func NewInvalidator(client adapter.CacheClient, cfg InvalidatorConfig) Invalidator {
	size := cfg.WorkerPoolSize
	if size <= 0 {
		size = DEFAULT_WORKER_POOL_SIZE
	}
	queue := cfg.WorkerQueueSize
	if queue <= 0 {
		queue = DEFAULT_WORKER_QUEUE_SIZE
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	return &invalidator{
		client: client,
		pool: pond.NewPool(
			size,
			pond.WithQueueSize(queue),
			pond.WithNonBlocking(true),
		),
		timeout: timeout,
	}
}

func (i *invalidator) Invalidate(ctx context.Context, d domain.Domain, records []domain.Record) {
	keys := KeysFor(d, records)
	if len(keys) == 0 {
		return
	}

	// evictions outlive the commit cycle, only the timeout bounds them
	base := context.WithoutCancel(ctx)

	task := i.pool.SubmitErr(func() error {
		evictCtx, cancel := context.WithTimeout(base, i.timeout)
		defer cancel()

		if err := i.client.Del(evictCtx, keys); err != nil {
			logger.WarnCtx(evictCtx, "Failed to invalidate cache",
				zap.String("domain", string(d)),
				zap.Strings("keys", keys),
				zap.Error(err))
			metrics.CacheInvalidationsTotal.WithLabelValues(string(d), "failed").Inc()
			return err
		}

		metrics.CacheInvalidationsTotal.WithLabelValues(string(d), "ok").Inc()
		return nil
	})

	select {
	case <-task.Done():
		if err := task.Wait(); errors.Is(err, pond.ErrQueueFull) {
			logger.WarnCtx(ctx, "Cache invalidation queue is full, dropping eviction",
				zap.String("domain", string(d)),
				zap.Strings("keys", keys))
			metrics.CacheInvalidationsTotal.WithLabelValues(string(d), "dropped").Inc()
		}
	default:
	}
}

func (i *invalidator) Close() {
	i.pool.StopAndWait()
}

type noopInvalidator struct{}

// NewNoopInvalidator returns an invalidator for deployments without a cache
func NewNoopInvalidator() Invalidator {
	return noopInvalidator{}
}

func (noopInvalidator) Invalidate(context.Context, domain.Domain, []domain.Record) {}

func (noopInvalidator) Close() {}
