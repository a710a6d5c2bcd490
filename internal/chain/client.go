package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/metrics"
)

// Client fetches finalized blocks from the consensus node
//
//go:generate mockgen -source=client.go -destination=../mocks/chain_client.go -package=mocks -mock_names=Client=MockChainClient
type Client interface {
	// LatestHeight returns the latest height the node has finalized
	LatestHeight(ctx context.Context) (uint64, error)

	// FetchBlock returns the block and its execution results at height.
	// It returns domain.ErrNotYetAvailable when the height has not been produced yet.
	FetchBlock(ctx context.Context, height uint64) (*domain.RawBlock, error)
}

// Config holds the retry and rate limit settings of the client
type Config struct {
	// InitialRetryInterval is the first wait after a failed call
	InitialRetryInterval time.Duration

	// MaxRetryInterval caps the exponential growth of the wait
	MaxRetryInterval time.Duration

	// RetryBudget bounds the total time spent retrying one call, 0 retries forever
	RetryBudget time.Duration

	// RequestsPerSecond limits outgoing calls, 0 disables limiting
	RequestsPerSecond float64
}

// Option customizes a client
type Option func(*client)

// WithTimerFactory replaces the timer used between retries
func WithTimerFactory(newTimer func() backoff.Timer) Option {
	return func(c *client) {
		c.newTimer = newTimer
	}
}

type client struct {
	rpc      adapter.CometRPC
	config   Config
	limiter  *rate.Limiter
	newTimer func() backoff.Timer
}

// NewClient creates a consensus client on top of a CometBFT RPC connection
func NewClient(rpc adapter.CometRPC, cfg Config, opts ...Option) Client {
	c := &client{
		rpc:    rpc,
		config: cfg,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestHeight returns the latest finalized height reported by the node status
func (c *client) LatestHeight(ctx context.Context) (uint64, error) {
	var height uint64
	err := c.retry(ctx, "status", 0, func() error {
		status, err := c.rpc.Status(ctx)
		if err != nil {
			return err
		}
		if status == nil || status.SyncInfo.LatestBlockHeight < 0 {
			return errors.New("invalid status response")
		}
		height = uint64(status.SyncInfo.LatestBlockHeight)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return height, nil
}

// FetchBlock fetches a block and its results and converts them into a RawBlock
func (c *client) FetchBlock(ctx context.Context, height uint64) (*domain.RawBlock, error) {
	var raw *domain.RawBlock
	h := int64(height) //nolint:gosec,G115
	err := c.retry(ctx, "fetch_block", height, func() error {
		blk, err := c.rpc.Block(ctx, &h)
		if err != nil {
			return err
		}
		if err := c.wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		results, err := c.rpc.BlockResults(ctx, &h)
		if err != nil {
			return err
		}

		raw, err = toRawBlock(height, blk, results)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// retry runs call with exponential backoff and maps the final error onto the domain taxonomy
func (c *client) retry(ctx context.Context, op string, height uint64, call func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.InitialRetryInterval
	b.MaxInterval = c.config.MaxRetryInterval
	b.MaxElapsedTime = c.config.RetryBudget
	b.Multiplier = 2
	b.RandomizationFactor = 0.1

	var timer backoff.Timer
	if c.newTimer != nil {
		timer = c.newTimer()
	}

	start := time.Now()
	operation := func() error {
		if err := c.wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		err := call()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if isNotYetAvailable(err) {
			return backoff.Permanent(fmt.Errorf("%w: %d", domain.ErrNotYetAvailable, height))
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		metrics.RPCRetriesTotal.WithLabelValues(op).Inc()
		logger.WarnCtx(ctx, "Consensus RPC call failed, retrying",
			zap.String("op", op),
			zap.Uint64("height", height),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
	}

	err := backoff.RetryNotifyWithTimer(operation, backoff.WithContext(b, ctx), notify, timer)
	if err == nil {
		metrics.RPCLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
		return nil
	}

	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, domain.ErrNotYetAvailable), errors.Is(err, domain.ErrPermanent):
		return err
	default:
		return domain.NewTransientError(op, fmt.Errorf("%w: %v", domain.ErrUnavailable, err))
	}
}

// wait blocks until the rate limiter allows another call
func (c *client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// isNotYetAvailable reports whether the node rejected a height above its tip
func isNotYetAvailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "must be less than or equal to the current blockchain height") ||
		strings.Contains(msg, "could not find results for height")
}
