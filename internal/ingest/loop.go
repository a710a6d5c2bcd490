package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/cache"
	"github.com/feral-file/namada-indexer/internal/chain"
	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/extractor"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/metrics"
	"github.com/feral-file/namada-indexer/internal/notify"
	"github.com/feral-file/namada-indexer/internal/store"
)

// State is the current stage of a domain loop
type State string

const (
	StateIdle          State = "idle"
	StateFetching      State = "fetching"
	StateWaitingForTip State = "waiting_for_tip"
	StateExtracting    State = "extracting"
	StateCommitting    State = "committing"
	StateInvalidating  State = "invalidating"
	StateBackoff       State = "backoff"
	StateHalted        State = "halted"
	StateStopped       State = "stopped"
)

var allStates = []string{
	string(StateIdle),
	string(StateFetching),
	string(StateWaitingForTip),
	string(StateExtracting),
	string(StateCommitting),
	string(StateInvalidating),
	string(StateBackoff),
	string(StateHalted),
	string(StateStopped),
}

const (
	DEFAULT_INITIAL_RETRY_INTERVAL = time.Second
	DEFAULT_MAX_RETRY_INTERVAL     = 30 * time.Second
	DEFAULT_TIP_POLL_INTERVAL      = time.Second
	DEFAULT_MISSING_HEIGHT_RETRIES = 10
	BACKOFF_MULTIPLIER             = 2
)

// Config holds the pacing and failure policy of a loop
type Config struct {
	InitialRetryInterval time.Duration
	MaxRetryInterval     time.Duration
	TipPollInterval      time.Duration

	// SkipMalformedBlocks commits a gap marker for a malformed height instead of halting
	SkipMalformedBlocks bool

	// MissingHeightRetries bounds the retries of a height below the chain tip that the node does not serve
	MissingHeightRetries int
}

// Status is a snapshot of a loop for the status endpoint
type Status struct {
	Domain       domain.Domain `json:"domain"`
	State        State         `json:"state"`
	Checkpoint   uint64        `json:"checkpoint"`
	Target       uint64        `json:"target"`
	KnownTip     uint64        `json:"knownTip"`
	LastError    string        `json:"lastError,omitempty"`
	LastErrorAt  *time.Time    `json:"lastErrorAt,omitempty"`
	LastCommitAt *time.Time    `json:"lastCommitAt,omitempty"`
	Halted       bool          `json:"halted"`
}

// Loop drives one domain from its checkpoint towards the chain tip
//
//go:generate mockgen -source=loop.go -destination=../mocks/loop.go -package=mocks -mock_names=Loop=MockLoop
type Loop interface {
	// Run processes heights after checkpoint until ctx is cancelled or a non-recoverable error occurs.
	// It returns nil on cancellation.
	Run(ctx context.Context, checkpoint domain.Checkpoint) error

	// Status returns a snapshot of the loop
	Status() Status
}

// pendingBlock holds the records of a height until they are committed
type pendingBlock struct {
	height  uint64
	records []domain.Record
	gap     bool

	// attempted is set once a commit of the records failed
	attempted bool
}

type loop struct {
	domain      domain.Domain
	config      Config
	client      chain.Client
	extractor   extractor.Extractor
	gateway     store.Gateway
	invalidator cache.Invalidator
	notifier    notify.Notifier
	clock       adapter.Clock

	mu     sync.RWMutex
	status Status
}

// NewLoop creates the loop of the extractor's domain
func NewLoop(
	cfg Config,
	client chain.Client,
	ext extractor.Extractor,
	gateway store.Gateway,
	invalidator cache.Invalidator,
	notifier notify.Notifier,
	clock adapter.Clock,
) Loop {
	if cfg.InitialRetryInterval <= 0 {
		cfg.InitialRetryInterval = DEFAULT_INITIAL_RETRY_INTERVAL
	}
	if cfg.MaxRetryInterval < cfg.InitialRetryInterval {
		cfg.MaxRetryInterval = max(DEFAULT_MAX_RETRY_INTERVAL, cfg.InitialRetryInterval)
	}
	if cfg.TipPollInterval <= 0 {
		cfg.TipPollInterval = DEFAULT_TIP_POLL_INTERVAL
	}
	if cfg.MissingHeightRetries <= 0 {
		cfg.MissingHeightRetries = DEFAULT_MISSING_HEIGHT_RETRIES
	}

	d := ext.Domain()
	return &loop{
		domain:      d,
		config:      cfg,
		client:      client,
		extractor:   ext,
		gateway:     gateway,
		invalidator: invalidator,
		notifier:    notifier,
		clock:       clock,
		status:      Status{Domain: d, State: StateIdle},
	}
}

func (l *loop) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *loop) Run(ctx context.Context, checkpoint domain.Checkpoint) error {
	if checkpoint.Domain != "" && checkpoint.Domain != l.domain {
		return fmt.Errorf("checkpoint of domain %s passed to the %s loop", checkpoint.Domain, l.domain)
	}

	target := checkpoint.Next()
	l.update(func(s *Status) {
		s.Checkpoint = checkpoint.Height
		s.Target = target
		s.Halted = false
	})
	metrics.Halted.WithLabelValues(string(l.domain)).Set(0)
	metrics.CheckpointHeight.WithLabelValues(string(l.domain)).Set(float64(checkpoint.Height))

	logger.InfoCtx(ctx, "Starting ingestion loop",
		zap.String("domain", string(l.domain)),
		zap.Uint64("checkpoint", checkpoint.Height),
		zap.Uint64("height", target))

	bo := l.newBackOff()
	var pending *pendingBlock
	missing := 0

	for {
		if ctx.Err() != nil {
			return l.stop(ctx)
		}

		if pending == nil {
			l.setState(StateIdle)

			if target > l.Status().KnownTip {
				l.setState(StateFetching)
				tip, err := l.client.LatestHeight(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return l.stop(ctx)
					}
					if !l.backoff(ctx, bo, target, err) {
						return l.stop(ctx)
					}
					continue
				}
				l.setTip(tip)

				if target > tip {
					if !l.waitForTip(ctx, target) {
						return l.stop(ctx)
					}
					continue
				}
			}

			l.setState(StateFetching)
			block, err := l.client.FetchBlock(ctx, target)
			if err != nil {
				switch {
				case ctx.Err() != nil:
					return l.stop(ctx)
				case errors.Is(err, domain.ErrNotYetAvailable):
					ok, haltErr := l.heightUnavailable(ctx, bo, target, &missing, err)
					if haltErr != nil {
						return haltErr
					}
					if !ok {
						return l.stop(ctx)
					}
					continue
				case errors.Is(err, domain.ErrPermanent):
					gap, haltErr := l.malformed(ctx, target, err)
					if haltErr != nil {
						return haltErr
					}
					pending = gap
				default:
					if !l.backoff(ctx, bo, target, err) {
						return l.stop(ctx)
					}
					continue
				}
			} else {
				missing = 0
				l.setState(StateExtracting)
				records, err := l.extractor.Extract(block, target)
				if err != nil {
					gap, haltErr := l.malformed(ctx, target, err)
					if haltErr != nil {
						return haltErr
					}
					pending = gap
				} else {
					pending = &pendingBlock{height: target, records: records}
				}
			}
		}

		l.setState(StateCommitting)
		if err := l.commit(ctx, pending); err != nil {
			if !domain.IsTransient(err) {
				return l.halt(ctx, target, errorClass(err), err)
			}
			// keep the pending records so the retry does not refetch
			pending.attempted = true
			if !l.backoff(ctx, bo, target, err) {
				return l.stop(ctx)
			}
			continue
		}

		l.setState(StateInvalidating)
		l.invalidator.Invalidate(ctx, l.domain, pending.records)

		bo.Reset()
		pending = nil
		target++
		l.update(func(s *Status) { s.Target = target })
	}
}

// commit writes one height on a context that survives cancellation
func (l *loop) commit(ctx context.Context, p *pendingBlock) error {
	start := l.clock.Now()
	err := l.gateway.Commit(context.WithoutCancel(ctx), l.domain, p.height, p.records)
	if err != nil {
		// a failed attempt may have committed before its acknowledgement was lost
		if !p.attempted || !domain.IsAlreadyCommitted(err) {
			return err
		}
		logger.InfoCtx(ctx, "Height was committed by the previous attempt",
			zap.String("domain", string(l.domain)),
			zap.Uint64("height", p.height))
	}
	committedAt := l.clock.Now()

	d := string(l.domain)
	metrics.CommitsTotal.WithLabelValues(d).Inc()
	metrics.CommitLatency.WithLabelValues(d).Observe(committedAt.Sub(start).Seconds())
	metrics.CheckpointHeight.WithLabelValues(d).Set(float64(p.height))
	for _, r := range p.records {
		metrics.RecordsCommittedTotal.WithLabelValues(d, string(r.Kind())).Inc()
	}
	if p.gap {
		metrics.SkippedHeightsTotal.WithLabelValues(d).Inc()
	}

	l.update(func(s *Status) {
		s.Checkpoint = p.height
		s.LastCommitAt = &committedAt
	})

	logger.DebugCtx(ctx, "Committed height",
		zap.String("domain", d),
		zap.Uint64("height", p.height),
		zap.Int("records", len(p.records)))

	l.notifier.Notify(ctx, l.domain, p.height, len(p.records), committedAt)
	return nil
}

// malformed either halts the loop or replaces the height's records with a gap marker
func (l *loop) malformed(ctx context.Context, height uint64, err error) (*pendingBlock, error) {
	if !l.config.SkipMalformedBlocks {
		return nil, l.halt(ctx, height, "permanent", err)
	}

	l.recordError(err)
	metrics.ErrorsTotal.WithLabelValues(string(l.domain), "permanent").Inc()
	logger.WarnCtx(ctx, "Skipping malformed block",
		zap.String("domain", string(l.domain)),
		zap.Uint64("height", height),
		zap.Error(err))

	return &pendingBlock{
		height: height,
		records: []domain.Record{domain.GapMarker{
			Domain: l.domain,
			Height: height,
			Reason: err.Error(),
		}},
		gap: true,
	}, nil
}

// heightUnavailable handles a height the node reports as not produced yet.
// Below the chain tip it is retried with backoff and halts the loop after MissingHeightRetries attempts.
// It returns false when ctx is cancelled.
func (l *loop) heightUnavailable(ctx context.Context, bo backoff.BackOff, target uint64, missing *int, cause error) (bool, error) {
	tip, err := l.client.LatestHeight(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return l.backoff(ctx, bo, target, err), nil
	}
	l.setTip(tip)

	if target > tip {
		*missing = 0
		return l.waitForTip(ctx, target), nil
	}

	*missing++
	err = fmt.Errorf("height %d is not served by the node although its tip is %d: %w", target, tip, cause)
	if *missing > l.config.MissingHeightRetries {
		return false, l.halt(ctx, target, "missing_height", err)
	}
	return l.backoff(ctx, bo, target, err), nil
}

// waitForTip sleeps one poll interval. It returns false when ctx is cancelled.
func (l *loop) waitForTip(ctx context.Context, target uint64) bool {
	l.setState(StateWaitingForTip)
	logger.DebugCtx(ctx, "Waiting for chain tip",
		zap.String("domain", string(l.domain)),
		zap.Uint64("height", target),
		zap.Uint64("tip", l.Status().KnownTip))
	return l.sleep(ctx, l.config.TipPollInterval)
}

// backoff sleeps the next retry interval. It returns false when ctx is cancelled.
func (l *loop) backoff(ctx context.Context, bo backoff.BackOff, target uint64, err error) bool {
	l.recordError(err)
	metrics.ErrorsTotal.WithLabelValues(string(l.domain), "transient").Inc()

	interval := bo.NextBackOff()
	if errors.Is(err, domain.ErrUnavailable) || interval == backoff.Stop {
		interval = l.config.MaxRetryInterval
	}

	l.setState(StateBackoff)
	logger.WarnCtx(ctx, "Retrying after error",
		zap.String("domain", string(l.domain)),
		zap.Uint64("height", target),
		zap.Duration("wait", interval),
		zap.Error(err))

	return l.sleep(ctx, interval)
}

func (l *loop) halt(ctx context.Context, height uint64, class string, err error) error {
	l.recordError(err)
	l.setState(StateHalted)
	l.update(func(s *Status) { s.Halted = true })
	metrics.ErrorsTotal.WithLabelValues(string(l.domain), class).Inc()
	metrics.Halted.WithLabelValues(string(l.domain)).Set(1)

	logger.ErrorCtx(ctx, err,
		zap.String("message", "Ingestion loop halted"),
		zap.String("domain", string(l.domain)),
		zap.Uint64("height", height),
		zap.String("class", class))
	return err
}

func (l *loop) stop(ctx context.Context) error {
	l.setState(StateStopped)
	logger.InfoCtx(ctx, "Ingestion loop stopped",
		zap.String("domain", string(l.domain)),
		zap.Uint64("checkpoint", l.Status().Checkpoint))
	return nil
}

func (l *loop) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-l.clock.After(d):
		return true
	}
}

func (l *loop) newBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = l.config.InitialRetryInterval
	bo.MaxInterval = l.config.MaxRetryInterval
	bo.Multiplier = BACKOFF_MULTIPLIER
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

func (l *loop) setState(state State) {
	l.update(func(s *Status) { s.State = state })
	metrics.SetLoopState(string(l.domain), string(state), allStates)
}

func (l *loop) setTip(tip uint64) {
	l.update(func(s *Status) { s.KnownTip = tip })
	metrics.ChainTipHeight.WithLabelValues(string(l.domain)).Set(float64(tip))
}

func (l *loop) recordError(err error) {
	now := l.clock.Now()
	l.update(func(s *Status) {
		s.LastError = err.Error()
		s.LastErrorAt = &now
	})
}

func (l *loop) update(fn func(s *Status)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.status)
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrPermanent):
		return "permanent"
	default:
		return "transient"
	}
}
