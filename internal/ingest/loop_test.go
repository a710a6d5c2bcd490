package ingest_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/ingest"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type loopMocks struct {
	client      *mocks.MockChainClient
	extractor   *mocks.MockExtractor
	gateway     *mocks.MockGateway
	invalidator *mocks.MockInvalidator
	notifier    *mocks.MockNotifier
	clock       *mocks.MockClock
}

func setupLoop(t *testing.T, d domain.Domain, cfg ingest.Config) (ingest.Loop, *loopMocks) {
	ctrl := gomock.NewController(t)
	m := &loopMocks{
		client:      mocks.NewMockChainClient(ctrl),
		extractor:   mocks.NewMockExtractor(ctrl),
		gateway:     mocks.NewMockGateway(ctrl),
		invalidator: mocks.NewMockInvalidator(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		clock:       mocks.NewMockClock(ctrl),
	}
	m.extractor.EXPECT().Domain().Return(d).AnyTimes()
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	l := ingest.NewLoop(cfg, m.client, m.extractor, m.gateway, m.invalidator, m.notifier, m.clock)
	return l, m
}

func testConfig() ingest.Config {
	return ingest.Config{
		InitialRetryInterval: time.Second,
		MaxRetryInterval:     30 * time.Second,
		TipPollInterval:      500 * time.Millisecond,
	}
}

// fired returns a channel that is ready immediately
func fired() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// cancelOnWait stops the loop on its next sleep
func cancelOnWait(cancel context.CancelFunc) func(time.Duration) <-chan time.Time {
	return func(time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	}
}

func rawBlock(height uint64) *domain.RawBlock {
	return &domain.RawBlock{Height: height, Hash: "HASH", ChainID: "namada-test", Time: now}
}

func TestLoop_CommitsTipThenWaits(t *testing.T) {
	l, m := setupLoop(t, domain.DomainParameters, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	block := rawBlock(100)
	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(100), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(100)).Return([]domain.Record{}, nil),
		m.gateway.EXPECT().
			Commit(gomock.Any(), domain.DomainParameters, uint64(100), []domain.Record{}).
			DoAndReturn(func(ctx context.Context, d domain.Domain, height uint64, records []domain.Record) error {
				// commit must not be interrupted by shutdown
				assert.Nil(t, ctx.Done())
				return nil
			}),
		m.invalidator.EXPECT().Invalidate(gomock.Any(), domain.DomainParameters, []domain.Record{}),
		m.notifier.EXPECT().Notify(gomock.Any(), domain.DomainParameters, uint64(100), 0, now),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(100), nil),
		m.clock.EXPECT().
			After(500*time.Millisecond).
			DoAndReturn(func(d time.Duration) <-chan time.Time {
				s := l.Status()
				assert.Equal(t, ingest.StateWaitingForTip, s.State)
				assert.Equal(t, uint64(100), s.Checkpoint)
				assert.Equal(t, uint64(101), s.Target)
				cancel()
				return make(chan time.Time)
			}),
	)

	err := l.Run(ctx, domain.Checkpoint{Domain: domain.DomainParameters, Height: 99})
	require.NoError(t, err)

	s := l.Status()
	assert.Equal(t, ingest.StateStopped, s.State)
	assert.Equal(t, uint64(100), s.Checkpoint)
	assert.Equal(t, uint64(100), s.KnownTip)
	assert.False(t, s.Halted)
	require.NotNil(t, s.LastCommitAt)
	assert.Equal(t, now, *s.LastCommitAt)
}

func TestLoop_WaitingForTipNeverAdvances(t *testing.T) {
	l, m := setupLoop(t, domain.DomainChain, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(40), nil),
		m.clock.EXPECT().After(500*time.Millisecond).Return(fired()),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(49), nil),
		m.clock.EXPECT().After(500*time.Millisecond).DoAndReturn(cancelOnWait(cancel)),
	)

	err := l.Run(ctx, domain.Checkpoint{Domain: domain.DomainChain, Height: 49})
	require.NoError(t, err)

	s := l.Status()
	assert.Equal(t, uint64(49), s.Checkpoint)
	assert.Equal(t, uint64(50), s.Target)
}

func TestLoop_TransientErrorsBackOffExponentially(t *testing.T) {
	l, m := setupLoop(t, domain.DomainGovernance, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rpcErr := domain.NewTransientError("block", errors.New("connection reset"))
	block := rawBlock(100)
	records := []domain.Record{domain.GovernanceVote{ProposalID: 1, Voter: "tnam1voter", Vote: domain.VOTE_YAY, Height: 100}}

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(200), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, rpcErr),
		m.clock.EXPECT().After(time.Second).Return(fired()),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, rpcErr),
		m.clock.EXPECT().After(2*time.Second).Return(fired()),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, rpcErr),
		m.clock.EXPECT().After(4*time.Second).Return(fired()),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(100)).Return(records, nil),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainGovernance, uint64(100), records).Return(nil),
		m.invalidator.EXPECT().Invalidate(gomock.Any(), domain.DomainGovernance, records),
		m.notifier.EXPECT().Notify(gomock.Any(), domain.DomainGovernance, uint64(100), 1, now),
		// the backoff restarts from the initial interval after a success
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(101)).Return(nil, rpcErr),
		m.clock.EXPECT().After(time.Second).DoAndReturn(cancelOnWait(cancel)),
	)

	err := l.Run(ctx, domain.Checkpoint{Domain: domain.DomainGovernance, Height: 99})
	require.NoError(t, err)

	s := l.Status()
	assert.Equal(t, uint64(100), s.Checkpoint)
	assert.Equal(t, rpcErr.Error(), s.LastError)
	require.NotNil(t, s.LastErrorAt)
}

func TestLoop_BackoffIsCapped(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetryInterval = 3 * time.Second
	l, m := setupLoop(t, domain.DomainChain, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rpcErr := domain.NewTransientError("status", errors.New("timeout"))
	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(0), rpcErr),
		m.clock.EXPECT().After(time.Second).Return(fired()),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(0), rpcErr),
		m.clock.EXPECT().After(2*time.Second).Return(fired()),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(0), rpcErr),
		m.clock.EXPECT().After(3*time.Second).Return(fired()),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(0), rpcErr),
		m.clock.EXPECT().After(3*time.Second).DoAndReturn(cancelOnWait(cancel)),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainChain, Height: 0}))
}

func TestLoop_UnavailableWaitsCeiling(t *testing.T) {
	l, m := setupLoop(t, domain.DomainPoS, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(500), nil),
		m.client.EXPECT().
			FetchBlock(gomock.Any(), uint64(11)).
			Return(nil, domain.NewTransientError("block", domain.ErrUnavailable)),
		m.clock.EXPECT().After(30*time.Second).DoAndReturn(cancelOnWait(cancel)),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainPoS, Height: 10}))
	assert.Equal(t, ingest.StateStopped, l.Status().State)
}

func TestLoop_NotYetAvailableWaitsForTip(t *testing.T) {
	l, m := setupLoop(t, domain.DomainPoS, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(11), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(11)).Return(nil, domain.ErrNotYetAvailable),
		// the node serving the block is behind the one that reported the tip
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(10), nil),
		m.clock.EXPECT().After(500*time.Millisecond).DoAndReturn(func(time.Duration) <-chan time.Time {
			assert.Equal(t, ingest.StateWaitingForTip, l.Status().State)
			cancel()
			return make(chan time.Time)
		}),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainPoS, Height: 10}))

	s := l.Status()
	assert.Equal(t, uint64(10), s.KnownTip)
	assert.Equal(t, uint64(11), s.Target)
	assert.Empty(t, s.LastError)
}

func TestLoop_MissingHeightBelowTipHalts(t *testing.T) {
	cfg := testConfig()
	cfg.MissingHeightRetries = 2
	l, m := setupLoop(t, domain.DomainChain, cfg)

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(1000), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, domain.ErrNotYetAvailable),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(1000), nil),
		m.clock.EXPECT().After(time.Second).DoAndReturn(func(time.Duration) <-chan time.Time {
			s := l.Status()
			assert.Equal(t, ingest.StateBackoff, s.State)
			assert.Equal(t, uint64(1000), s.KnownTip)
			assert.Contains(t, s.LastError, "height 100 is not served by the node although its tip is 1000")
			return fired()
		}),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, domain.ErrNotYetAvailable),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(1000), nil),
		m.clock.EXPECT().After(2*time.Second).Return(fired()),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, domain.ErrNotYetAvailable),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(1001), nil),
	)

	err := l.Run(context.Background(), domain.Checkpoint{Domain: domain.DomainChain, Height: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotYetAvailable)

	s := l.Status()
	assert.True(t, s.Halted)
	assert.Equal(t, ingest.StateHalted, s.State)
	assert.Equal(t, uint64(99), s.Checkpoint)
	assert.Equal(t, uint64(1001), s.KnownTip)
	assert.Equal(t, err.Error(), s.LastError)
}

func TestLoop_MissingHeightRecoversWhenServed(t *testing.T) {
	l, m := setupLoop(t, domain.DomainChain, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	block := rawBlock(100)
	records := []domain.Record{domain.Block{Height: 100, Hash: "HASH"}}

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(1000), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(nil, domain.ErrNotYetAvailable),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(1000), nil),
		m.clock.EXPECT().After(time.Second).Return(fired()),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(100)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(100)).Return(records, nil),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainChain, uint64(100), records).Return(nil),
		m.invalidator.EXPECT().Invalidate(gomock.Any(), domain.DomainChain, records),
		m.notifier.EXPECT().Notify(gomock.Any(), domain.DomainChain, uint64(100), 1, now),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(101)).DoAndReturn(
			func(ctx context.Context, height uint64) (*domain.RawBlock, error) {
				cancel()
				return nil, ctx.Err()
			}),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainChain, Height: 99}))

	s := l.Status()
	assert.False(t, s.Halted)
	assert.Equal(t, uint64(100), s.Checkpoint)
	assert.Equal(t, uint64(1000), s.KnownTip)
}

func TestLoop_FailedCommitRetriesWithoutRefetch(t *testing.T) {
	l, m := setupLoop(t, domain.DomainRewards, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	block := rawBlock(7)
	records := []domain.Record{domain.InflationReward{Epoch: 3, Validator: "tnam1val", Amount: "10", Height: 7}}

	m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(7), nil).Times(2)
	m.client.EXPECT().FetchBlock(gomock.Any(), uint64(7)).Return(block, nil).Times(1)
	m.extractor.EXPECT().Extract(block, uint64(7)).Return(records, nil).Times(1)

	gomock.InOrder(
		m.gateway.EXPECT().
			Commit(gomock.Any(), domain.DomainRewards, uint64(7), records).
			Return(domain.NewTransientError("commit", errors.New("connection refused"))),
		m.clock.EXPECT().After(time.Second).Return(fired()),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainRewards, uint64(7), records).Return(nil),
		m.invalidator.EXPECT().Invalidate(gomock.Any(), domain.DomainRewards, records),
		m.notifier.EXPECT().Notify(gomock.Any(), domain.DomainRewards, uint64(7), 1, now),
		m.clock.EXPECT().After(500*time.Millisecond).DoAndReturn(cancelOnWait(cancel)),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainRewards, Height: 6}))
	assert.Equal(t, uint64(7), l.Status().Checkpoint)
}

func TestLoop_LostCommitAcknowledgementAdvances(t *testing.T) {
	l, m := setupLoop(t, domain.DomainRewards, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	block := rawBlock(7)
	records := []domain.Record{domain.InflationReward{Epoch: 3, Validator: "tnam1val", Amount: "10", Height: 7}}
	ownCommit := &domain.ConflictError{
		Domain:           domain.DomainRewards,
		Height:           7,
		Checkpoint:       7,
		Reason:           "height already committed by this writer",
		AlreadyCommitted: true,
	}

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(7), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(7)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(7)).Return(records, nil),
		m.gateway.EXPECT().
			Commit(gomock.Any(), domain.DomainRewards, uint64(7), records).
			Return(domain.NewTransientError("commit rewards height 7", errors.New("driver: bad connection"))),
		m.clock.EXPECT().After(time.Second).Return(fired()),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainRewards, uint64(7), records).Return(ownCommit),
		m.invalidator.EXPECT().Invalidate(gomock.Any(), domain.DomainRewards, records),
		m.notifier.EXPECT().Notify(gomock.Any(), domain.DomainRewards, uint64(7), 1, now),
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(7), nil),
		m.clock.EXPECT().After(500*time.Millisecond).DoAndReturn(cancelOnWait(cancel)),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainRewards, Height: 6}))

	s := l.Status()
	assert.False(t, s.Halted)
	assert.Equal(t, uint64(7), s.Checkpoint)
	assert.Equal(t, uint64(8), s.Target)
}

func TestLoop_OwnCommitWithoutFailedAttemptHalts(t *testing.T) {
	l, m := setupLoop(t, domain.DomainRewards, testConfig())

	block := rawBlock(7)
	ownCommit := &domain.ConflictError{Domain: domain.DomainRewards, Height: 7, Checkpoint: 7, AlreadyCommitted: true}

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(7), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(7)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(7)).Return([]domain.Record{}, nil),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainRewards, uint64(7), gomock.Any()).Return(ownCommit),
	)

	err := l.Run(context.Background(), domain.Checkpoint{Domain: domain.DomainRewards, Height: 6})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, l.Status().Halted)
	assert.Equal(t, uint64(6), l.Status().Checkpoint)
}

func TestLoop_ConflictHalts(t *testing.T) {
	l, m := setupLoop(t, domain.DomainTransactions, testConfig())

	block := rawBlock(20)
	conflict := &domain.ConflictError{Domain: domain.DomainTransactions, Height: 20, Checkpoint: 25, Reason: "checkpoint moved"}

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(30), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(20)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(20)).Return([]domain.Record{}, nil),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainTransactions, uint64(20), gomock.Any()).Return(conflict),
	)

	err := l.Run(context.Background(), domain.Checkpoint{Domain: domain.DomainTransactions, Height: 19})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	s := l.Status()
	assert.True(t, s.Halted)
	assert.Equal(t, ingest.StateHalted, s.State)
	assert.Equal(t, uint64(19), s.Checkpoint)
	assert.Equal(t, conflict.Error(), s.LastError)
}

func TestLoop_PermanentErrorHalts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *loopMocks, block *domain.RawBlock, permanent error)
	}{
		{
			name: "malformed payload from node",
			setup: func(m *loopMocks, block *domain.RawBlock, permanent error) {
				m.client.EXPECT().FetchBlock(gomock.Any(), uint64(5)).Return(nil, permanent)
			},
		},
		{
			name: "malformed events",
			setup: func(m *loopMocks, block *domain.RawBlock, permanent error) {
				m.client.EXPECT().FetchBlock(gomock.Any(), uint64(5)).Return(block, nil)
				m.extractor.EXPECT().Extract(block, uint64(5)).Return(nil, permanent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, m := setupLoop(t, domain.DomainGovernance, testConfig())
			permanent := domain.NewPermanentError(domain.DomainGovernance, 5, "invalid vote %q", "maybe")

			m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(9), nil)
			tt.setup(m, rawBlock(5), permanent)

			err := l.Run(context.Background(), domain.Checkpoint{Domain: domain.DomainGovernance, Height: 4})
			assert.ErrorIs(t, err, domain.ErrPermanent)
			assert.True(t, l.Status().Halted)
			assert.Equal(t, uint64(4), l.Status().Checkpoint)
		})
	}
}

func TestLoop_SkipMalformedCommitsGapMarker(t *testing.T) {
	cfg := testConfig()
	cfg.SkipMalformedBlocks = true
	l, m := setupLoop(t, domain.DomainPoS, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	block := rawBlock(5)
	permanent := domain.NewPermanentError(domain.DomainPoS, 5, "bad amount %q", "x")
	gap := []domain.Record{domain.GapMarker{Domain: domain.DomainPoS, Height: 5, Reason: permanent.Error()}}

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(9), nil),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(5)).Return(block, nil),
		m.extractor.EXPECT().Extract(block, uint64(5)).Return(nil, permanent),
		m.gateway.EXPECT().Commit(gomock.Any(), domain.DomainPoS, uint64(5), gap).Return(nil),
		m.invalidator.EXPECT().Invalidate(gomock.Any(), domain.DomainPoS, gap),
		m.notifier.EXPECT().Notify(gomock.Any(), domain.DomainPoS, uint64(5), 1, now),
		m.client.EXPECT().FetchBlock(gomock.Any(), uint64(6)).DoAndReturn(
			func(ctx context.Context, height uint64) (*domain.RawBlock, error) {
				cancel()
				return nil, ctx.Err()
			}),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainPoS, Height: 4}))

	s := l.Status()
	assert.Equal(t, uint64(5), s.Checkpoint)
	assert.False(t, s.Halted)
	assert.Equal(t, permanent.Error(), s.LastError)
}

func TestLoop_CancelledBeforeStart(t *testing.T) {
	l, _ := setupLoop(t, domain.DomainChain, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainChain, Height: 0}))
	assert.Equal(t, ingest.StateStopped, l.Status().State)
	assert.Equal(t, uint64(1), l.Status().Target)
}

func TestLoop_RejectsForeignCheckpoint(t *testing.T) {
	l, _ := setupLoop(t, domain.DomainChain, testConfig())

	err := l.Run(context.Background(), domain.Checkpoint{Domain: domain.DomainPoS, Height: 3})
	assert.ErrorContains(t, err, "checkpoint of domain pos passed to the chain loop")
}

func TestNewLoop_Defaults(t *testing.T) {
	l, m := setupLoop(t, domain.DomainChain, ingest.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		m.client.EXPECT().LatestHeight(gomock.Any()).Return(uint64(0), errors.New("dial tcp: refused")),
		m.clock.EXPECT().After(ingest.DEFAULT_INITIAL_RETRY_INTERVAL).DoAndReturn(cancelOnWait(cancel)),
	)

	require.NoError(t, l.Run(ctx, domain.Checkpoint{Domain: domain.DomainChain, Height: 0}))
	assert.Equal(t, ingest.StateStopped, l.Status().State)
}
