package chain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/namada-indexer/internal/chain"
	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/mocks"
)

// testHeadMocks contains all the mocks needed for testing the cached chain head
type testHeadMocks struct {
	ctrl     *gomock.Controller
	upstream *mocks.MockChainClient
	clock    *mocks.MockClock
	client   chain.Client
}

func setupHeadTest(t *testing.T) *testHeadMocks {
	ctrl := gomock.NewController(t)

	upstream := mocks.NewMockChainClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	client := chain.WithHeadCache(upstream, chain.HeadConfig{
		TTL:         10 * time.Second,
		StaleWindow: 2 * time.Minute,
	}, clock)

	return &testHeadMocks{
		ctrl:     ctrl,
		upstream: upstream,
		clock:    clock,
		client:   client,
	}
}

func TestHeadCache_FirstFetch(t *testing.T) {
	tm := setupHeadTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(1000), nil)

	height, err := tm.client.LatestHeight(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), height)
}

func TestHeadCache_WithinTTL(t *testing.T) {
	tm := setupHeadTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(1000), nil).Times(1)
	_, err := tm.client.LatestHeight(ctx)
	assert.NoError(t, err)

	tm.clock.EXPECT().Now().Return(now.Add(5 * time.Second))
	height, err := tm.client.LatestHeight(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), height)
}

func TestHeadCache_ExpiredRefetches(t *testing.T) {
	tm := setupHeadTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(1000), nil)
	_, _ = tm.client.LatestHeight(ctx)

	tm.clock.EXPECT().Now().Return(now.Add(11 * time.Second))
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(1002), nil)
	height, err := tm.client.LatestHeight(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1002), height)
}

func TestHeadCache_StaleOnError(t *testing.T) {
	tm := setupHeadTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(1000), nil)
	_, _ = tm.client.LatestHeight(ctx)

	tm.clock.EXPECT().Now().Return(now.Add(time.Minute))
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(0), errors.New("node unreachable"))
	height, err := tm.client.LatestHeight(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), height)
}

func TestHeadCache_ErrorBeyondStaleWindow(t *testing.T) {
	tm := setupHeadTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(1000), nil)
	_, _ = tm.client.LatestHeight(ctx)

	tm.clock.EXPECT().Now().Return(now.Add(3 * time.Minute))
	tm.upstream.EXPECT().LatestHeight(ctx).Return(uint64(0), errors.New("node unreachable"))
	_, err := tm.client.LatestHeight(ctx)

	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestHeadCache_PassesFetchThrough(t *testing.T) {
	tm := setupHeadTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	block := &domain.RawBlock{Height: 7}
	tm.upstream.EXPECT().FetchBlock(ctx, uint64(7)).Return(block, nil)

	got, err := tm.client.FetchBlock(ctx, 7)
	assert.NoError(t, err)
	assert.Same(t, block, got)
}

func TestHeadCache_DisabledWithoutTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := mocks.NewMockChainClient(ctrl)
	client := chain.WithHeadCache(upstream, chain.HeadConfig{}, mocks.NewMockClock(ctrl))

	assert.Equal(t, chain.Client(upstream), client)
}
