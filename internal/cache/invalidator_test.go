package cache_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/namada-indexer/internal/cache"
	"github.com/feral-file/namada-indexer/internal/domain"
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

func TestInvalidator_EvictsAffectedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCacheClient(ctrl)

	client.EXPECT().
		Del(gomock.Any(), []string{cache.KeyLatestParameters}).
		DoAndReturn(func(ctx context.Context, keys []string) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
			return nil
		})

	inv := cache.NewInvalidator(client, cache.InvalidatorConfig{Timeout: time.Second})
	inv.Invalidate(context.Background(), domain.DomainParameters, []domain.Record{
		domain.ParameterChange{Name: "max_proposal_period", Value: "27", Height: 5},
	})
	inv.Close()
}

func TestInvalidator_FailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCacheClient(ctrl)

	client.EXPECT().
		Del(gomock.Any(), []string{"governance:proposal:1", cache.KeyActiveProposals}).
		Return(errors.New("connection refused"))

	inv := cache.NewInvalidator(client, cache.InvalidatorConfig{})
	inv.Invalidate(context.Background(), domain.DomainGovernance, []domain.Record{
		domain.ProposalTally{ProposalID: 1, Status: domain.PROPOSAL_STATUS_PASSED},
	})
	inv.Close()
}

func TestInvalidator_CancelledCommitContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCacheClient(ctrl)

	client.EXPECT().
		Del(gomock.Any(), []string{cache.KeyLatestBlock}).
		DoAndReturn(func(ctx context.Context, keys []string) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := cache.NewInvalidator(client, cache.InvalidatorConfig{})
	inv.Invalidate(ctx, domain.DomainChain, nil)
	inv.Close()
}

func TestInvalidator_NothingToEvict(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCacheClient(ctrl)

	inv := cache.NewInvalidator(client, cache.InvalidatorConfig{})
	inv.Invalidate(context.Background(), domain.DomainTransactions, []domain.Record{
		domain.Transaction{Hash: "A"},
	})
	inv.Close()
}

func TestNoopInvalidator(t *testing.T) {
	inv := cache.NewNoopInvalidator()
	inv.Invalidate(context.Background(), domain.DomainChain, nil)
	inv.Close()
}
