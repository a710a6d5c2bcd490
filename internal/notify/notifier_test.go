package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/mocks"
	"github.com/feral-file/namada-indexer/internal/notify"
)

func TestNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)
	committedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("ICT", 7*3600))

	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.CommitNotification) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)

			_, err := ulid.ParseStrict(n.EventID)
			assert.NoError(t, err)
			assert.Equal(t, domain.DomainPoS, n.Domain)
			assert.Equal(t, uint64(99), n.Height)
			assert.Equal(t, 7, n.Records)
			assert.Equal(t, time.UTC, n.CommittedAt.Location())
			assert.True(t, committedAt.Equal(n.CommittedAt))
			return nil
		})

	n := notify.NewNotifier(pub, notify.NotifierConfig{Timeout: time.Second})
	n.Notify(context.Background(), domain.DomainPoS, 99, 7, committedAt)
	n.Close()
}

func TestNotifier_UniqueEventIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)

	seen := map[string]bool{}
	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.CommitNotification) error {
			assert.False(t, seen[n.EventID])
			seen[n.EventID] = true
			return nil
		}).
		Times(3)

	n := notify.NewNotifier(pub, notify.NotifierConfig{})
	for h := uint64(1); h <= 3; h++ {
		n.Notify(context.Background(), domain.DomainChain, h, 1, time.Now())
	}
	n.Close()
	assert.Len(t, seen, 3)
}

func TestNotifier_FailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)

	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("nats: timeout"))

	n := notify.NewNotifier(pub, notify.NotifierConfig{Timeout: time.Second})
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.DomainRewards, 5, 0, time.Now())
		n.Close()
	})
}

func TestNotifier_CancelledContextStillPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.CommitNotification) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	n := notify.NewNotifier(pub, notify.NotifierConfig{Timeout: time.Second})
	n.Notify(ctx, domain.DomainParameters, 10, 2, time.Now())
	n.Close()
}

func TestNotifier_DoesNotWaitForPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)

	release := make(chan struct{})
	var heights []uint64
	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n domain.CommitNotification) error {
			<-release
			heights = append(heights, n.Height)
			return nil
		}).
		Times(2)

	n := notify.NewNotifier(pub, notify.NotifierConfig{Timeout: time.Minute})
	n.Notify(context.Background(), domain.DomainChain, 1, 0, time.Now())
	n.Notify(context.Background(), domain.DomainChain, 2, 0, time.Now())

	close(release)
	n.Close()
	assert.Equal(t, []uint64{1, 2}, heights)
}

func TestNoopNotifier(t *testing.T) {
	assert.NotPanics(t, func() {
		n := notify.NewNoopNotifier()
		n.Notify(context.Background(), domain.DomainChain, 1, 1, time.Now())
		n.Close()
	})
}
