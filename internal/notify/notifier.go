package notify

import (
	"context"
	"errors"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/metrics"
)

const (
	DEFAULT_PUBLISH_TIMEOUT = 5 * time.Second
	DEFAULT_QUEUE_SIZE      = 1024
)

// Notifier announces committed heights. Failures are logged and counted, never returned.
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// Notify schedules the notification of a committed height and returns immediately
	Notify(ctx context.Context, d domain.Domain, height uint64, records int, committedAt time.Time)

	// Close waits for scheduled notifications to be published
	Close()
}

// NotifierConfig bounds the publishing of notifications
type NotifierConfig struct {
	Timeout   time.Duration // per publish
	QueueSize int
}

type notifier struct {
	publisher Publisher
	timeout   time.Duration
	pool      pond.Pool
}

// NewNotifier creates a notifier publishing through publisher.
// Notifications are published one at a time in commit order; when the queue is full they are dropped.
func NewNotifier(publisher Publisher, cfg NotifierConfig) Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_PUBLISH_TIMEOUT
	}
	queue := cfg.QueueSize
	if queue <= 0 {
		queue = DEFAULT_QUEUE_SIZE
	}

	return &notifier{
		publisher: publisher,
		timeout:   timeout,
		pool: pond.NewPool(
			1,
			pond.WithQueueSize(queue),
			pond.WithNonBlocking(true),
		),
	}
}

func (n *notifier) Notify(ctx context.Context, d domain.Domain, height uint64, records int, committedAt time.Time) {
	notification := domain.CommitNotification{
		EventID:     ulid.Make().String(),
		Domain:      d,
		Height:      height,
		Records:     records,
		CommittedAt: committedAt.UTC(),
	}

	// publishing outlives the commit cycle, only the timeout bounds it
	base := context.WithoutCancel(ctx)

	task := n.pool.SubmitErr(func() error {
		publishCtx, cancel := context.WithTimeout(base, n.timeout)
		defer cancel()

		if err := n.publisher.Publish(publishCtx, notification); err != nil {
			logger.WarnCtx(publishCtx, "Failed to publish commit notification",
				zap.String("domain", string(d)),
				zap.Uint64("height", height),
				zap.Error(err))
			metrics.NotificationsTotal.WithLabelValues(string(d), "failed").Inc()
			return err
		}

		metrics.NotificationsTotal.WithLabelValues(string(d), "ok").Inc()
		return nil
	})

	select {
	case <-task.Done():
		if err := task.Wait(); errors.Is(err, pond.ErrQueueFull) {
			logger.WarnCtx(ctx, "Notification queue is full, dropping notification",
				zap.String("domain", string(d)),
				zap.Uint64("height", height))
			metrics.NotificationsTotal.WithLabelValues(string(d), "dropped").Inc()
		}
	default:
	}
}

func (n *notifier) Close() {
	n.pool.StopAndWait()
}

type noopNotifier struct{}

// NewNoopNotifier returns a notifier for deployments without a broker
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Notify(context.Context, domain.Domain, uint64, int, time.Time) {}

func (noopNotifier) Close() {}
