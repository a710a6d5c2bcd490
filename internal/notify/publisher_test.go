package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/mocks"
	"github.com/feral-file/namada-indexer/internal/notify"
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

func testConfig() notify.Config {
	return notify.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "NAMADA_INDEXER",
		SubjectPrefix:  "indexer",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "governance-indexer",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nc, js, nil)
	js.EXPECT().
		EnsureStream(gomock.Any(), "NAMADA_INDEXER", []string{"indexer.>"}).
		Return(nil)
	nc.EXPECT().ConnectedUrl().Return("nats://localhost:4222")

	pub, err := notify.NewPublisher(context.Background(), testConfig(), natsJS)
	require.NoError(t, err)
	require.NotNil(t, pub)

	nc.EXPECT().Close()
	pub.Close()
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	pub, err := notify.NewPublisher(context.Background(), testConfig(), natsJS)
	assert.Nil(t, pub)
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewPublisher_StreamErrorClosesConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("not authorized"))
	nc.EXPECT().Close()

	pub, err := notify.NewPublisher(context.Background(), testConfig(), natsJS)
	assert.Nil(t, pub)
	assert.ErrorContains(t, err, "failed to ensure stream NAMADA_INDEXER")
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nc, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	nc.EXPECT().ConnectedUrl().Return("nats://localhost:4222")

	pub, err := notify.NewPublisher(context.Background(), testConfig(), natsJS)
	require.NoError(t, err)

	n := domain.CommitNotification{
		EventID:     "01JBQ0Z8T8Y8W6M1V7X3K2H4N5",
		Domain:      domain.DomainGovernance,
		Height:      120,
		Records:     4,
		CommittedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	js.EXPECT().
		Publish(gomock.Any(), "indexer.governance.committed", gomock.Any(), n.EventID).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, msgID string) (*jetstream.PubAck, error) {
			var got domain.CommitNotification
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, n, got)
			assert.JSONEq(t, `{"event_id":"01JBQ0Z8T8Y8W6M1V7X3K2H4N5","domain":"governance","height":120,"records":4,"committed_at":"2026-01-02T03:04:05Z"}`, string(data))
			return &jetstream.PubAck{Stream: "NAMADA_INDEXER", Sequence: 1}, nil
		})

	require.NoError(t, pub.Publish(context.Background(), n))

	js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	err = pub.Publish(context.Background(), n)
	assert.ErrorContains(t, err, "failed to publish notification")
}
