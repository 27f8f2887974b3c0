package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	mock_kafka "gitlab.ozon.dev/pupkingeorgij/returns/internal/kafka/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/outbox"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

func TestRelay_Handle(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"return_request_id":42,"merchant_id":3,"from_status":"requested","to_status":"approved","event":"approve","triggered_by":"system:label_generator","occurred_at":"2025-03-15T10:00:00Z"}`)

	t.Run("forwards keyed by request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		producer := mock_kafka.NewMockProducer(ctrl)
		producer.EXPECT().SendMessage(ctx, "return_request.status_changed", []byte("42"), payload).Return(nil)

		relay := NewRelay(producer, "return_request.status_changed")
		require.NoError(t, relay.Handle(ctx, &repository.OutboxTask{Payload: payload}))
	})

	t.Run("producer failure is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		producer := mock_kafka.NewMockProducer(ctrl)
		producer.EXPECT().SendMessage(ctx, "status", []byte("42"), payload).Return(errors.New("leader not available"))

		err := NewRelay(producer, "status").Handle(ctx, &repository.OutboxTask{Payload: payload})
		require.Error(t, err)
		assert.False(t, outbox.IsPermanent(err))
	})

	t.Run("broken payload is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		relay := NewRelay(mock_kafka.NewMockProducer(ctrl), "status")

		err := relay.Handle(ctx, &repository.OutboxTask{Payload: []byte("not json")})
		assert.True(t, outbox.IsPermanent(err))
	})
}

func TestConsoleProducer(t *testing.T) {
	p := NewConsoleProducer(zaptest.NewLogger(t))
	require.NoError(t, p.SendMessage(context.Background(), "t", []byte("k"), []byte("v")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.SendMessage(ctx, "t", []byte("k"), []byte("v")), context.Canceled)
	assert.NoError(t, p.Close())
}
