package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/logger"
)

// Tails the status change topic and prints every event. Used to watch the
// outbox relay end to end.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Config error:", err)
		return
	}
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required")
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.StatusTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Info("Closing Kafka reader")
		if err := r.Close(); err != nil {
			log.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	log.Info("Consumer connected",
		zap.String("topic", cfg.Kafka.StatusTopic),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("Shutdown signal received, stopping consumer")
				return
			}
			log.Error("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		var event repository.StatusChangedPayload
		if err := json.Unmarshal(m.Value, &event); err != nil {
			log.Warn("Skipping malformed event", zap.ByteString("value", m.Value), zap.Error(err))
			continue
		}

		log.Info("Status changed",
			zap.Int64("return_request_id", event.ReturnRequestID),
			zap.Int64("merchant_id", event.MerchantID),
			zap.String("from", string(event.FromStatus)),
			zap.String("to", string(event.ToStatus)),
			zap.String("event", event.Event),
			zap.String("triggered_by", event.TriggeredBy),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.Time("occurred_at", event.OccurredAt),
		)
	}
}
