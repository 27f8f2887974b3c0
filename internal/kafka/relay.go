package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/outbox"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

// Relay forwards status-changed outbox tasks to a Kafka topic, keyed by
// return request so that events of one request stay ordered.
type Relay struct {
	producer Producer
	topic    string
}

func NewRelay(producer Producer, topic string) *Relay {
	return &Relay{producer: producer, topic: topic}
}

func (r *Relay) Handle(ctx context.Context, task *repository.OutboxTask) error {
	var event repository.StatusChangedPayload
	if err := json.Unmarshal(task.Payload, &event); err != nil {
		return outbox.Permanent(fmt.Errorf("invalid status event payload: %w", err))
	}
	key := []byte(strconv.FormatInt(event.ReturnRequestID, 10))
	return r.producer.SendMessage(ctx, r.topic, key, task.Payload)
}
