package labels

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/outbox"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type TaskCreator interface {
	Create(ctx context.Context, task *repository.OutboxTask) error
}

// Scheduler queues label jobs once their requests are committed.
type Scheduler struct {
	tasks       TaskCreator
	maxAttempts int
}

func NewScheduler(tasks TaskCreator, maxAttempts int) *Scheduler {
	return &Scheduler{tasks: tasks, maxAttempts: maxAttempts}
}

func (s *Scheduler) Schedule(ctx context.Context, returnRequestID int64) error {
	task, err := outbox.NewTask(TopicGenerate, repository.LabelJobPayload{ReturnRequestID: returnRequestID}, s.maxAttempts)
	if err != nil {
		return err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return fmt.Errorf("failed to schedule label for return request %d: %w", returnRequestID, err)
	}
	return nil
}
