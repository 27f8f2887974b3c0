package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

var timeNow = time.Now

type OutboxTaskRepo struct {
	db db.DB
}

func NewOutboxTaskRepo(db db.DB) *OutboxTaskRepo {
	return &OutboxTaskRepo{db: db}
}

func (r *OutboxTaskRepo) CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error {
	return r.create(ctx, tx, task)
}

func (r *OutboxTaskRepo) Create(ctx context.Context, task *repository.OutboxTask) error {
	return r.create(ctx, r.db, task)
}

func (r *OutboxTaskRepo) create(ctx context.Context, q db.Querier, task *repository.OutboxTask) error {
	query := `
        INSERT INTO outbox_tasks (id, status, payload, topic, max_attempts, run_after, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := timeNow().UTC()
	if task.RunAfter.IsZero() {
		task.RunAfter = now
	}
	task.Status = repository.TaskStatusCreated

	_, err := q.Exec(ctx, query,
		task.ID,
		task.Status,
		task.Payload,
		task.Topic,
		task.MaxAttempts,
		task.RunAfter,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outbox task: %w", err)
	}
	return nil
}

// ClaimTx locks up to limit runnable tasks of the given topics. A task is
// runnable when it is new, failed and due, or stuck in PROCESSING longer than
// lease.
func (r *OutboxTaskRepo) ClaimTx(ctx context.Context, tx db.Tx, topics []string, limit int, lease time.Duration) ([]*repository.OutboxTask, error) {
	query := `
        SELECT id, status, payload, topic, attempts, max_attempts, last_error, run_after, created_at, updated_at, completed_at
        FROM outbox_tasks
        WHERE topic = ANY($1)
          AND (
                (status IN ($2, $3) AND run_after <= $4)
             OR (status = $5 AND updated_at < $6)
          )
        ORDER BY run_after ASC
        LIMIT $7
        FOR UPDATE SKIP LOCKED
    `
	now := timeNow().UTC()

	var tasks []*repository.OutboxTask
	err := tx.Select(ctx, &tasks, query,
		topics,
		repository.TaskStatusCreated,
		repository.TaskStatusFailed,
		now,
		repository.TaskStatusProcessing,
		now.Add(-lease),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get processable outbox tasks: %w", err)
	}
	return tasks, nil
}

func (r *OutboxTaskRepo) updateTaskStatus(ctx context.Context, q db.Querier, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, runAfter time.Time, completedAt *time.Time) error {
	query := `
        UPDATE outbox_tasks
        SET
            status = $2,
            attempts = $3,
            last_error = $4,
            run_after = $5,
            completed_at = $6
            -- updated_at is handled by the trigger
        WHERE id = $1
    `
	cmdTag, err := q.Exec(ctx, query, id, status, attempts, lastError, runAfter, completedAt)
	if err != nil {
		return fmt.Errorf("failed to update outbox task status for id %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// MarkProcessingTx counts the claim as an attempt, so a task whose lease keeps
// expiring still runs out of attempts. task.Attempts is updated in place.
func (r *OutboxTaskRepo) MarkProcessingTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error {
	attempts := task.Attempts + 1
	if err := r.updateTaskStatus(ctx, tx, task.ID, repository.TaskStatusProcessing, attempts, task.LastError, task.RunAfter, nil); err != nil {
		return err
	}
	task.Attempts = attempts
	return nil
}

func (r *OutboxTaskRepo) MarkDone(ctx context.Context, id uuid.UUID, attempts int) error {
	now := timeNow().UTC()
	return r.updateTaskStatus(ctx, r.db, id, repository.TaskStatusDone, attempts, nil, now, &now)
}

// MarkFailed schedules another attempt at runAfter.
func (r *OutboxTaskRepo) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string, runAfter time.Time) error {
	return r.updateTaskStatus(ctx, r.db, id, repository.TaskStatusFailed, attempts, &lastError, runAfter, nil)
}

// MarkFinished closes a task that will not be retried (DEAD or DISCARDED).
func (r *OutboxTaskRepo) MarkFinished(ctx context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError string) error {
	now := timeNow().UTC()
	return r.updateTaskStatus(ctx, r.db, id, status, attempts, &lastError, now, &now)
}
