//go:generate mockgen -source ./dispatcher.go -destination=./mocks/dispatcher.go -package=mock_outbox
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

const errLeaseExhausted = "lease expired on the final attempt"

// TaskRepository persists task state. MarkProcessingTx increments
// task.Attempts before the handler runs.
type TaskRepository interface {
	ClaimTx(ctx context.Context, tx db.Tx, topics []string, limit int, lease time.Duration) ([]*repository.OutboxTask, error)
	MarkProcessingTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	MarkDone(ctx context.Context, id uuid.UUID, attempts int) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string, runAfter time.Time) error
	MarkFinished(ctx context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError string) error
}

// Handler processes one task. Returning an error wrapped with Permanent
// discards the task; any other error schedules a retry.
type Handler func(ctx context.Context, task *repository.OutboxTask) error

type Config struct {
	PollInterval time.Duration
	BatchSize    int
	Workers      int
	Lease        time.Duration
	BackoffBase  time.Duration
	BackoffMax   time.Duration
	// MaxAttempts applies to tasks stored without their own limit.
	MaxAttempts int
}

type Dispatcher struct {
	db             db.DB
	repo           TaskRepository
	config         Config
	logger         *zap.Logger
	handlers       map[string]Handler
	mu             sync.RWMutex
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
	now            func() time.Time
}

func NewDispatcher(database db.DB, repo TaskRepository, config Config, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 10
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	return &Dispatcher{
		db:             database,
		repo:           repo,
		config:         config,
		logger:         logger,
		handlers:       make(map[string]Handler),
		shutdownSignal: make(chan struct{}),
		now:            time.Now,
	}
}

// Register binds handler to topic. A later registration for the same topic
// replaces the earlier one.
func (d *Dispatcher) Register(topic string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[topic] = handler
}

func (d *Dispatcher) topics() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	topics := make([]string, 0, len(d.handlers))
	for topic := range d.handlers {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

func (d *Dispatcher) handler(topic string) (Handler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.handlers[topic]
	return h, ok
}

func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("Starting outbox dispatcher", zap.Strings("topics", d.topics()))
	d.wg.Add(1)
	defer d.wg.Done()

	ticker := time.NewTicker(d.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := d.ProcessBatch(ctx); err != nil {
				d.logger.Error("Outbox dispatcher failed to process batch", zap.Error(err))
			}
		case <-d.shutdownSignal:
			d.logger.Info("Outbox dispatcher received shutdown signal, stopping")
			return
		case <-ctx.Done():
			d.logger.Info("Outbox dispatcher context cancelled, stopping")
			return
		}
	}
}

func (d *Dispatcher) Shutdown() {
	d.stopOnce.Do(func() {
		d.logger.Info("Initiating outbox dispatcher shutdown")
		close(d.shutdownSignal)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		done := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			d.logger.Info("Outbox dispatcher shutdown complete")
		case <-shutdownCtx.Done():
			d.logger.Warn("Outbox dispatcher shutdown timed out")
		}
	})
}

// ProcessBatch claims due tasks and runs their handlers. It returns the number
// of tasks claimed.
func (d *Dispatcher) ProcessBatch(ctx context.Context) (int, error) {
	topics := d.topics()
	if len(topics) == 0 {
		return 0, nil
	}

	var tasks []*repository.OutboxTask
	err := db.WithTx(ctx, d.db, func(tx db.Tx) error {
		claimed, err := d.repo.ClaimTx(ctx, tx, topics, d.config.BatchSize, d.config.Lease)
		if err != nil {
			return err
		}
		for _, task := range claimed {
			if err := d.repo.MarkProcessingTx(ctx, tx, task); err != nil {
				return fmt.Errorf("failed to mark task %s as PROCESSING: %w", task.ID, err)
			}
		}
		tasks = claimed
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	d.logger.Debug("Outbox dispatcher claimed tasks", zap.Int("count", len(tasks)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.Workers)
	for _, task := range tasks {
		select {
		case <-d.shutdownSignal:
			d.logger.Info("Shutdown signal received during batch, leaving task for lease expiry", zap.Stringer("task_id", task.ID))
			continue
		default:
		}
		g.Go(func() error {
			d.processTask(gctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return len(tasks), nil
}

func (d *Dispatcher) processTask(ctx context.Context, task *repository.OutboxTask) {
	log := d.logger.With(
		zap.Stringer("task_id", task.ID),
		zap.String("topic", task.Topic),
		zap.Int("attempt", task.Attempts),
	)

	handler, ok := d.handler(task.Topic)
	if !ok {
		log.Error("No handler registered for topic")
		return
	}

	// Attempts already includes the current claim.
	attempts := task.Attempts
	maxAttempts := task.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = d.config.MaxAttempts
	}
	// Bookkeeping must land even when the run was cancelled.
	bookCtx := context.WithoutCancel(ctx)

	if attempts > maxAttempts {
		// Reclaimed after its lease expired with no attempts left.
		if err := d.repo.MarkFinished(bookCtx, task.ID, repository.TaskStatusDead, attempts, errLeaseExhausted); err != nil {
			log.Error("Failed to mark task DEAD", zap.Error(err))
			return
		}
		metrics.OutboxTasksTotal.WithLabelValues(task.Topic, string(repository.TaskStatusDead)).Inc()
		log.Error("Task lease expired on its last attempt", zap.Int("max_attempts", maxAttempts))
		return
	}

	runErr := handler(ctx, task)
	if runErr == nil {
		if err := d.repo.MarkDone(bookCtx, task.ID, attempts); err != nil {
			log.Error("Failed to mark task DONE", zap.Error(err))
			return
		}
		metrics.OutboxTasksTotal.WithLabelValues(task.Topic, string(repository.TaskStatusDone)).Inc()
		log.Debug("Task processed")
		return
	}

	var (
		status repository.TaskStatus
		err    error
	)
	switch {
	case IsPermanent(runErr):
		status = repository.TaskStatusDiscarded
		err = d.repo.MarkFinished(bookCtx, task.ID, status, attempts, runErr.Error())
		log.Warn("Task discarded", zap.Error(runErr))
	case attempts >= maxAttempts:
		status = repository.TaskStatusDead
		err = d.repo.MarkFinished(bookCtx, task.ID, status, attempts, runErr.Error())
		log.Error("Task exhausted its attempts", zap.Int("max_attempts", maxAttempts), zap.Error(runErr))
	default:
		status = repository.TaskStatusFailed
		runAfter := d.now().UTC().Add(Backoff(d.config.BackoffBase, d.config.BackoffMax, attempts))
		err = d.repo.MarkFailed(bookCtx, task.ID, attempts, runErr.Error(), runAfter)
		log.Warn("Task failed, retry scheduled", zap.Time("run_after", runAfter), zap.Error(runErr))
	}
	if err != nil {
		log.Error("Failed to record task failure", zap.String("status", string(status)), zap.Error(err), zap.NamedError("cause", runErr))
		return
	}
	metrics.OutboxTasksTotal.WithLabelValues(task.Topic, string(status)).Inc()
}

// Backoff returns base*2^(attempt-1), capped at limit.
func Backoff(base, limit time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if limit > 0 && delay >= limit {
			return limit
		}
	}
	if limit > 0 && delay > limit {
		return limit
	}
	return delay
}

// NewTask serializes payload into a task for topic.
func NewTask(topic string, payload interface{}, maxAttempts int) (*repository.OutboxTask, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	return &repository.OutboxTask{
		Topic:       topic,
		Payload:     body,
		MaxAttempts: maxAttempts,
	}, nil
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}
