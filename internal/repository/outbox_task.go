package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
	// TaskStatusDead marks a task whose attempts are exhausted.
	TaskStatusDead TaskStatus = "DEAD"
	// TaskStatusDiscarded marks a task rejected as permanently unprocessable.
	TaskStatusDiscarded TaskStatus = "DISCARDED"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	MaxAttempts int             `db:"max_attempts"`
	LastError   *string         `db:"last_error"`
	RunAfter    time.Time       `db:"run_after"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// LabelJobPayload is the body of a label generation task.
type LabelJobPayload struct {
	ReturnRequestID int64 `json:"return_request_id"`
}

// StatusChangedPayload is the event emitted for every committed transition.
type StatusChangedPayload struct {
	ReturnRequestID int64        `json:"return_request_id"`
	MerchantID      int64        `json:"merchant_id"`
	FromStatus      ReturnStatus `json:"from_status"`
	ToStatus        ReturnStatus `json:"to_status"`
	Event           string       `json:"event"`
	TriggeredBy     string       `json:"triggered_by"`
	TrackingNumber  string       `json:"tracking_number,omitempty"`
	OccurredAt      time.Time    `json:"occurred_at"`
}
