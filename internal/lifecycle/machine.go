//go:generate mockgen -source ./machine.go -destination=./mocks/machine.go -package=mock_lifecycle
package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

// TopicStatusChanged is the outbox topic carrying committed transitions.
const TopicStatusChanged = "return_request.status_changed"

const statusEventMaxAttempts = 10

type ReturnRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*repository.ReturnRequest, error)
	GetByIDForUpdateTx(ctx context.Context, tx db.Tx, id int64) (*repository.ReturnRequest, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.ReturnRequest, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, id int64, status repository.ReturnStatus) error
	ApplyLabelTx(ctx context.Context, tx db.Tx, id int64, label repository.LabelInfo) error
}

type AuditLogRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.StatusAuditLog) error
	ListByRequest(ctx context.Context, returnRequestID int64, recent bool) ([]*repository.StatusAuditLog, error)
}

type TaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

type Machine struct {
	db       db.DB
	requests ReturnRequestRepository
	audit    AuditLogRepository
	tasks    TaskRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewMachine(database db.DB, requests ReturnRequestRepository, audit AuditLogRepository, tasks TaskRepository, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		db:       database,
		requests: requests,
		audit:    audit,
		tasks:    tasks,
		logger:   logger,
		now:      time.Now,
	}
}

type transitionMetadata struct {
	TransitionedAt time.Time `json:"transitioned_at"`
	RequestID      int64     `json:"request_id"`
}

// Fire applies event to the request under a row lock. The state change, the
// audit row and the status-changed outbox task commit together or not at all.
func (m *Machine) Fire(ctx context.Context, id int64, event Event, actor string) (*repository.ReturnRequest, error) {
	return m.transition(ctx, id, event, actor, nil)
}

func (m *Machine) Approve(ctx context.Context, id int64, actor string) (*repository.ReturnRequest, error) {
	return m.Fire(ctx, id, EventApprove, actor)
}

func (m *Machine) Reject(ctx context.Context, id int64, actor string) (*repository.ReturnRequest, error) {
	return m.Fire(ctx, id, EventReject, actor)
}

func (m *Machine) Ship(ctx context.Context, id int64, actor string) (*repository.ReturnRequest, error) {
	return m.Fire(ctx, id, EventShip, actor)
}

func (m *Machine) MarkReceived(ctx context.Context, id int64, actor string) (*repository.ReturnRequest, error) {
	return m.Fire(ctx, id, EventMarkReceived, actor)
}

func (m *Machine) Resolve(ctx context.Context, id int64, actor string) (*repository.ReturnRequest, error) {
	return m.Fire(ctx, id, EventResolve, actor)
}

func (m *Machine) Reset(ctx context.Context, id int64, actor string) (*repository.ReturnRequest, error) {
	return m.Fire(ctx, id, EventReset, actor)
}

// ApplyLabel stores the carrier output and approves the request in one
// transaction.
func (m *Machine) ApplyLabel(ctx context.Context, id int64, label repository.LabelInfo, actor string) (*repository.ReturnRequest, error) {
	return m.transition(ctx, id, EventApprove, actor, func(tx db.Tx, req *repository.ReturnRequest) error {
		if err := m.requests.ApplyLabelTx(ctx, tx, id, label); err != nil {
			return err
		}
		req.TrackingNumber = &label.TrackingNumber
		req.Carrier = &label.Carrier
		req.LabelURL = &label.LabelURL
		req.LabelGenerationFailedAt = nil
		req.LabelGenerationError = nil
		return nil
	})
}

// HandleCarrierUpdate advances the request identified by trackingNumber
// according to a carrier status string.
func (m *Machine) HandleCarrierUpdate(ctx context.Context, trackingNumber, status string) (*repository.ReturnRequest, error) {
	event, err := CarrierEvent(status)
	if err != nil {
		return nil, err
	}
	req, err := m.requests.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return m.Fire(ctx, req.ID, event, ActorCarrierWebhook)
}

// AuditTrail returns the transitions of a request, oldest first unless recent
// is set.
func (m *Machine) AuditTrail(ctx context.Context, id int64, recent bool) ([]*repository.StatusAuditLog, error) {
	if _, err := m.requests.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return m.audit.ListByRequest(ctx, id, recent)
}

func (m *Machine) transition(ctx context.Context, id int64, event Event, actor string, before func(tx db.Tx, req *repository.ReturnRequest) error) (*repository.ReturnRequest, error) {
	if actor == "" {
		actor = ActorSystem
	}

	var result *repository.ReturnRequest
	err := db.WithTx(ctx, m.db, func(tx db.Tx) error {
		req, err := m.requests.GetByIDForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		from := req.Status
		to, err := Next(from, event)
		if err != nil {
			return err
		}

		if before != nil {
			if err := before(tx, req); err != nil {
				return err
			}
		}

		if err := m.requests.UpdateStatusTx(ctx, tx, id, to); err != nil {
			return err
		}

		now := m.now().UTC()
		meta, err := json.Marshal(transitionMetadata{TransitionedAt: now, RequestID: id})
		if err != nil {
			return fmt.Errorf("failed to marshal transition metadata: %w", err)
		}
		entry := &repository.StatusAuditLog{
			ReturnRequestID: id,
			FromStatus:      &from,
			ToStatus:        to,
			Event:           string(event),
			TriggeredBy:     actor,
			Metadata:        meta,
		}
		if err := m.audit.CreateTx(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}

		payload := repository.StatusChangedPayload{
			ReturnRequestID: id,
			MerchantID:      req.MerchantID,
			FromStatus:      from,
			ToStatus:        to,
			Event:           string(event),
			TriggeredBy:     actor,
			OccurredAt:      now,
		}
		if req.TrackingNumber != nil {
			payload.TrackingNumber = *req.TrackingNumber
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal status event: %w", err)
		}
		if err := m.tasks.CreateTx(ctx, tx, &repository.OutboxTask{
			Topic:       TopicStatusChanged,
			Payload:     body,
			MaxAttempts: statusEventMaxAttempts,
		}); err != nil {
			return err
		}

		req.Status = to
		result = req
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, repository.ErrObjectNotFound) {
			metrics.OperationErrorsTotal.WithLabelValues("transition").Inc()
			m.logger.Error("Transition failed",
				zap.Int64("return_request_id", id),
				zap.String("event", string(event)),
				zap.String("actor", actor),
				zap.Error(err))
		}
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues(string(event)).Inc()
	m.logger.Info("Return request transitioned",
		zap.Int64("return_request_id", id),
		zap.String("event", string(event)),
		zap.String("to", string(result.Status)),
		zap.String("actor", actor))
	return result, nil
}
