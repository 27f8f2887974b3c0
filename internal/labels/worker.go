//go:generate mockgen -source ./worker.go -destination=./mocks/worker.go -package=mock_labels
package labels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/outbox"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

// TopicGenerate is the outbox topic of label generation jobs.
const TopicGenerate = "labels.generate"

type ReturnRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*repository.ReturnRequest, error)
	MarkLabelFailure(ctx context.Context, id int64, failedAt time.Time, message string) error
}

type MerchantRepository interface {
	GetByID(ctx context.Context, id int64) (*repository.Merchant, error)
}

type Carrier interface {
	RequestLabel(ctx context.Context, merchantName string) (Shipment, error)
}

type Store interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
}

type Labeler interface {
	ApplyLabel(ctx context.Context, id int64, label repository.LabelInfo, actor string) (*repository.ReturnRequest, error)
}

type WorkerConfig struct {
	CarrierTimeout time.Duration
	PublicPrefix   string
}

type Worker struct {
	requests  ReturnRequestRepository
	merchants MerchantRepository
	carrier   Carrier
	store     Store
	labeler   Labeler
	config    WorkerConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewWorker(requests ReturnRequestRepository, merchants MerchantRepository, carrier Carrier, store Store, labeler Labeler, config WorkerConfig, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.PublicPrefix == "" {
		config.PublicPrefix = "/labels"
	}
	return &Worker{
		requests:  requests,
		merchants: merchants,
		carrier:   carrier,
		store:     store,
		labeler:   labeler,
		config:    config,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle is the outbox handler for TopicGenerate.
func (w *Worker) Handle(ctx context.Context, task *repository.OutboxTask) error {
	var payload repository.LabelJobPayload
	if err := json.Unmarshal(task.Payload, &payload); err != nil {
		return outbox.Permanent(fmt.Errorf("invalid label job payload: %w", err))
	}
	return w.Process(ctx, payload.ReturnRequestID)
}

// Process provisions a label for a request still in requested state. A
// missing request is a permanent failure; any other failure is recorded on
// the request and returned for retry.
func (w *Worker) Process(ctx context.Context, id int64) error {
	log := w.logger.With(zap.Int64("return_request_id", id))

	req, err := w.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			metrics.LabelJobsTotal.WithLabelValues("discarded").Inc()
			log.Warn("Return request not found, discarding label job")
			return outbox.Permanent(fmt.Errorf("return request %d: %w", id, err))
		}
		return err
	}

	if req.Status != repository.StatusRequested {
		metrics.LabelJobsTotal.WithLabelValues("skipped").Inc()
		log.Info("Skipping label generation, request already processed", zap.String("status", string(req.Status)))
		return nil
	}

	log.Info("Starting label generation")
	label, err := w.generate(ctx, req)
	if err == nil {
		_, err = w.labeler.ApplyLabel(ctx, id, label, lifecycle.ActorLabelGenerator)
	}
	if err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			metrics.LabelJobsTotal.WithLabelValues("skipped").Inc()
			log.Info("Request left requested state during label generation")
			return nil
		}
		w.recordFailure(ctx, id, err)
		return err
	}

	metrics.LabelJobsTotal.WithLabelValues("succeeded").Inc()
	log.Info("Label generated", zap.String("tracking_number", label.TrackingNumber), zap.String("carrier", label.Carrier))
	return nil
}

func (w *Worker) generate(ctx context.Context, req *repository.ReturnRequest) (repository.LabelInfo, error) {
	merchant, err := w.merchants.GetByID(ctx, req.MerchantID)
	if err != nil {
		return repository.LabelInfo{}, fmt.Errorf("failed to load merchant %d: %w", req.MerchantID, err)
	}

	callCtx := ctx
	if w.config.CarrierTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, w.config.CarrierTimeout)
		defer cancel()
	}
	shipment, err := w.carrier.RequestLabel(callCtx, merchant.Name)
	if err != nil {
		return repository.LabelInfo{}, &CarrierError{Err: err}
	}

	png, err := qrcode.Encode(shipment.TrackingNumber, qrcode.Medium, 256)
	if err != nil {
		return repository.LabelInfo{}, fmt.Errorf("failed to render label code: %w", err)
	}
	name := fmt.Sprintf("label_%d_%d.png", req.ID, w.now().Unix())
	if err := w.store.Put(ctx, name, png, "image/png"); err != nil {
		return repository.LabelInfo{}, err
	}

	return repository.LabelInfo{
		TrackingNumber: shipment.TrackingNumber,
		Carrier:        shipment.Carrier,
		LabelURL:       strings.TrimRight(w.config.PublicPrefix, "/") + "/" + name,
	}, nil
}

func (w *Worker) recordFailure(ctx context.Context, id int64, cause error) {
	metrics.LabelJobsTotal.WithLabelValues("failed").Inc()
	message := FailureMessage(cause)
	w.logger.Error("Failed to generate label", zap.Int64("return_request_id", id), zap.String("failure", message))

	if err := w.requests.MarkLabelFailure(context.WithoutCancel(ctx), id, w.now().UTC(), message); err != nil {
		w.logger.Error("Failed to record label failure", zap.Int64("return_request_id", id), zap.Error(err))
	}
}

// CarrierError wraps a failed carrier call.
type CarrierError struct {
	Err error
}

func (e *CarrierError) Error() string { return "carrier request failed: " + e.Err.Error() }
func (e *CarrierError) Unwrap() error { return e.Err }

// FailureMessage renders err as "Class: message" for storage on the request.
func FailureMessage(err error) string {
	var ce *CarrierError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "CarrierTimeout: " + err.Error()
	case errors.As(err, &ce):
		return "CarrierError: " + ce.Err.Error()
	default:
		return "LabelGenerationError: " + err.Error()
	}
}
