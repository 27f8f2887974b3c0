//go:generate mockgen -source ./creator.go -destination=./mocks/creator.go -package=mock_creator
package creator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/eligibility"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/validation"
)

type ReturnRequestRepository interface {
	GetByIdempotencyKey(ctx context.Context, key string) (*repository.ReturnRequest, error)
	GetByIdempotencyKeys(ctx context.Context, keys []string) ([]*repository.ReturnRequest, error)
	CreateTx(ctx context.Context, tx db.Tx, req *repository.ReturnRequest) error
}

type EligibilityChecker interface {
	Check(ctx context.Context, req *repository.ReturnRequest) (eligibility.Result, error)
}

type LabelScheduler interface {
	Schedule(ctx context.Context, returnRequestID int64) error
}

type CreateParams struct {
	OrderID        int64      `json:"order_id" validate:"gt=0"`
	ProductID      int64      `json:"product_id" validate:"gt=0"`
	MerchantID     int64      `json:"merchant_id" validate:"gt=0"`
	Reason         string     `json:"reason" validate:"required,max=1000"`
	RequestedDate  *time.Time `json:"requested_date,omitempty"`
	IdempotencyKey string     `json:"idempotency_key,omitempty" validate:"max=255"`
}

type BatchItem struct {
	ProductID int64  `json:"product_id" validate:"gt=0"`
	Notes     string `json:"notes,omitempty" validate:"max=1000"`
}

type BatchParams struct {
	OrderID        int64       `json:"order_id" validate:"gt=0"`
	MerchantID     int64       `json:"merchant_id" validate:"gt=0"`
	Reason         string      `json:"reason" validate:"required,max=1000"`
	RequestedDate  *time.Time  `json:"requested_date,omitempty"`
	Items          []BatchItem `json:"items" validate:"dive"`
	IdempotencyKey string      `json:"idempotency_key,omitempty" validate:"max=250"`
}

type Result struct {
	Request    *repository.ReturnRequest
	StatusCode int
}

type BatchResult struct {
	Requests   []*repository.ReturnRequest
	StatusCode int
}

type Creator struct {
	db        db.DB
	requests  ReturnRequestRepository
	checker   EligibilityChecker
	scheduler LabelScheduler
	logger    *zap.Logger
	now       func() time.Time
}

func NewCreator(database db.DB, requests ReturnRequestRepository, checker EligibilityChecker, scheduler LabelScheduler, logger *zap.Logger) *Creator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Creator{
		db:        database,
		requests:  requests,
		checker:   checker,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

// Create stores a single return request. A known idempotency key returns the
// stored request with 200 instead of creating another one.
func (c *Creator) Create(ctx context.Context, params CreateParams, actor string) (*Result, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	if params.IdempotencyKey != "" {
		existing, err := c.requests.GetByIdempotencyKey(ctx, params.IdempotencyKey)
		if err == nil {
			return c.replay(existing), nil
		}
		if !errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("failed to look up idempotency key: %w", err)
		}
	}

	req := c.newRequest(params.OrderID, params.ProductID, params.MerchantID, params.Reason, params.RequestedDate, params.IdempotencyKey)
	if err := c.checkEligibility(ctx, req); err != nil {
		return nil, err
	}

	err := db.WithTx(ctx, c.db, func(tx db.Tx) error {
		return c.requests.CreateTx(ctx, tx, req)
	})
	if err != nil {
		// A racing retry can trip either unique index first.
		if params.IdempotencyKey != "" && isUniqueConflict(err) {
			existing, getErr := c.requests.GetByIdempotencyKey(ctx, params.IdempotencyKey)
			if getErr == nil {
				return c.replay(existing), nil
			}
			if !errors.Is(getErr, repository.ErrObjectNotFound) {
				return nil, fmt.Errorf("failed to load request for idempotency key after conflict: %w", getErr)
			}
		}
		return nil, c.mapWriteError(err)
	}

	metrics.ReturnRequestsCreatedTotal.WithLabelValues("single").Inc()
	c.logger.Info("Return request created",
		zap.Int64("return_request_id", req.ID),
		zap.Int64("order_id", req.OrderID),
		zap.Int64("product_id", req.ProductID),
		zap.String("actor", actor))

	c.schedule(ctx, req.ID)
	return &Result{Request: req, StatusCode: http.StatusCreated}, nil
}

// CreateBatch stores one request per item in a single transaction. Any
// failing item rolls back the whole batch.
func (c *Creator) CreateBatch(ctx context.Context, params BatchParams, actor string) (*BatchResult, error) {
	if len(params.Items) == 0 {
		return nil, &IneligibleError{
			Reason:  ReasonEmptyItems,
			Details: "At least one item must be selected for return",
		}
	}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	keys := batchKeys(params.IdempotencyKey, len(params.Items))
	if keys != nil {
		if existing, err := c.replayBatch(ctx, keys); err != nil || existing != nil {
			return existing, err
		}
	}

	var (
		created      = make([]*repository.ReturnRequest, 0, len(params.Items))
		conflictAt   int
		conflictItem BatchItem
	)
	err := db.WithTx(ctx, c.db, func(tx db.Tx) error {
		for i, item := range params.Items {
			var key string
			if keys != nil {
				key = keys[i]
			}
			req := c.newRequest(params.OrderID, item.ProductID, params.MerchantID, itemReason(params.Reason, item.Notes), params.RequestedDate, key)

			if err := c.checkEligibility(ctx, req); err != nil {
				return rollbackError(i, item, err)
			}
			if err := c.requests.CreateTx(ctx, tx, req); err != nil {
				if keys != nil && isUniqueConflict(err) {
					conflictAt, conflictItem = i, item
					return err
				}
				return rollbackError(i, item, c.mapWriteError(err))
			}
			created = append(created, req)
		}
		return nil
	})
	if err != nil {
		if keys != nil && isUniqueConflict(err) {
			existing, replayErr := c.replayBatch(ctx, keys)
			if replayErr != nil {
				return nil, replayErr
			}
			if existing != nil {
				return existing, nil
			}
			err = rollbackError(conflictAt, conflictItem, c.mapWriteError(err))
		}
		var batchErr *BatchError
		if errors.As(err, &batchErr) {
			c.logger.Info("Batch return request rolled back",
				zap.Int64("order_id", params.OrderID),
				zap.Int("item", batchErr.Index),
				zap.Error(batchErr.Cause))
		}
		return nil, err
	}

	metrics.ReturnRequestsCreatedTotal.WithLabelValues("batch").Add(float64(len(created)))
	c.logger.Info("Batch return requests created",
		zap.Int64("order_id", params.OrderID),
		zap.Int("count", len(created)),
		zap.String("actor", actor))

	for _, req := range created {
		c.schedule(ctx, req.ID)
	}
	return &BatchResult{Requests: created, StatusCode: http.StatusCreated}, nil
}

func (c *Creator) newRequest(orderID, productID, merchantID int64, reason string, requestedDate *time.Time, key string) *repository.ReturnRequest {
	req := &repository.ReturnRequest{
		OrderID:    orderID,
		ProductID:  productID,
		MerchantID: merchantID,
		Reason:     reason,
		Status:     repository.StatusRequested,
	}
	if requestedDate != nil {
		req.RequestedDate = requestedDate.UTC()
	} else {
		now := c.now().UTC()
		req.RequestedDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if key != "" {
		req.IdempotencyKey = &key
	}
	return req
}

func (c *Creator) checkEligibility(ctx context.Context, req *repository.ReturnRequest) error {
	result, err := c.checker.Check(ctx, req)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return validation.New("order_id", "does not exist")
		}
		return err
	}
	if !result.Eligible {
		return &IneligibleError{Reason: result.Reason, Details: result.Details}
	}
	return nil
}

func (c *Creator) replay(existing *repository.ReturnRequest) *Result {
	metrics.ReturnRequestsReplayedTotal.Inc()
	c.logger.Debug("Idempotent replay", zap.Int64("return_request_id", existing.ID))
	return &Result{Request: existing, StatusCode: http.StatusOK}
}

// replayBatch returns the stored batch when every derived key exists and nil
// otherwise.
func (c *Creator) replayBatch(ctx context.Context, keys []string) (*BatchResult, error) {
	existing, err := c.requests.GetByIdempotencyKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to look up batch idempotency keys: %w", err)
	}
	if len(existing) != len(keys) {
		return nil, nil
	}
	metrics.ReturnRequestsReplayedTotal.Inc()
	return &BatchResult{Requests: existing, StatusCode: http.StatusOK}, nil
}

func (c *Creator) schedule(ctx context.Context, id int64) {
	if err := c.scheduler.Schedule(context.WithoutCancel(ctx), id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("schedule_label").Inc()
		c.logger.Error("Failed to schedule label generation", zap.Int64("return_request_id", id), zap.Error(err))
	}
}

func (c *Creator) mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateReturn):
		return validation.New("product_id", "has already been requested for return on this order")
	case errors.Is(err, repository.ErrDuplicateIdempotencyKey):
		return validation.New("idempotency_key", "has already been taken")
	case errors.Is(err, repository.ErrInvalidReference):
		return validation.New("order_id", "must reference an existing order, product and merchant")
	}
	return fmt.Errorf("failed to save return request: %w", err)
}

func isUniqueConflict(err error) bool {
	return errors.Is(err, repository.ErrDuplicateIdempotencyKey) || errors.Is(err, repository.ErrDuplicateReturn)
}

func rollbackError(index int, item BatchItem, cause error) error {
	var verr *validation.Error
	var ineligible *IneligibleError
	if !errors.As(cause, &verr) && !errors.As(cause, &ineligible) {
		return cause
	}
	return &BatchError{
		Reason:    ReasonTransactionRolledBack,
		Details:   batchRolledBackDetails,
		Index:     index,
		ProductID: item.ProductID,
		Cause:     cause,
	}
}

func batchKeys(key string, n int) []string {
	if key == "" {
		return nil
	}
	keys := make([]string, n)
	for i := range keys {
		keys[i] = key + "_" + strconv.Itoa(i)
	}
	return keys
}

func itemReason(reason, notes string) string {
	if notes == "" {
		return reason
	}
	return reason + ": " + notes
}
