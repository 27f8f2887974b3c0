package postgresql

import (
	"context"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

const returnRequestColumns = `id, order_id, product_id, merchant_id, reason, requested_date, status,
        idempotency_key, tracking_number, carrier, label_url,
        label_generation_failed_at, label_generation_error, created_at, updated_at`

type ReturnRequestRepo struct {
	db db.DB
}

func NewReturnRequestRepo(db db.DB) *ReturnRequestRepo {
	return &ReturnRequestRepo{db: db}
}

func (r *ReturnRequestRepo) GetByID(ctx context.Context, id int64) (*repository.ReturnRequest, error) {
	var req repository.ReturnRequest
	err := r.db.Get(ctx, &req, `SELECT `+returnRequestColumns+` FROM return_requests WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// GetByIDForUpdateTx locks the row until tx ends.
func (r *ReturnRequestRepo) GetByIDForUpdateTx(ctx context.Context, tx db.Tx, id int64) (*repository.ReturnRequest, error) {
	var req repository.ReturnRequest
	err := tx.Get(ctx, &req, `SELECT `+returnRequestColumns+` FROM return_requests WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

func (r *ReturnRequestRepo) GetByIdempotencyKey(ctx context.Context, key string) (*repository.ReturnRequest, error) {
	var req repository.ReturnRequest
	err := r.db.Get(ctx, &req, `SELECT `+returnRequestColumns+` FROM return_requests WHERE idempotency_key = $1`, key)
	if err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// GetByIdempotencyKeys returns the requests found for keys, in key order.
// Missing keys are skipped.
func (r *ReturnRequestRepo) GetByIdempotencyKeys(ctx context.Context, keys []string) ([]*repository.ReturnRequest, error) {
	var found []*repository.ReturnRequest
	err := r.db.Select(ctx, &found, `
        SELECT `+returnRequestColumns+`
        FROM return_requests
        WHERE idempotency_key = ANY($1)
    `, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to get return requests by idempotency keys: %w", err)
	}

	byKey := make(map[string]*repository.ReturnRequest, len(found))
	for _, req := range found {
		if req.IdempotencyKey != nil {
			byKey[*req.IdempotencyKey] = req
		}
	}
	ordered := make([]*repository.ReturnRequest, 0, len(found))
	for _, key := range keys {
		if req, ok := byKey[key]; ok {
			ordered = append(ordered, req)
		}
	}
	return ordered, nil
}

func (r *ReturnRequestRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.ReturnRequest, error) {
	var req repository.ReturnRequest
	err := r.db.Get(ctx, &req, `SELECT `+returnRequestColumns+` FROM return_requests WHERE tracking_number = $1`, trackingNumber)
	if err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

func (r *ReturnRequestRepo) ListByMerchant(ctx context.Context, merchantID int64, status repository.ReturnStatus, page, limit int) ([]*repository.ReturnRequest, error) {
	offset := (page - 1) * limit
	query := `SELECT ` + returnRequestColumns + ` FROM return_requests WHERE merchant_id = $1`
	args := []interface{}{merchantID}

	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var requests []*repository.ReturnRequest
	if err := r.db.Select(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list return requests: %w", err)
	}
	return requests, nil
}

// CreateTx inserts req in state requested and fills the generated columns.
func (r *ReturnRequestRepo) CreateTx(ctx context.Context, tx db.Tx, req *repository.ReturnRequest) error {
	var created repository.ReturnRequest
	err := tx.Get(ctx, &created, `
        INSERT INTO return_requests (
            order_id, product_id, merchant_id, reason, requested_date, status, idempotency_key
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+returnRequestColumns,
		req.OrderID, req.ProductID, req.MerchantID, req.Reason, req.RequestedDate, repository.StatusRequested, req.IdempotencyKey)
	if err != nil {
		return translateError(err)
	}
	*req = created
	return nil
}

func (r *ReturnRequestRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, id int64, status repository.ReturnStatus) error {
	tag, err := tx.Exec(ctx, `UPDATE return_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update status of return request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// ApplyLabelTx stores carrier output and clears earlier failure markers.
func (r *ReturnRequestRepo) ApplyLabelTx(ctx context.Context, tx db.Tx, id int64, label repository.LabelInfo) error {
	tag, err := tx.Exec(ctx, `
        UPDATE return_requests
        SET
            tracking_number = $2,
            carrier = $3,
            label_url = $4,
            label_generation_failed_at = NULL,
            label_generation_error = NULL
        WHERE id = $1
    `, id, label.TrackingNumber, label.Carrier, label.LabelURL)
	if err != nil {
		return fmt.Errorf("failed to store label for return request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ReturnRequestRepo) MarkLabelFailure(ctx context.Context, id int64, failedAt time.Time, message string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE return_requests
        SET label_generation_failed_at = $2, label_generation_error = $3
        WHERE id = $1
    `, id, failedAt, message)
	if err != nil {
		return fmt.Errorf("failed to record label failure for return request %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
