package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

// AuditLogRepo is append-only: rows are never updated or deleted here.
type AuditLogRepo struct {
	db db.DB
}

func NewAuditLogRepo(db db.DB) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

func (r *AuditLogRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.StatusAuditLog) error {
	var created repository.StatusAuditLog
	err := tx.Get(ctx, &created, `
        INSERT INTO status_audit_logs (
            return_request_id, from_status, to_status, event, triggered_by, metadata
        ) VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, return_request_id, from_status, to_status, event, triggered_by, metadata, created_at
    `, entry.ReturnRequestID, entry.FromStatus, entry.ToStatus, entry.Event, entry.TriggeredBy, entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to insert status audit log: %w", translateError(err))
	}
	*entry = created
	return nil
}

// ListByRequest returns the trail oldest first, or newest first when recent.
func (r *AuditLogRepo) ListByRequest(ctx context.Context, returnRequestID int64, recent bool) ([]*repository.StatusAuditLog, error) {
	order := "ASC"
	if recent {
		order = "DESC"
	}

	var entries []*repository.StatusAuditLog
	err := r.db.Select(ctx, &entries, `
        SELECT id, return_request_id, from_status, to_status, event, triggered_by, metadata, created_at
        FROM status_audit_logs
        WHERE return_request_id = $1
        ORDER BY created_at `+order+`, id `+order, returnRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status audit logs: %w", err)
	}
	return entries, nil
}
