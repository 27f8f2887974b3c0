package postgresql

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var uniqueConstraints = map[string]error{
	"return_requests_idempotency_key_key": repository.ErrDuplicateIdempotencyKey,
	"return_requests_order_product_key":   repository.ErrDuplicateReturn,
	"return_rules_merchant_product_key":   repository.ErrDuplicateRule,
}

// translateError maps driver errors onto repository sentinels and passes
// everything else through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrObjectNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if sentinel, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return sentinel
		}
	case pgForeignKeyViolation:
		return repository.ErrInvalidReference
	}
	return err
}
