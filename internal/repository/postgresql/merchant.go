package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type MerchantRepo struct {
	db db.DB
}

func NewMerchantRepo(db db.DB) *MerchantRepo {
	return &MerchantRepo{db: db}
}

func (r *MerchantRepo) GetByID(ctx context.Context, id int64) (*repository.Merchant, error) {
	var merchant repository.Merchant
	err := r.db.Get(ctx, &merchant, `SELECT id, name, email, created_at FROM merchants WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &merchant, nil
}
