package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, `
        SELECT id, merchant_id, order_number, customer_name, customer_email,
               order_date, total_amount, total_cents, currency, created_at
        FROM orders WHERE id = $1
    `, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}
