package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type ReturnRuleRepo struct {
	db db.DB
}

func NewReturnRuleRepo(db db.DB) *ReturnRuleRepo {
	return &ReturnRuleRepo{db: db}
}

func (r *ReturnRuleRepo) Create(ctx context.Context, rule *repository.ReturnRule) error {
	var created repository.ReturnRule
	err := r.db.Get(ctx, &created, `
        INSERT INTO return_rules (merchant_id, product_id, configuration)
        VALUES ($1, $2, $3)
        RETURNING id, merchant_id, product_id, configuration, created_at, updated_at
    `, rule.MerchantID, rule.ProductID, rule.Configuration)
	if err != nil {
		return translateError(err)
	}
	*rule = created
	return nil
}

func (r *ReturnRuleRepo) UpdateConfiguration(ctx context.Context, rule *repository.ReturnRule) error {
	var updated repository.ReturnRule
	err := r.db.Get(ctx, &updated, `
        UPDATE return_rules
        SET configuration = $2
        WHERE id = $1
        RETURNING id, merchant_id, product_id, configuration, created_at, updated_at
    `, rule.ID, rule.Configuration)
	if err != nil {
		return translateError(err)
	}
	*rule = updated
	return nil
}

func (r *ReturnRuleRepo) GetByID(ctx context.Context, id int64) (*repository.ReturnRule, error) {
	var rule repository.ReturnRule
	err := r.db.Get(ctx, &rule, `
        SELECT id, merchant_id, product_id, configuration, created_at, updated_at
        FROM return_rules WHERE id = $1
    `, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &rule, nil
}

// ListByMerchant returns every rule of the merchant, merchant-wide rule first.
func (r *ReturnRuleRepo) ListByMerchant(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error) {
	var rules []*repository.ReturnRule
	err := r.db.Select(ctx, &rules, `
        SELECT id, merchant_id, product_id, configuration, created_at, updated_at
        FROM return_rules
        WHERE merchant_id = $1
        ORDER BY product_id NULLS FIRST, id
    `, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list return rules for merchant %d: %w", merchantID, err)
	}
	return rules, nil
}
