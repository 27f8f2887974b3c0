//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_policy
package policy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/rules"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/validation"
)

type RuleRepository interface {
	Create(ctx context.Context, rule *repository.ReturnRule) error
	UpdateConfiguration(ctx context.Context, rule *repository.ReturnRule) error
	GetByID(ctx context.Context, id int64) (*repository.ReturnRule, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error)
}

type CacheInvalidator interface {
	Invalidate(merchantID int64)
}

type CreateRuleParams struct {
	MerchantID    int64           `json:"merchant_id" validate:"gt=0"`
	ProductID     *int64          `json:"product_id,omitempty" validate:"omitempty,gt=0"`
	Configuration json.RawMessage `json:"configuration" validate:"required"`
}

// Service is the write path for merchant return rules.
type Service struct {
	repo   RuleRepository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(repo RuleRepository, cache CacheInvalidator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

func (s *Service) Create(ctx context.Context, params CreateRuleParams) (*repository.ReturnRule, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}
	if err := validateConfiguration(params.Configuration); err != nil {
		return nil, err
	}

	rule := &repository.ReturnRule{
		MerchantID:    params.MerchantID,
		ProductID:     params.ProductID,
		Configuration: params.Configuration,
	}
	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, mapWriteError(err)
	}

	s.invalidate(rule.MerchantID)
	s.logger.Info("return rule created", zap.Int64("rule_id", rule.ID), zap.Int64("merchant_id", rule.MerchantID))
	return rule, nil
}

func (s *Service) UpdateConfiguration(ctx context.Context, id int64, configuration json.RawMessage) (*repository.ReturnRule, error) {
	if err := validateConfiguration(configuration); err != nil {
		return nil, err
	}

	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load return rule %d: %w", id, err)
	}
	rule.Configuration = configuration
	if err := s.repo.UpdateConfiguration(ctx, rule); err != nil {
		return nil, mapWriteError(err)
	}

	s.invalidate(rule.MerchantID)
	s.logger.Info("return rule updated", zap.Int64("rule_id", rule.ID), zap.Int64("merchant_id", rule.MerchantID))
	return rule, nil
}

func (s *Service) List(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error) {
	rules, err := s.repo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list return rules: %w", err)
	}
	return rules, nil
}

func (s *Service) invalidate(merchantID int64) {
	if s.cache != nil {
		s.cache.Invalidate(merchantID)
	}
}

func validateConfiguration(raw json.RawMessage) error {
	cfg, err := rules.ParseConfig(raw)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateRule):
		return validation.New("product_id", "already has a return rule for this merchant")
	case errors.Is(err, repository.ErrInvalidReference):
		return validation.New("merchant_id", "references a missing merchant or product")
	}
	return fmt.Errorf("failed to save return rule: %w", err)
}
