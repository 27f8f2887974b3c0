package policy

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_policy "gitlab.ozon.dev/pupkingeorgij/returns/internal/policy/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/validation"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates merchant cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_policy.NewMockRuleRepository(ctrl)
		cache := mock_policy.NewMockCacheInvalidator(ctrl)
		svc := NewService(repo, cache, nil)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rule *repository.ReturnRule) error {
			assert.Equal(t, int64(3), rule.MerchantID)
			assert.JSONEq(t, `{"window_days": 30, "refund_allowed": true}`, string(rule.Configuration))
			rule.ID = 11
			return nil
		})
		cache.EXPECT().Invalidate(int64(3))

		rule, err := svc.Create(ctx, CreateRuleParams{
			MerchantID:    3,
			Configuration: json.RawMessage(`{"window_days": 30, "refund_allowed": true}`),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), rule.ID)
	})

	t.Run("schema violations never reach the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewService(mock_policy.NewMockRuleRepository(ctrl), mock_policy.NewMockCacheInvalidator(ctrl), nil)

		_, err := svc.Create(ctx, CreateRuleParams{MerchantID: 3, Configuration: json.RawMessage(`{"window_days": 30, "extra": 1}`)})
		assert.Equal(t, []string{"extra"}, fieldsOf(t, err))

		_, err = svc.Create(ctx, CreateRuleParams{MerchantID: 3, Configuration: json.RawMessage(`{"window_days": -2}`)})
		assert.Equal(t, []string{"window_days"}, fieldsOf(t, err))

		_, err = svc.Create(ctx, CreateRuleParams{Configuration: json.RawMessage(`{"window_days": 2}`)})
		assert.Equal(t, []string{"merchant_id"}, fieldsOf(t, err))
	})

	t.Run("duplicate scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_policy.NewMockRuleRepository(ctrl)
		svc := NewService(repo, mock_policy.NewMockCacheInvalidator(ctrl), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(repository.ErrDuplicateRule)

		_, err := svc.Create(ctx, CreateRuleParams{MerchantID: 3, Configuration: json.RawMessage(`{"price_threshold": 100}`)})
		assert.Equal(t, []string{"product_id"}, fieldsOf(t, err))
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_policy.NewMockRuleRepository(ctrl)
		svc := NewService(repo, mock_policy.NewMockCacheInvalidator(ctrl), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(ctx, CreateRuleParams{MerchantID: 3, Configuration: json.RawMessage(`{"price_threshold": 100}`)})
		assert.ErrorContains(t, err, "failed to save return rule")
	})
}

func TestService_UpdateConfiguration(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_policy.NewMockRuleRepository(ctrl)
		cache := mock_policy.NewMockCacheInvalidator(ctrl)
		svc := NewService(repo, cache, nil)

		repo.EXPECT().GetByID(ctx, int64(11)).Return(&repository.ReturnRule{ID: 11, MerchantID: 3}, nil)
		repo.EXPECT().UpdateConfiguration(ctx, gomock.Any()).Return(nil)
		cache.EXPECT().Invalidate(int64(3))

		rule, err := svc.UpdateConfiguration(ctx, 11, json.RawMessage(`{"max_order_total": 250}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"max_order_total": 250}`, string(rule.Configuration))
	})

	t.Run("missing rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_policy.NewMockRuleRepository(ctrl)
		svc := NewService(repo, mock_policy.NewMockCacheInvalidator(ctrl), nil)
		repo.EXPECT().GetByID(ctx, int64(11)).Return(nil, repository.ErrObjectNotFound)

		_, err := svc.UpdateConfiguration(ctx, 11, json.RawMessage(`{"max_order_total": 250}`))
		assert.True(t, errors.Is(err, repository.ErrObjectNotFound))
	})
}
