package eligibility

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	mock_eligibility "gitlab.ozon.dev/pupkingeorgij/returns/internal/eligibility/mocks"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/rules"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newChecker(t *testing.T, orders OrderRepository, ruleRepo RuleRepository) *Checker {
	logger := zaptest.NewLogger(t)
	evaluator := rules.NewEvaluator(rules.NewRegistry(rules.DefaultStrategies(clock)...), logger)
	return NewChecker(orders, ruleRepo, evaluator, logger, clock)
}

func rule(id int64, productID *int64, config string) *repository.ReturnRule {
	return &repository.ReturnRule{ID: id, MerchantID: 1, ProductID: productID, Configuration: json.RawMessage(config)}
}

func productID(v int64) *int64 { return &v }

func TestChecker_Check(t *testing.T) {
	ctx := context.Background()
	placed := fixedNow.AddDate(0, 0, -10)
	order := &repository.Order{
		ID:          100,
		MerchantID:  1,
		PlacedAt:    &placed,
		TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(600)),
	}
	req := &repository.ReturnRequest{OrderID: 100, ProductID: 5, MerchantID: 1}

	tests := []struct {
		name             string
		rules            []*repository.ReturnRule
		expectedEligible bool
		expectedReason   string
		expectedDetails  string
	}{
		{
			name:            "no rules",
			expectedReason:  ReasonNoReturnPolicy,
			expectedDetails: "This merchant does not have a return policy configured",
		},
		{
			name:            "only rules for other products",
			rules:           []*repository.ReturnRule{rule(1, productID(99), `{"window_days": 30}`)},
			expectedReason:  ReasonNoReturnPolicy,
			expectedDetails: "This merchant does not have a return policy configured",
		},
		{
			name:             "inside window with refunds",
			rules:            []*repository.ReturnRule{rule(1, nil, `{"window_days": 30, "refund_allowed": true}`)},
			expectedEligible: true,
		},
		{
			name:            "past window",
			rules:           []*repository.ReturnRule{rule(1, nil, `{"window_days": 5}`)},
			expectedReason:  rules.ReasonPastWindow,
			expectedDetails: "Return window is 5 days. Order was placed 10 days ago (March 05, 2025). Return deadline was March 10, 2025.",
		},
		{
			name: "product rule denies while merchant rule approves",
			rules: []*repository.ReturnRule{
				rule(1, nil, `{"window_days": 30}`),
				rule(2, productID(5), `{"window_days": 7}`),
			},
			expectedReason:  rules.ReasonPastWindow,
			expectedDetails: "Return window is 30 days. Order was placed 10 days ago (March 05, 2025). Return deadline was April 04, 2025.",
		},
		{
			name:            "over price threshold",
			rules:           []*repository.ReturnRule{rule(1, nil, `{"price_threshold": 500}`)},
			expectedReason:  rules.ReasonOverPriceThreshold,
			expectedDetails: "Order total 600.00 exceeds the return limit of 500.00.",
		},
		{
			name:            "refund explicitly disallowed",
			rules:           []*repository.ReturnRule{rule(1, nil, `{"window_days": 30, "refund_allowed": false}`)},
			expectedReason:  ReasonRefundNotAllowed,
			expectedDetails: "Refunds are not allowed under this merchant's return policy",
		},
		{
			name:            "broken stored configuration",
			rules:           []*repository.ReturnRule{rule(1, nil, `{"window_days": 30, "legacy": true}`)},
			expectedReason:  rules.ReasonInvalidConfig,
			expectedDetails: "Return policy check failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orders := mock_eligibility.NewMockOrderRepository(ctrl)
			ruleRepo := mock_eligibility.NewMockRuleRepository(ctrl)
			orders.EXPECT().GetByID(ctx, int64(100)).Return(order, nil)
			ruleRepo.EXPECT().ListByMerchant(ctx, int64(1)).Return(tc.rules, nil)

			result, err := newChecker(t, orders, ruleRepo).Check(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedEligible, result.Eligible)
			assert.Equal(t, tc.expectedReason, result.Reason)
			assert.Equal(t, tc.expectedDetails, result.Details)
		})
	}
}

func TestChecker_CheckErrors(t *testing.T) {
	ctx := context.Background()
	req := &repository.ReturnRequest{OrderID: 100, ProductID: 5, MerchantID: 1}

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_eligibility.NewMockOrderRepository(ctrl)
		ruleRepo := mock_eligibility.NewMockRuleRepository(ctrl)
		orders.EXPECT().GetByID(ctx, int64(100)).Return(nil, repository.ErrObjectNotFound)

		_, err := newChecker(t, orders, ruleRepo).Check(ctx, req)
		assert.True(t, errors.Is(err, repository.ErrObjectNotFound))
	})

	t.Run("rule lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_eligibility.NewMockOrderRepository(ctrl)
		ruleRepo := mock_eligibility.NewMockRuleRepository(ctrl)
		orders.EXPECT().GetByID(ctx, int64(100)).Return(&repository.Order{ID: 100}, nil)
		ruleRepo.EXPECT().ListByMerchant(ctx, int64(1)).Return(nil, errors.New("connection reset"))

		_, err := newChecker(t, orders, ruleRepo).Check(ctx, req)
		assert.ErrorContains(t, err, "failed to load return rules")
	})
}
