package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTestEvaluator(t *testing.T, extra ...Strategy) *Evaluator {
	registry := NewRegistry(DefaultStrategies(clock)...)
	for _, s := range extra {
		registry.Register(s)
	}
	return NewEvaluator(registry, zaptest.NewLogger(t))
}

func TestEvaluator_Evaluate(t *testing.T) {
	order := placedDaysAgo(10)
	order.total = decimal.NewFromInt(600)

	tests := []struct {
		name            string
		rules           []Rule
		expectedVerdict Verdict
		expectedReason  string
	}{
		{
			name:            "no rules",
			rules:           nil,
			expectedVerdict: Deny,
			expectedReason:  ReasonNoRules,
		},
		{
			name:            "single approving rule",
			rules:           []Rule{{ID: 1, Config: mustParse(`{"window_days": 30, "refund_allowed": true}`)}},
			expectedVerdict: Approve,
			expectedReason:  ReasonRuleApproved,
		},
		{
			name:            "single denying rule",
			rules:           []Rule{{ID: 1, Config: mustParse(`{"window_days": 5}`)}},
			expectedVerdict: Deny,
			expectedReason:  ReasonPastWindow,
		},
		{
			name: "deny wins over approvals",
			rules: []Rule{
				{ID: 1, Config: mustParse(`{"window_days": 30}`)},
				{ID: 2, Config: mustParse(`{"price_threshold": 500}`)},
				{ID: 3, Config: mustParse(`{"max_order_total": 1000}`)},
			},
			expectedVerdict: Deny,
			expectedReason:  ReasonOverPriceThreshold,
		},
		{
			name: "first deny in order is reported",
			rules: []Rule{
				{ID: 1, Config: mustParse(`{"price_threshold": 500}`)},
				{ID: 2, Config: mustParse(`{"window_days": 5}`)},
			},
			expectedVerdict: Deny,
			expectedReason:  ReasonOverPriceThreshold,
		},
		{
			name:            "unclaimed configuration",
			rules:           []Rule{{ID: 1, Config: mustParse(`{"refund_allowed": true}`)}},
			expectedVerdict: Deny,
			expectedReason:  ReasonInvalidConfig,
		},
		{
			name:            "unparseable configuration",
			rules:           []Rule{{ID: 1}},
			expectedVerdict: Deny,
			expectedReason:  ReasonInvalidConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestEvaluator(t).Evaluate(order, tc.rules)
			assert.Equal(t, tc.expectedVerdict, d.Verdict)
			assert.Equal(t, tc.expectedReason, d.Reason)
		})
	}
}

func TestEvaluator_DenyWinsForAnyPosition(t *testing.T) {
	order := placedDaysAgo(1)
	approve := Rule{Config: mustParse(`{"window_days": 30}`)}
	deny := Rule{Config: mustParse(`{"window_days": 0}`)}
	evaluator := newTestEvaluator(t)

	for n := 1; n <= 5; n++ {
		for pos := 0; pos < n; pos++ {
			set := make([]Rule, n)
			for i := range set {
				set[i] = approve
			}
			set[pos] = deny

			d := evaluator.Evaluate(order, set)
			assert.True(t, d.IsDenied(), "n=%d pos=%d", n, pos)
		}
	}
}

func TestEvaluator_StrategyFailures(t *testing.T) {
	order := placedDaysAgo(1)

	t.Run("returned error becomes strategy_error", func(t *testing.T) {
		evaluator := newTestEvaluator(t, &fakeStrategy{name: "broken", err: errStrategy})

		d := evaluator.Evaluate(order, []Rule{
			{ID: 7, Config: mustParse(`{"reason": "x"}`)},
			{ID: 8, Config: mustParse(`{"window_days": 30}`)},
		})

		assert.Equal(t, Deny, d.Verdict)
		assert.Equal(t, ReasonStrategyError, d.Reason)
		assert.Equal(t, "lookup failed", d.Metadata["error"])
		assert.Equal(t, int64(7), d.Metadata["rule_id"])
	})

	t.Run("panic is recovered", func(t *testing.T) {
		evaluator := newTestEvaluator(t, &fakeStrategy{name: "panicky", panicMsg: "nil map"})

		d := evaluator.Evaluate(order, []Rule{{ID: 9, Config: mustParse(`{"reason": "x"}`)}})

		assert.Equal(t, Deny, d.Verdict)
		assert.Equal(t, ReasonStrategyError, d.Reason)
		assert.Equal(t, "panic: nil map", d.Metadata["error"])
	})

	t.Run("fake strategy approving", func(t *testing.T) {
		evaluator := newTestEvaluator(t, &fakeStrategy{name: "ok", decision: Approved("custom", nil)})

		d := evaluator.Evaluate(order, []Rule{{ID: 10, Config: mustParse(`{"reason": "x"}`)}})
		assert.Equal(t, ReasonRuleApproved, d.Reason)
	})

	t.Run("no verdict", func(t *testing.T) {
		evaluator := newTestEvaluator(t, &fakeStrategy{name: "silent"})

		d := evaluator.Evaluate(order, []Rule{{ID: 11, Config: mustParse(`{"reason": "x"}`)}})
		assert.Equal(t, Deny, d.Verdict)
		assert.Equal(t, ReasonNoPositiveRule, d.Reason)
	})
}
