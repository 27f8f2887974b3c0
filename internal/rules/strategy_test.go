package rules

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWindowStrategy_Decide(t *testing.T) {
	strategy := NewDateWindowStrategy(clock)

	tests := []struct {
		name            string
		order           stubOrder
		cfg             *Config
		expectedVerdict Verdict
		expectedReason  string
	}{
		{
			name:            "inside window",
			order:           placedDaysAgo(10),
			cfg:             &Config{WindowDays: intPtr(30)},
			expectedVerdict: Approve,
			expectedReason:  ReasonWithinWindow,
		},
		{
			name:            "last day of window",
			order:           placedDaysAgo(5),
			cfg:             &Config{WindowDays: intPtr(5)},
			expectedVerdict: Approve,
			expectedReason:  ReasonWithinWindow,
		},
		{
			name:            "past window",
			order:           placedDaysAgo(10),
			cfg:             &Config{WindowDays: intPtr(5)},
			expectedVerdict: Deny,
			expectedReason:  ReasonPastWindow,
		},
		{
			name:            "no order date",
			order:           stubOrder{},
			cfg:             &Config{WindowDays: intPtr(30)},
			expectedVerdict: Deny,
			expectedReason:  ReasonMissingOrderDate,
		},
		{
			name:            "null window",
			order:           placedDaysAgo(1),
			cfg:             mustParse(`{"window_days": null}`),
			expectedVerdict: Deny,
			expectedReason:  ReasonInvalidConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := strategy.Decide(tc.order, tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedVerdict, d.Verdict)
			assert.Equal(t, tc.expectedReason, d.Reason)
		})
	}
}

func TestDateWindowStrategy_Matches(t *testing.T) {
	strategy := NewDateWindowStrategy(clock)

	assert.True(t, strategy.Matches(mustParse(`{"window_days": 30}`)))
	assert.True(t, strategy.Matches(mustParse(`{"window_days": null}`)))
	assert.False(t, strategy.Matches(mustParse(`{"price_threshold": 10}`)))
	assert.False(t, strategy.Matches(mustParse(`{}`)))
}

func TestDaysBetween(t *testing.T) {
	late := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(late, early))
	assert.Equal(t, 0, DaysBetween(early, early.Add(time.Hour)))
	assert.Equal(t, 31, DaysBetween(time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC), fixedNow))
}

func TestPriceThresholdStrategy_Decide(t *testing.T) {
	strategy := NewPriceThresholdStrategy()

	tests := []struct {
		name            string
		total           int64
		cfg             *Config
		expectedVerdict Verdict
		expectedReason  string
	}{
		{
			name:            "under threshold",
			total:           400,
			cfg:             &Config{PriceThreshold: decPtr(500)},
			expectedVerdict: Approve,
			expectedReason:  ReasonUnderPriceThreshold,
		},
		{
			name:            "equal to threshold",
			total:           500,
			cfg:             &Config{PriceThreshold: decPtr(500)},
			expectedVerdict: Approve,
			expectedReason:  ReasonUnderPriceThreshold,
		},
		{
			name:            "over threshold",
			total:           600,
			cfg:             &Config{PriceThreshold: decPtr(500)},
			expectedVerdict: Deny,
			expectedReason:  ReasonOverPriceThreshold,
		},
		{
			name:            "max order total alias",
			total:           600,
			cfg:             &Config{MaxOrderTotal: decPtr(1000)},
			expectedVerdict: Approve,
			expectedReason:  ReasonUnderPriceThreshold,
		},
		{
			name:            "zero threshold",
			total:           1,
			cfg:             &Config{PriceThreshold: decPtr(0)},
			expectedVerdict: Deny,
			expectedReason:  ReasonInvalidThreshold,
		},
		{
			name:            "negative threshold",
			total:           1,
			cfg:             &Config{PriceThreshold: decPtr(-5)},
			expectedVerdict: Deny,
			expectedReason:  ReasonInvalidThreshold,
		},
		{
			name:            "null threshold",
			total:           1,
			cfg:             mustParse(`{"price_threshold": null}`),
			expectedVerdict: Deny,
			expectedReason:  ReasonInvalidThreshold,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := strategy.Decide(stubOrder{total: decimal.NewFromInt(tc.total)}, tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedVerdict, d.Verdict)
			assert.Equal(t, tc.expectedReason, d.Reason)
		})
	}

	t.Run("metadata carries total and threshold", func(t *testing.T) {
		d, err := strategy.Decide(stubOrder{total: decimal.NewFromInt(600)}, &Config{PriceThreshold: decPtr(500)})
		require.NoError(t, err)

		total, ok := d.Metadata["order_total"].(decimal.Decimal)
		require.True(t, ok)
		threshold, ok := d.Metadata["threshold"].(decimal.Decimal)
		require.True(t, ok)
		assert.True(t, total.Equal(decimal.NewFromInt(600)))
		assert.True(t, threshold.Equal(decimal.NewFromInt(500)))
	})
}

func TestPriceThresholdStrategy_Matches(t *testing.T) {
	strategy := NewPriceThresholdStrategy()

	assert.True(t, strategy.Matches(mustParse(`{"price_threshold": 10}`)))
	assert.True(t, strategy.Matches(mustParse(`{"max_order_total": 10}`)))
	assert.False(t, strategy.Matches(mustParse(`{"window_days": 10}`)))
}
