package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	date := NewDateWindowStrategy(clock)
	registry := NewRegistry(date, NewPriceThresholdStrategy())

	registry.Register(NewDateWindowStrategy(clock))
	registry.Register(date)

	strategies := registry.Strategies()
	require.Len(t, strategies, 2)
	assert.Equal(t, "date_window", strategies[0].Name())
	assert.Equal(t, "price_threshold", strategies[1].Name())
}

func TestRegistry_Find(t *testing.T) {
	registry := NewRegistry(DefaultStrategies(clock)...)

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "window", raw: `{"window_days": 30, "refund_allowed": true}`, expected: "date_window"},
		{name: "price", raw: `{"price_threshold": 500}`, expected: "price_threshold"},
		{name: "max total", raw: `{"max_order_total": 500}`, expected: "price_threshold"},
		{name: "first registered wins", raw: `{"window_days": 30, "price_threshold": 500}`, expected: "date_window"},
		{name: "no claimed key", raw: `{"refund_allowed": true}`, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			found := registry.Find(mustParse(tc.raw))
			if tc.expected == "" {
				assert.Nil(t, found)
				return
			}
			require.NotNil(t, found)
			assert.Equal(t, tc.expected, found.Name())
		})
	}

	t.Run("registration order decides", func(t *testing.T) {
		reversed := NewRegistry(NewPriceThresholdStrategy(), NewDateWindowStrategy(clock))
		found := reversed.Find(mustParse(`{"window_days": 30, "price_threshold": 500}`))
		require.NotNil(t, found)
		assert.Equal(t, "price_threshold", found.Name())
	})
}
