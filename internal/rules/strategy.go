package rules

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is what strategies need to know about an order.
type Order interface {
	// OrderDate returns when the order was placed, false when unknown.
	OrderDate() (time.Time, bool)
	// OrderTotal returns the normalized monetary total.
	OrderTotal() decimal.Decimal
}

type Strategy interface {
	Name() string
	Matches(cfg *Config) bool
	Decide(order Order, cfg *Config) (Decision, error)
}

// DefaultStrategies returns the built-in strategies in lookup order.
func DefaultStrategies(now func() time.Time) []Strategy {
	return []Strategy{
		NewDateWindowStrategy(now),
		NewPriceThresholdStrategy(),
	}
}

type DateWindowStrategy struct {
	now func() time.Time
}

func NewDateWindowStrategy(now func() time.Time) *DateWindowStrategy {
	if now == nil {
		now = time.Now
	}
	return &DateWindowStrategy{now: now}
}

func (s *DateWindowStrategy) Name() string { return "date_window" }

func (s *DateWindowStrategy) Matches(cfg *Config) bool {
	return cfg.Has(KeyWindowDays)
}

func (s *DateWindowStrategy) Decide(order Order, cfg *Config) (Decision, error) {
	if cfg.WindowDays == nil {
		return Denied(ReasonInvalidConfig, map[string]interface{}{"field": KeyWindowDays}), nil
	}
	window := *cfg.WindowDays

	placed, ok := order.OrderDate()
	if !ok {
		return Denied(ReasonMissingOrderDate, nil), nil
	}

	daysSince := DaysBetween(placed, s.now())
	metadata := map[string]interface{}{
		"days_since_order": daysSince,
		"window_days":      window,
	}
	if daysSince <= window {
		return Approved(ReasonWithinWindow, metadata), nil
	}
	return Denied(ReasonPastWindow, metadata), nil
}

// DaysBetween counts whole calendar days (UTC) from from to to.
func DaysBetween(from, to time.Time) int {
	a := truncateDay(from)
	b := truncateDay(to)
	return int(b.Sub(a).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type PriceThresholdStrategy struct{}

func NewPriceThresholdStrategy() *PriceThresholdStrategy {
	return &PriceThresholdStrategy{}
}

func (s *PriceThresholdStrategy) Name() string { return "price_threshold" }

func (s *PriceThresholdStrategy) Matches(cfg *Config) bool {
	return cfg.Has(KeyPriceThreshold) || cfg.Has(KeyMaxOrderTotal)
}

func (s *PriceThresholdStrategy) Decide(order Order, cfg *Config) (Decision, error) {
	threshold, ok := cfg.Threshold()
	if !ok || !threshold.IsPositive() {
		return Denied(ReasonInvalidThreshold, nil), nil
	}

	total := order.OrderTotal()
	metadata := map[string]interface{}{
		"order_total": total,
		"threshold":   threshold,
	}
	if total.LessThanOrEqual(threshold) {
		return Approved(ReasonUnderPriceThreshold, metadata), nil
	}
	return Denied(ReasonOverPriceThreshold, metadata), nil
}
