package rules

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type stubOrder struct {
	date  *time.Time
	total decimal.Decimal
}

func (o stubOrder) OrderDate() (time.Time, bool) {
	if o.date == nil {
		return time.Time{}, false
	}
	return *o.date, true
}

func (o stubOrder) OrderTotal() decimal.Decimal { return o.total }

func placedDaysAgo(days int) stubOrder {
	d := fixedNow.AddDate(0, 0, -days)
	return stubOrder{date: &d}
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func mustParse(raw string) *Config {
	cfg, err := ParseConfig([]byte(raw))
	if err != nil {
		panic(err)
	}
	return cfg
}

// fakeStrategy claims configs with the "reason" key and returns a canned result.
type fakeStrategy struct {
	name     string
	decision Decision
	err      error
	panicMsg string
}

func (s *fakeStrategy) Name() string { return s.name }

func (s *fakeStrategy) Matches(cfg *Config) bool { return cfg.Has(KeyReason) }

func (s *fakeStrategy) Decide(Order, *Config) (Decision, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.decision, s.err
}

var errStrategy = errors.New("lookup failed")
