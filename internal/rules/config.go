package rules

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/validation"
)

const (
	KeyWindowDays         = "window_days"
	KeyRefundAllowed      = "refund_allowed"
	KeyReplacementAllowed = "replacement_allowed"
	KeyPriceThreshold     = "price_threshold"
	KeyMaxOrderTotal      = "max_order_total"
	KeyReason             = "reason"
)

var knownKeys = map[string]struct{}{
	KeyWindowDays:         {},
	KeyRefundAllowed:      {},
	KeyReplacementAllowed: {},
	KeyPriceThreshold:     {},
	KeyMaxOrderTotal:      {},
	KeyReason:             {},
}

// Config is a parsed rule configuration. Strategies claim a config by the
// keys present in the stored document, not by their values.
type Config struct {
	WindowDays         *int             `json:"window_days,omitempty"`
	RefundAllowed      *bool            `json:"refund_allowed,omitempty"`
	ReplacementAllowed *bool            `json:"replacement_allowed,omitempty"`
	PriceThreshold     *decimal.Decimal `json:"price_threshold,omitempty"`
	MaxOrderTotal      *decimal.Decimal `json:"max_order_total,omitempty"`
	Reason             *string          `json:"reason,omitempty" validate:"omitempty,max=500"`

	present map[string]struct{}
}

// ParseConfig decodes a stored configuration. Unknown keys and mistyped
// values are reported as a *validation.Error.
func ParseConfig(raw []byte) (*Config, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, validation.New("configuration", "must be a JSON object")
	}

	verr := &validation.Error{}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := knownKeys[k]; !ok {
			verr.Add(k, "is not a recognized configuration key")
		}
	}
	if !verr.Empty() {
		return nil, verr
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, validation.New(typeErr.Field, "has an invalid type")
		}
		return nil, validation.New("configuration", err.Error())
	}

	cfg.present = make(map[string]struct{}, len(doc))
	for k := range doc {
		cfg.present[k] = struct{}{}
	}
	return &cfg, nil
}

// Has reports whether key was present in the stored document.
func (c *Config) Has(key string) bool {
	if c == nil {
		return false
	}
	if c.present != nil {
		_, ok := c.present[key]
		return ok
	}
	switch key {
	case KeyWindowDays:
		return c.WindowDays != nil
	case KeyRefundAllowed:
		return c.RefundAllowed != nil
	case KeyReplacementAllowed:
		return c.ReplacementAllowed != nil
	case KeyPriceThreshold:
		return c.PriceThreshold != nil
	case KeyMaxOrderTotal:
		return c.MaxOrderTotal != nil
	case KeyReason:
		return c.Reason != nil
	}
	return false
}

// Threshold returns price_threshold, falling back to max_order_total.
func (c *Config) Threshold() (decimal.Decimal, bool) {
	if c.PriceThreshold != nil {
		return *c.PriceThreshold, true
	}
	if c.MaxOrderTotal != nil {
		return *c.MaxOrderTotal, true
	}
	return decimal.Zero, false
}

// RefundExplicitlyDisallowed is true only for an explicit refund_allowed: false.
func (c *Config) RefundExplicitlyDisallowed() bool {
	return c != nil && c.RefundAllowed != nil && !*c.RefundAllowed
}

// Validate applies the write-time schema.
func (c *Config) Validate() error {
	verr := &validation.Error{}

	if !c.Has(KeyWindowDays) && !c.Has(KeyPriceThreshold) && !c.Has(KeyMaxOrderTotal) {
		verr.Add("configuration", "must define window_days, price_threshold or max_order_total")
	}
	if c.Has(KeyWindowDays) && (c.WindowDays == nil || *c.WindowDays < 1) {
		verr.Add(KeyWindowDays, "must be a positive integer")
	}
	if c.Has(KeyPriceThreshold) && (c.PriceThreshold == nil || c.PriceThreshold.IsNegative()) {
		verr.Add(KeyPriceThreshold, "must be a non-negative number")
	}
	if c.Has(KeyMaxOrderTotal) && (c.MaxOrderTotal == nil || c.MaxOrderTotal.IsNegative()) {
		verr.Add(KeyMaxOrderTotal, "must be a non-negative number")
	}
	if c.Has(KeyRefundAllowed) && c.RefundAllowed == nil {
		verr.Add(KeyRefundAllowed, "must be a boolean")
	}
	if c.Has(KeyReplacementAllowed) && c.ReplacementAllowed == nil {
		verr.Add(KeyReplacementAllowed, "must be a boolean")
	}

	if err := validation.Struct(c); err != nil {
		var fieldErr *validation.Error
		if !errors.As(err, &fieldErr) {
			return err
		}
		verr.Fields = append(verr.Fields, fieldErr.Fields...)
	}

	return verr.OrNil()
}
