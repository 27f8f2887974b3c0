package rules

type Verdict string

const (
	Approve Verdict = "approve"
	Deny    Verdict = "deny"
)

const (
	ReasonWithinWindow        = "within_window"
	ReasonPastWindow          = "past_window"
	ReasonMissingOrderDate    = "missing_order_date"
	ReasonUnderPriceThreshold = "under_price_threshold"
	ReasonOverPriceThreshold  = "over_price_threshold"
	ReasonInvalidThreshold    = "invalid_threshold"
	ReasonStrategyError       = "strategy_error"
	ReasonInvalidConfig       = "invalid_config"
	ReasonNoRules             = "no_rules"
	ReasonRuleApproved        = "rule_approved"
	ReasonNoPositiveRule      = "no_positive_rule"
)

// Decision is the verdict of one rule, or of a whole rule set.
type Decision struct {
	Verdict  Verdict                `json:"status"`
	Reason   string                 `json:"reason"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func Approved(reason string, metadata map[string]interface{}) Decision {
	return Decision{Verdict: Approve, Reason: reason, Metadata: metadata}
}

func Denied(reason string, metadata map[string]interface{}) Decision {
	return Decision{Verdict: Deny, Reason: reason, Metadata: metadata}
}

func (d Decision) IsApproved() bool { return d.Verdict == Approve }

func (d Decision) IsDenied() bool { return d.Verdict == Deny }
