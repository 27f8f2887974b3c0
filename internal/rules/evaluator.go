package rules

import (
	"fmt"

	"go.uber.org/zap"
)

// Rule is one stored rule as seen by the evaluator. A nil Config means the
// stored document could not be parsed.
type Rule struct {
	ID     int64
	Config *Config
}

type Evaluator struct {
	registry *Registry
	logger   *zap.Logger
}

func NewEvaluator(registry *Registry, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{registry: registry, logger: logger}
}

// Evaluate applies every rule and combines the results: the first deny wins,
// otherwise any approve yields rule_approved.
func (e *Evaluator) Evaluate(order Order, rules []Rule) Decision {
	if len(rules) == 0 {
		return Denied(ReasonNoRules, nil)
	}

	var (
		firstDeny *Decision
		approved  bool
	)
	for _, rule := range rules {
		d := e.evaluateRule(order, rule)
		e.logger.Debug("rule evaluated",
			zap.Int64("rule_id", rule.ID),
			zap.String("verdict", string(d.Verdict)),
			zap.String("reason", d.Reason),
		)

		switch d.Verdict {
		case Deny:
			if firstDeny == nil {
				denied := d
				firstDeny = &denied
			}
		case Approve:
			approved = true
		}
	}

	if firstDeny != nil {
		return *firstDeny
	}
	if approved {
		return Approved(ReasonRuleApproved, map[string]interface{}{"rules_evaluated": len(rules)})
	}
	return Denied(ReasonNoPositiveRule, nil)
}

func (e *Evaluator) evaluateRule(order Order, rule Rule) Decision {
	if rule.Config == nil {
		return Denied(ReasonInvalidConfig, map[string]interface{}{"rule_id": rule.ID})
	}
	strategy := e.registry.Find(rule.Config)
	if strategy == nil {
		return Denied(ReasonInvalidConfig, map[string]interface{}{"rule_id": rule.ID})
	}
	return e.decide(strategy, order, rule)
}

func (e *Evaluator) decide(strategy Strategy, order Order, rule Rule) (decision Decision) {
	defer func() {
		if rec := recover(); rec != nil {
			decision = e.strategyError(strategy, rule, fmt.Errorf("panic: %v", rec))
		}
	}()

	d, err := strategy.Decide(order, rule.Config)
	if err != nil {
		return e.strategyError(strategy, rule, err)
	}
	return d
}

// strategyError keeps the underlying error in logs and metadata while the
// reason stays strategy_error.
func (e *Evaluator) strategyError(strategy Strategy, rule Rule, err error) Decision {
	e.logger.Error("strategy failed",
		zap.String("strategy", strategy.Name()),
		zap.Int64("rule_id", rule.ID),
		zap.Error(err),
	)
	return Denied(ReasonStrategyError, map[string]interface{}{
		"strategy": strategy.Name(),
		"rule_id":  rule.ID,
		"error":    err.Error(),
	})
}
