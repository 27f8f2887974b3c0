//go:generate mockgen -source ./checker.go -destination=./mocks/checker.go -package=mock_eligibility
package eligibility

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/rules"
)

const (
	ReasonNoReturnPolicy   = "no_return_policy"
	ReasonRefundNotAllowed = "refund_not_allowed"
)

const dateLayout = "January 02, 2006"

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
}

type RuleRepository interface {
	ListByMerchant(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error)
}

type Result struct {
	Eligible bool           `json:"eligible"`
	Reason   string         `json:"reason,omitempty"`
	Details  string         `json:"details,omitempty"`
	Decision rules.Decision `json:"-"`
}

type Checker struct {
	orders    OrderRepository
	rules     RuleRepository
	evaluator *rules.Evaluator
	logger    *zap.Logger
	now       func() time.Time
}

func NewChecker(orders OrderRepository, ruleRepo RuleRepository, evaluator *rules.Evaluator, logger *zap.Logger, now func() time.Time) *Checker {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		orders:    orders,
		rules:     ruleRepo,
		evaluator: evaluator,
		logger:    logger,
		now:       now,
	}
}

// Check decides whether req may be created under the merchant's policy.
// Errors are infrastructure failures or a missing order; ineligibility is
// reported in Result.
func (c *Checker) Check(ctx context.Context, req *repository.ReturnRequest) (Result, error) {
	order, err := c.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load order %d: %w", req.OrderID, err)
	}

	stored, err := c.rules.ListByMerchant(ctx, req.MerchantID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load return rules: %w", err)
	}

	applicable := c.applicableRules(stored, req.ProductID)
	if len(applicable) == 0 {
		return c.finish(req, Result{
			Reason:  ReasonNoReturnPolicy,
			Details: "This merchant does not have a return policy configured",
		}), nil
	}

	decision := c.evaluator.Evaluate(order, applicable)
	if !decision.IsApproved() {
		return c.finish(req, Result{
			Reason:   decision.Reason,
			Details:  c.rejectionDetails(order, applicable, decision),
			Decision: decision,
		}), nil
	}

	for _, rule := range applicable {
		if rule.Config.RefundExplicitlyDisallowed() {
			return c.finish(req, Result{
				Reason:   ReasonRefundNotAllowed,
				Details:  "Refunds are not allowed under this merchant's return policy",
				Decision: decision,
			}), nil
		}
	}

	return c.finish(req, Result{Eligible: true, Decision: decision}), nil
}

// applicableRules keeps merchant-wide rules and rules scoped to productID.
func (c *Checker) applicableRules(stored []*repository.ReturnRule, productID int64) []rules.Rule {
	out := make([]rules.Rule, 0, len(stored))
	for _, r := range stored {
		if r.ProductID != nil && *r.ProductID != productID {
			continue
		}
		cfg, err := rules.ParseConfig(r.Configuration)
		if err != nil {
			c.logger.Warn("stored return rule has invalid configuration",
				zap.Int64("rule_id", r.ID),
				zap.Error(err),
			)
		}
		out = append(out, rules.Rule{ID: r.ID, Config: cfg})
	}
	return out
}

func (c *Checker) rejectionDetails(order *repository.Order, applicable []rules.Rule, decision rules.Decision) string {
	if decision.Reason == rules.ReasonOverPriceThreshold {
		total, okTotal := decision.Metadata["order_total"].(decimal.Decimal)
		threshold, okThreshold := decision.Metadata["threshold"].(decimal.Decimal)
		if okTotal && okThreshold {
			return fmt.Sprintf("Order total %s exceeds the return limit of %s.", total.StringFixed(2), threshold.StringFixed(2))
		}
	}

	placed, ok := order.OrderDate()
	if !ok {
		return "Return policy check failed"
	}
	for _, rule := range applicable {
		if rule.Config == nil || rule.Config.WindowDays == nil {
			continue
		}
		window := *rule.Config.WindowDays
		placedDay := placed.UTC()
		deadline := placedDay.AddDate(0, 0, window)
		return fmt.Sprintf("Return window is %d days. Order was placed %d days ago (%s). Return deadline was %s.",
			window, rules.DaysBetween(placed, c.now()), placedDay.Format(dateLayout), deadline.Format(dateLayout))
	}
	return "Return policy check failed"
}

func (c *Checker) finish(req *repository.ReturnRequest, result Result) Result {
	metrics.EligibilityDecisionsTotal.WithLabelValues(strconv.FormatBool(result.Eligible), result.Reason).Inc()
	c.logger.Debug("eligibility checked",
		zap.Int64("order_id", req.OrderID),
		zap.Int64("product_id", req.ProductID),
		zap.Bool("eligible", result.Eligible),
		zap.String("reason", result.Reason),
	)
	return result
}
