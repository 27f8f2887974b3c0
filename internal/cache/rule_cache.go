package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository"
)

type RuleRepository interface {
	ListByMerchant(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error)
}

type cachedRules struct {
	rules    []*repository.ReturnRule
	loadedAt time.Time
}

// RuleCache keeps merchant rule sets in memory for ttl. Writers must call
// Invalidate after changing a merchant's rules.
type RuleCache struct {
	mu     sync.RWMutex
	cache  map[int64]cachedRules
	repo   RuleRepository
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewRuleCache(repo RuleRepository, ttl time.Duration, logger *zap.Logger) *RuleCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleCache{
		cache:  make(map[int64]cachedRules),
		repo:   repo,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (c *RuleCache) ListByMerchant(ctx context.Context, merchantID int64) ([]*repository.ReturnRule, error) {
	if rules, found := c.Get(merchantID); found {
		return rules, nil
	}

	rules, err := c.repo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	c.Set(merchantID, rules)
	return copyRules(rules), nil
}

func (c *RuleCache) Get(merchantID int64) ([]*repository.ReturnRule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.cache[merchantID]
	if !found || c.now().Sub(entry.loadedAt) > c.ttl {
		return nil, false
	}
	return copyRules(entry.rules), true
}

func (c *RuleCache) Set(merchantID int64, rules []*repository.ReturnRule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[merchantID] = cachedRules{rules: copyRules(rules), loadedAt: c.now()}
	metrics.RuleCacheItems.Set(float64(len(c.cache)))
	c.logger.Debug("rule cache: set", zap.Int64("merchant_id", merchantID), zap.Int("rules", len(rules)))
}

func (c *RuleCache) Invalidate(merchantID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.cache[merchantID]; found {
		delete(c.cache, merchantID)
		metrics.RuleCacheItems.Set(float64(len(c.cache)))
		c.logger.Debug("rule cache: invalidated", zap.Int64("merchant_id", merchantID))
	}
}

func copyRules(rules []*repository.ReturnRule) []*repository.ReturnRule {
	out := make([]*repository.ReturnRule, len(rules))
	for i, r := range rules {
		ruleCopy := *r
		out[i] = &ruleCopy
	}
	return out
}
