package rules

import "sync"

// Registry resolves a configuration to the first strategy claiming it, in
// registration order.
type Registry struct {
	mu         sync.RWMutex
	strategies []Strategy
}

func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{}
	for _, s := range strategies {
		r.Register(s)
	}
	return r
}

// Register appends s. A strategy with the same name is registered once.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.strategies {
		if existing.Name() == s.Name() {
			return
		}
	}
	r.strategies = append(r.strategies, s)
}

// Find returns nil when no strategy matches.
func (r *Registry) Find(cfg *Config) Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.strategies {
		if s.Matches(cfg) {
			return s
		}
	}
	return nil
}

func (r *Registry) Strategies() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}
