package audit

import "sync"

// CostTracker accumulates estimated AI spend per operation label. Construct
// one per request or logical unit of work; it is not ambient global state.
type CostTracker struct {
	mu     sync.Mutex
	byName map[string]float64
}

func NewCostTracker() *CostTracker {
	return &CostTracker{byName: make(map[string]float64)}
}

func (t *CostTracker) Add(label string, costUSD float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byName[label] += costUSD
}

func (t *CostTracker) Total() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total float64
	for _, v := range t.byName {
		total += v
	}
	return total
}

func (t *CostTracker) Breakdown() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]float64, len(t.byName))
	for k, v := range t.byName {
		out[k] = v
	}
	return out
}
