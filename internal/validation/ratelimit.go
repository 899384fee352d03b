package validation

import (
	"math"
	"sync"
	"time"
)

// WindowEntry is one fixed-window counter. ResetAt marks the end of the
// window; entries past it are evicted lazily on next access for that key.
type WindowEntry struct {
	Count   int
	ResetAt time.Time
}

// CounterStore holds rate-limit windows. The in-memory implementation below
// is per-process and non-durable: under multi-instance deployment back it
// with a shared store (e.g. redis) or treat the limit as advisory.
type CounterStore interface {
	Get(key string) (WindowEntry, bool)
	Set(key string, entry WindowEntry)
	Delete(key string)
}

type memoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]WindowEntry
}

func NewMemoryCounterStore() CounterStore {
	return &memoryCounterStore{entries: make(map[string]WindowEntry)}
}

func (s *memoryCounterStore) Get(key string) (WindowEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

func (s *memoryCounterStore) Set(key string, entry WindowEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
}

func (s *memoryCounterStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

type RateLimitResult struct {
	Allowed    bool `json:"allowed"`
	Remaining  int  `json:"remaining"`
	RetryAfter int  `json:"retry_after,omitempty"` // seconds
}

// RateLimiter is an explicitly constructed fixed-window limiter over an
// injected store; never ambient global state.
type RateLimiter struct {
	store CounterStore
	now   func() time.Time
}

func NewRateLimiter(store CounterStore) *RateLimiter {
	return &RateLimiter{store: store, now: time.Now}
}

// NewRateLimiterWithClock exists for tests that need to advance time.
func NewRateLimiterWithClock(store CounterStore, now func() time.Time) *RateLimiter {
	return &RateLimiter{store: store, now: now}
}

// Check counts one request against key's current window. The first request
// in a window seeds the counter; request maxRequests+1 within the same
// window is rejected with a retry-after in whole seconds.
func (rl *RateLimiter) Check(key string, maxRequests int, window time.Duration) RateLimitResult {
	now := rl.now()

	entry, exists := rl.store.Get(key)
	if exists && !entry.ResetAt.After(now) {
		rl.store.Delete(key)
		exists = false
	}

	if !exists {
		rl.store.Set(key, WindowEntry{Count: 1, ResetAt: now.Add(window)})
		return RateLimitResult{Allowed: true, Remaining: maxRequests - 1}
	}

	if entry.Count >= maxRequests {
		retryAfter := int(math.Ceil(entry.ResetAt.Sub(now).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		return RateLimitResult{Allowed: false, Remaining: 0, RetryAfter: retryAfter}
	}

	entry.Count++
	rl.store.Set(key, entry)
	return RateLimitResult{Allowed: true, Remaining: maxRequests - entry.Count}
}
