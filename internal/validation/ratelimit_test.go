package validation

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToMaxThenRejects(t *testing.T) {
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(NewMemoryCounterStore(), func() time.Time { return clock })

	for i := 0; i < 5; i++ {
		res := rl.Check("user-a", 5, time.Minute)
		if !res.Allowed {
			t.Fatalf("request %d unexpectedly rejected", i+1)
		}
		if res.Remaining != 5-(i+1) {
			t.Fatalf("request %d: expected remaining %d, got %d", i+1, 5-(i+1), res.Remaining)
		}
	}

	res := rl.Check("user-a", 5, time.Minute)
	if res.Allowed {
		t.Fatalf("6th request should be rejected")
	}
	if res.RetryAfter <= 0 {
		t.Fatalf("expected positive retry_after, got %d", res.RetryAfter)
	}
}

func TestRateLimiter_WindowResetAllowsAgain(t *testing.T) {
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(NewMemoryCounterStore(), func() time.Time { return clock })

	for i := 0; i < 3; i++ {
		rl.Check("user-b", 3, time.Minute)
	}
	if res := rl.Check("user-b", 3, time.Minute); res.Allowed {
		t.Fatalf("expected rejection inside window")
	}

	clock = clock.Add(time.Minute)
	res := rl.Check("user-b", 3, time.Minute)
	if !res.Allowed {
		t.Fatalf("expected fresh window to allow")
	}
	if res.Remaining != 2 {
		t.Fatalf("expected remaining 2 after reseed, got %d", res.Remaining)
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(NewMemoryCounterStore(), func() time.Time { return clock })

	rl.Check("user-c", 1, time.Minute)
	if res := rl.Check("user-c", 1, time.Minute); res.Allowed {
		t.Fatalf("expected user-c exhausted")
	}
	if res := rl.Check("user-d", 1, time.Minute); !res.Allowed {
		t.Fatalf("expected user-d unaffected")
	}
}

func TestRateLimiter_RetryAfterRoundsUpToAtLeastOneSecond(t *testing.T) {
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(NewMemoryCounterStore(), func() time.Time { return clock })

	rl.Check("user-e", 1, time.Minute)
	clock = clock.Add(59*time.Second + 500*time.Millisecond)
	res := rl.Check("user-e", 1, time.Minute)
	if res.Allowed {
		t.Fatalf("expected rejection 500ms before reset")
	}
	if res.RetryAfter != 1 {
		t.Fatalf("expected retry_after 1, got %d", res.RetryAfter)
	}
}

func TestRateLimiter_ExpiredWindowIsEvicted(t *testing.T) {
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryCounterStore()
	rl := NewRateLimiterWithClock(store, func() time.Time { return clock })

	rl.Check("user-f", 2, time.Minute)
	clock = clock.Add(2 * time.Minute)
	rl.Check("user-f", 2, time.Minute)

	entry, ok := store.Get("user-f")
	if !ok {
		t.Fatalf("expected reseeded entry")
	}
	if entry.Count != 1 {
		t.Fatalf("expected count reset to 1, got %d", entry.Count)
	}
}
