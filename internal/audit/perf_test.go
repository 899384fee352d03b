package audit

import (
	"testing"
	"time"
)

func TestPerformanceMonitor_CheckpointsAndDeltas(t *testing.T) {
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	m := newPerformanceMonitor(func() time.Time { return clock })

	clock = clock.Add(100 * time.Millisecond)
	m.Checkpoint("loaded")
	clock = clock.Add(250 * time.Millisecond)
	m.Checkpoint("validated")
	clock = clock.Add(50 * time.Millisecond)

	s := m.Summary()
	if s.TotalMS != 400 {
		t.Fatalf("expected total 400ms, got %d", s.TotalMS)
	}
	if len(s.Checkpoints) != 2 {
		t.Fatalf("expected 2 checkpoints, got %d", len(s.Checkpoints))
	}
	if s.Checkpoints[0].Name != "loaded" || s.Checkpoints[0].AtMS != 100 || s.Checkpoints[0].DeltaMS != 100 {
		t.Fatalf("unexpected first checkpoint: %+v", s.Checkpoints[0])
	}
	if s.Checkpoints[1].AtMS != 350 || s.Checkpoints[1].DeltaMS != 250 {
		t.Fatalf("unexpected second checkpoint: %+v", s.Checkpoints[1])
	}
}

func TestPerformanceMonitor_SummaryCopiesCheckpoints(t *testing.T) {
	m := NewPerformanceMonitor()
	m.Checkpoint("a")
	s := m.Summary()
	s.Checkpoints[0].Name = "mutated"
	if m.checkpoints[0].Name != "a" {
		t.Fatalf("summary must not alias internal state")
	}
}

func TestCostTracker_AccumulatesPerLabel(t *testing.T) {
	c := NewCostTracker()
	c.Add("task_plan", 0.10)
	c.Add("task_plan", 0.05)
	c.Add("sponsor_score", 0.02)

	if got := c.Total(); got < 0.1699 || got > 0.1701 {
		t.Fatalf("expected total ~0.17, got %v", got)
	}
	b := c.Breakdown()
	if b["task_plan"] < 0.1499 || b["task_plan"] > 0.1501 {
		t.Fatalf("expected task_plan ~0.15, got %v", b["task_plan"])
	}
	if len(b) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(b))
	}
}
