package audit

import "time"

// PerformanceMonitor records named checkpoints relative to its construction
// time, for per-request latency diagnostics.
type PerformanceMonitor struct {
	start       time.Time
	now         func() time.Time
	checkpoints []Checkpoint
}

type Checkpoint struct {
	Name    string `json:"name"`
	AtMS    int64  `json:"at_ms"`
	DeltaMS int64  `json:"delta_ms"`
}

type PerformanceSummary struct {
	TotalMS     int64        `json:"total_ms"`
	Checkpoints []Checkpoint `json:"checkpoints"`
}

func NewPerformanceMonitor() *PerformanceMonitor {
	return newPerformanceMonitor(time.Now)
}

func newPerformanceMonitor(now func() time.Time) *PerformanceMonitor {
	return &PerformanceMonitor{start: now(), now: now}
}

func (m *PerformanceMonitor) Checkpoint(name string) {
	at := m.now().Sub(m.start).Milliseconds()
	var prev int64
	if n := len(m.checkpoints); n > 0 {
		prev = m.checkpoints[n-1].AtMS
	}
	m.checkpoints = append(m.checkpoints, Checkpoint{Name: name, AtMS: at, DeltaMS: at - prev})
}

func (m *PerformanceMonitor) Summary() PerformanceSummary {
	return PerformanceSummary{
		TotalMS:     m.now().Sub(m.start).Milliseconds(),
		Checkpoints: append([]Checkpoint(nil), m.checkpoints...),
	}
}
