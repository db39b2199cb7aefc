package monitor

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// SemaphoreRunMonitor implements RunMonitor using a semaphore for concurrency control.
// It tracks active suite runs by monitoring semaphore acquisition/release.
type SemaphoreRunMonitor struct {
	sem       *semaphore.Weighted
	maxWeight int64
	activeCnt atomic.Int64
}

// NewSemaphoreRunMonitor creates a new semaphore-based run monitor.
// maxRuns is the maximum number of concurrent suite runs allowed; values
// below 1 are clamped to 1 so the gate never starts closed.
func NewSemaphoreRunMonitor(maxRuns int64) *SemaphoreRunMonitor {
	if maxRuns < 1 {
		maxRuns = 1
	}

	return &SemaphoreRunMonitor{
		sem:       semaphore.NewWeighted(maxRuns),
		maxWeight: maxRuns,
	}
}

// GetMetrics returns current run statistics
func (m *SemaphoreRunMonitor) GetMetrics() RunMetrics {
	active := m.activeCnt.Load()
	loadPct := 0.0
	if m.maxWeight > 0 {
		loadPct = float64(active) / float64(m.maxWeight) * 100.0
	}

	return RunMetrics{
		ActiveRuns:     active,
		MaxRuns:        m.maxWeight,
		LoadPercentage: loadPct,
	}
}

// TryAcquire attempts to acquire a run slot. Returns true if successful.
// The caller MUST call Release() when the run completes.
func (m *SemaphoreRunMonitor) TryAcquire() bool {
	if m.sem.TryAcquire(1) {
		m.activeCnt.Add(1)
		return true
	}
	return false
}

// Release releases a run slot, allowing another run to be acquired
func (m *SemaphoreRunMonitor) Release() {
	m.activeCnt.Add(-1)
	m.sem.Release(1)
}

var _ RunMonitor = (*SemaphoreRunMonitor)(nil)
