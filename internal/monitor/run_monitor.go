package monitor

// RunMetrics represents current suite run statistics
type RunMetrics struct {
	// ActiveRuns is the number of currently running benchmark suites
	ActiveRuns int64
	// MaxRuns is the maximum number of concurrent suite runs allowed
	MaxRuns int64
	// LoadPercentage is the current load as a percentage (0-100)
	LoadPercentage float64
}

// RunMonitor is an interface for gating concurrent benchmark suite runs.
// It abstracts away the implementation details of how occupancy is tracked,
// allowing different implementations (semaphore-based, queue-based, etc.)
type RunMonitor interface {
	// GetMetrics returns current run statistics
	GetMetrics() RunMetrics

	// TryAcquire attempts to acquire a run slot. Returns true if successful.
	// The caller MUST call Release() when the run completes.
	TryAcquire() bool

	// Release releases a run slot, allowing another run to be acquired
	Release()
}
