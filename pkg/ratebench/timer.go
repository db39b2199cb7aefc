package ratebench

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// timedRun measures the wall-clock span of running work count times spread
// over concurrency workers.
//
// With concurrency 1 the loop runs on the calling goroutine. Otherwise each
// worker runs count/concurrency iterations sequentially; the integer
// division drops the remainder, so the total executed is
// concurrency*(count/concurrency) operations. Workers share no mutable
// state and never communicate; the span runs from a single timestamp taken
// before dispatch to a single timestamp taken after the last worker
// finishes, so the slowest worker governs the measurement.
//
// The first error returned by work aborts the measurement and is returned
// as-is; already-dispatched workers still run to completion before the
// error surfaces.
func timedRun(work Work, concurrency, count int) (time.Duration, error) {
	if concurrency <= 1 {
		start := time.Now()
		for i := 0; i < count; i++ {
			if err := work(); err != nil {
				return 0, err
			}
		}
		return time.Since(start), nil
	}

	share := count / concurrency

	var g errgroup.Group
	start := time.Now()
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for j := 0; j < share; j++ {
				if err := work(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)
	if err != nil {
		return 0, err
	}
	return elapsed, nil
}
