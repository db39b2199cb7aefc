package ratebench

import "time"

// estimateThreshold is the minimum measured span considered long enough to
// amortize timer resolution and dispatch overhead.
const estimateThreshold = 100 * time.Millisecond

// estimateRate probes work with geometrically growing trial counts until a
// run exceeds estimateThreshold, then returns the observed rate. Each round
// multiplies the trial count by 10, so round duration grows roughly
// linearly with count and the loop terminates for any work that makes
// progress. Every round reports its running estimate on the progress
// printer; work errors abort the probe and propagate as-is.
func estimateRate(work Work, concurrency int, progress *progressPrinter) (int, error) {
	count := concurrency
	if count < 1 {
		count = 1
	}

	for {
		elapsed, err := timedRun(work, concurrency, count)
		if err != nil {
			return 0, err
		}

		if elapsed > estimateThreshold {
			rate, err := toRate(elapsed, count)
			if err != nil {
				return 0, err
			}
			progress.Updatef("estimating: %s ops/s", FormatRate(rate))
			progress.Done()
			return rate, nil
		}

		if est, err := toRate(elapsed, count); err == nil {
			progress.Updatef("estimating: %s ops/s", FormatRate(est))
		}
		count *= 10
	}
}
