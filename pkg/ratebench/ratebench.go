// Package ratebench measures the throughput of a unit of work in operations
// per second. A benchmark either times a fixed operation count or estimates
// a count that fills a target wall-clock duration, splitting the work evenly
// across concurrent workers. Results from several benchmarks can be rendered
// as a ranked, aligned table with FormatResults.
package ratebench

import (
	"errors"
	"time"
)

var (
	// ErrConflictingOptions is returned when a benchmark is configured with
	// both a fixed count and a target duration.
	ErrConflictingOptions = errors.New("use duration OR count, not both")
)

// Work is a zero-argument unit of work. The harness ignores whatever the
// work produces and observes only its completion and error.
type Work func() error

// Result is the outcome of a single benchmark. Rate is operations per
// second, floor-rounded, never negative.
type Result struct {
	Label string
	Rate  int
}

// Entry pairs a labeled unit of work with its per-entry options for
// BenchMany.
type Entry struct {
	Label string
	Work  Work
	Opts  []BenchOpt
}

// Bench measures work under the configured concurrency and returns its rate.
//
// With WithCount the given count is timed directly. Otherwise the count is
// estimated so the measured run fills the target duration (default 5s).
// Configuring both count and duration fails with ErrConflictingOptions
// before work runs even once. Errors returned by work propagate unwrapped.
func Bench(label string, work Work, opts ...BenchOpt) (Result, error) {
	o := buildOpts(defaultOpts(), opts...)
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	concurrency := *o.Concurrency
	progress := newProgressPrinter(*o.Progress)

	var count int
	if o.Count != nil {
		count = *o.Count
	} else {
		var targetDuration = 5 * time.Second

		if o.Duration != nil {
			targetDuration = *o.Duration
		}

		est, err := estimateRate(work, concurrency, progress)
		if err != nil {
			return Result{}, err
		}
		count = int(targetDuration.Seconds() * float64(est))
	}

	elapsed, err := timedRun(work, concurrency, count)
	if err != nil {
		return Result{}, err
	}

	rate, err := toRate(elapsed, count)
	if err != nil {
		return Result{}, err
	}

	return Result{Label: label, Rate: rate}, nil
}

// BenchMany runs Bench once per entry and returns the results in entry
// order. It never sorts; ranking belongs to FormatResults. Shared options
// apply to every entry, and an entry's own options override them option by
// option. Overriding never clears the other mode: a shared count combined
// with an entry duration (or the reverse) still fails with
// ErrConflictingOptions.
//
// Each entry emits two informational progress lines (its label before the
// run, its rate after). The first failing entry aborts the remaining ones
// and its error propagates unwrapped.
func BenchMany(entries []Entry, shared ...BenchOpt) ([]Result, error) {
	o := buildOpts(defaultOpts(), shared...)
	progress := newProgressPrinter(*o.Progress)

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		progress.Linef("benchmarking %s", e.Label)

		merged := make([]BenchOpt, 0, len(shared)+len(e.Opts))
		merged = append(merged, shared...)
		merged = append(merged, e.Opts...)

		res, err := Bench(e.Label, e.Work, merged...)
		if err != nil {
			return nil, err
		}

		progress.Linef("%s: %s ops/s", e.Label, FormatRate(res.Rate))
		results = append(results, res)
	}

	return results, nil
}
