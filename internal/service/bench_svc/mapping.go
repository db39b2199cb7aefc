package bench_svc

import (
	"fmt"
	"time"

	"github.com/ciricc/go-ratebench/internal/config"
	"github.com/ciricc/go-ratebench/pkg/ratebench"
)

// mapEntryToBenchOpts translates a suite entry into harness options. Count
// and duration are mutually exclusive and rejected before any run starts.
func mapEntryToBenchOpts(entry config.Entry) ([]ratebench.BenchOpt, error) {
	if entry.Count > 0 && entry.DurationSeconds > 0 {
		return nil, fmt.Errorf("entry %s: %w", entry.Name, ratebench.ErrConflictingOptions)
	}

	benchOpts := []ratebench.BenchOpt{}

	if entry.Concurrency > 0 {
		benchOpts = append(benchOpts, ratebench.WithConcurrency(entry.Concurrency))
	}

	if entry.Count > 0 {
		benchOpts = append(benchOpts, ratebench.WithCount(entry.Count))
	}

	if entry.DurationSeconds > 0 {
		benchOpts = append(benchOpts, ratebench.WithDuration(time.Duration(entry.DurationSeconds*float64(time.Second))))
	}

	return benchOpts, nil
}
