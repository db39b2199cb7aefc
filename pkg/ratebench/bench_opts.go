package ratebench

import (
	"errors"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/samber/lo"
)

type BenchOpts struct {
	Concurrency *int
	Count       *int
	Duration    *time.Duration
	Progress    *io.Writer
}

type BenchOpt func(opts *BenchOpts)

// WithConcurrency sets the number of workers. Must be positive.
func WithConcurrency(v int) BenchOpt {
	return func(opts *BenchOpts) { opts.Concurrency = &v }
}

// WithCount runs exactly v operations instead of estimating a count from a
// target duration. Mutually exclusive with WithDuration.
func WithCount(v int) BenchOpt {
	return func(opts *BenchOpts) { opts.Count = &v }
}

// WithDuration sets the target wall-clock span the measured run should
// fill. Mutually exclusive with WithCount.
func WithDuration(v time.Duration) BenchOpt {
	return func(opts *BenchOpts) { opts.Duration = &v }
}

// WithProgress redirects informational progress output (default os.Stdout).
func WithProgress(w io.Writer) BenchOpt {
	return func(opts *BenchOpts) { opts.Progress = &w }
}

// defaultOpts queries hardware parallelism at call time, not at init, so
// every call observes the current value.
func defaultOpts() BenchOpts {
	return BenchOpts{
		Concurrency: lo.ToPtr(runtime.NumCPU()),
		Progress:    lo.ToPtr[io.Writer](os.Stdout),
	}
}

func buildOpts(defaultOpts BenchOpts, opts ...BenchOpt) BenchOpts {
	o := defaultOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o BenchOpts) validate() error {
	if o.Count != nil && o.Duration != nil {
		return ErrConflictingOptions
	}
	if o.Concurrency != nil && *o.Concurrency < 1 {
		return errors.New("concurrency must be positive")
	}
	if o.Count != nil && *o.Count < 0 {
		return errors.New("count must be non-negative")
	}
	if o.Duration != nil && *o.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}
