package bench_svc

import "io"

type RunOpts struct {
	Repeats     *int
	Warmup      *bool
	Progress    *io.Writer
	ReportLabel *string
}

type RunOpt func(opts *RunOpts)

func WithRepeats(v int) RunOpt {
	return func(opts *RunOpts) { opts.Repeats = &v }
}

func WithWarmup(v bool) RunOpt {
	return func(opts *RunOpts) { opts.Warmup = &v }
}

func WithProgress(w io.Writer) RunOpt {
	return func(opts *RunOpts) { opts.Progress = &w }
}

func WithReportLabel(v string) RunOpt {
	return func(opts *RunOpts) { opts.ReportLabel = &v }
}
