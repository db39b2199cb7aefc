package bench_svc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/ciricc/go-ratebench/internal/config"
	"github.com/ciricc/go-ratebench/internal/monitor"
	"github.com/ciricc/go-ratebench/internal/workload"
	"github.com/ciricc/go-ratebench/pkg/benchreport"
	"github.com/ciricc/go-ratebench/pkg/ratebench"
	"github.com/samber/lo"
)

var (
	ErrBenchServiceBusy = errors.New("bench service is busy")
)

type BenchService interface {
	// RunSuite benchmarks every suite entry in order and collects the
	// measurements into a single report. It fails on the first entry that
	// cannot be benchmarked.
	RunSuite(
		ctx context.Context,
		entries []config.Entry,
		opts ...RunOpt,
	) (*benchreport.Report, error)
}

type BenchServiceImpl struct {
	registry   *workload.Registry
	logger     *slog.Logger
	runMonitor monitor.RunMonitor
}

func NewBenchService(
	registry *workload.Registry,
	logger *slog.Logger,
	runMonitor monitor.RunMonitor,
) *BenchServiceImpl {
	return &BenchServiceImpl{
		registry:   registry,
		logger:     logger,
		runMonitor: runMonitor,
	}
}

func (s *BenchServiceImpl) RunSuite(
	ctx context.Context,
	entries []config.Entry,
	opts ...RunOpt,
) (*benchreport.Report, error) {
	if !s.runMonitor.TryAcquire() {
		return nil, ErrBenchServiceBusy
	}
	defer s.runMonitor.Release()

	s.logger.DebugContext(ctx, "Acquired run slot")

	o := buildOpts(RunOpts{
		Repeats: lo.ToPtr(1),
		Warmup:  lo.ToPtr(false),
	}, opts...)

	repeats := *o.Repeats
	if repeats < 1 {
		repeats = 1
	}

	var label string
	if o.ReportLabel != nil {
		label = *o.ReportLabel
	}

	report := benchreport.New(label)
	report.Params = benchreport.ReportParams{
		Repeats:   repeats,
		Warmup:    *o.Warmup,
		GateWidth: int(s.runMonitor.GetMetrics().MaxRuns),
	}

	for _, entry := range entries {
		row, err := s.benchEntry(ctx, entry, o, repeats)
		if err != nil {
			return nil, err
		}

		report.Results = append(report.Results, row)
	}

	return report, nil
}

func (s *BenchServiceImpl) benchEntry(
	ctx context.Context,
	entry config.Entry,
	o RunOpts,
	repeats int,
) (benchreport.ResultRow, error) {
	var row benchreport.ResultRow

	if entry.Name == "" {
		entry.Name = entry.Workload
	}

	work, err := s.registry.Lookup(entry.Workload)
	if err != nil {
		return row, err
	}

	benchOpts, err := mapEntryToBenchOpts(entry)
	if err != nil {
		return row, err
	}
	if o.Progress != nil {
		benchOpts = append(benchOpts, ratebench.WithProgress(*o.Progress))
		fmt.Fprintf(*o.Progress, "benchmarking %s\n", entry.Name)
	}

	if *o.Warmup {
		s.logger.DebugContext(ctx, "Warming up", "entry", entry.Name)
		if _, err := ratebench.Bench(entry.Name, work, benchOpts...); err != nil {
			return row, fmt.Errorf("warmup failed: %w", err)
		}
	}

	concurrency := entry.Concurrency
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}

	row = benchreport.ResultRow{
		Label:           entry.Name,
		Workload:        entry.Workload,
		Concurrency:     concurrency,
		Count:           entry.Count,
		DurationSeconds: entry.DurationSeconds,
	}

	rateSum := 0
	for i := 0; i < repeats; i++ {
		started := time.Now()
		res, err := ratebench.Bench(entry.Name, work, benchOpts...)
		if err != nil {
			return row, err
		}

		row.Runs = append(row.Runs, benchreport.RunMetrics{
			WallSeconds: time.Since(started).Seconds(),
			Rate:        res.Rate,
		})
		rateSum += res.Rate
	}

	row.Rate = rateSum / repeats

	s.logger.DebugContext(ctx, "Entry done", "entry", entry.Name, "rate", row.Rate)

	if o.Progress != nil {
		fmt.Fprintf(*o.Progress, "%s: %s ops/s\n", entry.Name, ratebench.FormatRate(row.Rate))
	}

	return row, nil
}

func buildOpts(defaultOpts RunOpts, opts ...RunOpt) RunOpts {
	o := defaultOpts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var _ BenchService = (*BenchServiceImpl)(nil)
