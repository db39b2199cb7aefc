package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/ciricc/go-ratebench/internal/app"
	"github.com/ciricc/go-ratebench/internal/config"
	"github.com/ciricc/go-ratebench/internal/service/bench_svc"
	"github.com/ciricc/go-ratebench/pkg/benchreport"
	"github.com/ciricc/go-ratebench/pkg/ratebench"
)

func main() {
	var (
		cfgPath      = flag.String("config", "", "path to YAML config with a benchmark suite")
		workloadName = flag.String("workload", "", "single built-in workload to benchmark (overrides the suite)")
		concurrency  = flag.Int("concurrency", 0, "number of workers (0 = all logical CPUs)")
		count        = flag.Int("count", 0, "fixed operation count; mutually exclusive with -duration")
		durationSec  = flag.Float64("duration", 0, "target duration in seconds; mutually exclusive with -count")
		repeats      = flag.Int("repeats", 1, "number of measured runs to average per entry")
		warmup       = flag.Bool("warmup", false, "run one unmeasured warmup pass before measured runs")
		label        = flag.String("label", "", "optional label for this machine/config (e.g., i5-12400-32gb)")
		listNames    = flag.Bool("list", false, "list built-in workloads and exit")
		outPath      = flag.String("out", "", "optional path to write a JSON report")
	)
	flag.Parse()

	if *repeats <= 0 {
		*repeats = 1
	}

	application, err := app.New(*cfgPath)
	if err != nil {
		fatalf("init: %v", err)
	}
	defer application.Close()

	if *listNames {
		for _, name := range application.Workloads.Names() {
			fmt.Println(name)
		}
		return
	}

	entries := application.Config.Suite
	if *workloadName != "" {
		entries = []config.Entry{{
			Name:            *workloadName,
			Workload:        *workloadName,
			Concurrency:     *concurrency,
			Count:           *count,
			DurationSeconds: *durationSec,
		}}
	}
	if len(entries) == 0 {
		fatalf("nothing to benchmark: pass -workload or -config with a suite")
	}

	rssStopCh := make(chan struct{})
	rssSamplesCh := make(chan uint64, 1024)
	go sampleRSSPeriodic(rssSamplesCh, rssStopCh)

	report, err := application.BenchService.RunSuite(
		context.Background(),
		entries,
		bench_svc.WithRepeats(*repeats),
		bench_svc.WithWarmup(*warmup),
		bench_svc.WithReportLabel(*label),
		bench_svc.WithProgress(os.Stdout),
	)

	close(rssStopCh)
	var maxRSSKB uint64
	drainRSS(rssSamplesCh, &maxRSSKB)

	if err != nil {
		fatalf("bench: %v", err)
	}
	report.PeakRSSMegabytes = float64(maxRSSKB) / 1024.0

	results := make([]ratebench.Result, 0, len(report.Results))
	for _, row := range report.Results {
		results = append(results, ratebench.Result{Label: row.Label, Rate: row.Rate})
	}
	fmt.Println()
	fmt.Print(ratebench.FormatResults(results))

	if *outPath != "" {
		if err := benchreport.Save(report, *outPath); err != nil {
			fatalf("write report: %v", err)
		}
	}
}

func sampleRSSPeriodic(out chan<- uint64, stop <-chan struct{}) {
	pid := os.Getpid()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if rss, err := readRSSKB(pid); err == nil {
				select {
				case out <- rss:
				default:
				}
			}
		}
	}
}

func drainRSS(ch <-chan uint64, max *uint64) {
	for {
		select {
		case v := <-ch:
			if v > *max {
				*max = v
			}
		default:
			return
		}
	}
}

func readRSSKB(pid int) (uint64, error) {
	// Works on macOS and Linux: ps -o rss= -p <pid>
	cmd := exec.Command("ps", "-o", "rss=", "-p", strconv.Itoa(pid))
	b, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(b))
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("unexpected ps output: %q", s)
	}
	v, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
