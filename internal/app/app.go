package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/ciricc/go-ratebench/internal/config"
	"github.com/ciricc/go-ratebench/internal/monitor"
	"github.com/ciricc/go-ratebench/internal/service/bench_svc"
	"github.com/ciricc/go-ratebench/internal/workload"
)

type Application struct {
	Config       config.Config
	Workloads    *workload.Registry
	BenchService bench_svc.BenchService
	logger       *slog.Logger
	runMonitor   monitor.RunMonitor
}

// New wires the application from the config at configPath. An empty path
// uses the built-in defaults instead of reading a file.
func New(configPath string) (*Application, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	registry := workload.NewRegistry()

	// Create run monitor gating concurrent suite runs
	runMonitor := monitor.NewSemaphoreRunMonitor(int64(cfg.Bench.MaxConcurrentRuns))

	// Create bench service with run monitor
	svc := bench_svc.NewBenchService(
		registry,
		log,
		runMonitor,
	)

	return &Application{
		Config:       cfg,
		Workloads:    registry,
		BenchService: svc,
		logger:       log,
		runMonitor:   runMonitor,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (a *Application) Close() error {
	return nil
}
