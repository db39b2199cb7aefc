package benchreport

import (
	"time"

	"github.com/google/uuid"
)

const Version = "v1"

type RunMetrics struct {
	WallSeconds float64 `json:"wall_seconds"`
	Rate        int     `json:"rate_ops_per_sec"`
}

type ReportEnv struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	CPUModel      string `json:"cpu_model"`
	CPUNumLogical int    `json:"cpu_num_logical"`
	GoVersion     string `json:"go_version"`
}

type ReportParams struct {
	Repeats   int  `json:"repeats"`
	Warmup    bool `json:"warmup"`
	GateWidth int  `json:"gate_width"`
}

type ResultRow struct {
	Label           string       `json:"label"`
	Workload        string       `json:"workload"`
	Concurrency     int          `json:"concurrency"`
	Count           int          `json:"count,omitempty"`
	DurationSeconds float64      `json:"duration_seconds,omitempty"`
	Runs            []RunMetrics `json:"runs"`
	Rate            int          `json:"rate_ops_per_sec"`
}

type Report struct {
	Version          string       `json:"version"`
	RunID            string       `json:"run_id"`
	TimestampRFC3339 string       `json:"timestamp_rfc3339"`
	Label            string       `json:"label"`
	Env              ReportEnv    `json:"env"`
	Params           ReportParams `json:"params"`
	Results          []ResultRow  `json:"results"`
	PeakRSSMegabytes float64      `json:"peak_rss_mb"`
}

// New returns a report stamped with a fresh run ID, the current time and
// the detected environment. Params and Results are filled by the caller.
func New(label string) *Report {
	return &Report{
		Version:          Version,
		RunID:            uuid.NewString(),
		TimestampRFC3339: time.Now().Format(time.RFC3339),
		Label:            label,
		Env:              DetectEnv(),
	}
}
