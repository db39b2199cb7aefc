package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/ciricc/go-ratebench/pkg/benchreport"
	"github.com/ciricc/go-ratebench/pkg/ratebench"
)

// Choice is one benchmarked configuration: a single result row together
// with the environment of the report it came from.
type Choice struct {
	Path   string
	Report benchreport.Report
	Row    benchreport.ResultRow
}

func main() {
	var (
		dir          = flag.String("dir", "reports", "directory containing JSON benchmark reports")
		maxResults   = flag.Int("n", 5, "number of top configurations to print")
		workloadName = flag.String("workload", "", "only consider rows for this workload")
	)
	flag.Parse()

	choices, err := loadChoices(*dir, *workloadName)
	if err != nil {
		fatalf("load reports: %v", err)
	}
	if len(choices) == 0 {
		fatalf("no matching reports found in %s", *dir)
	}

	// Pareto front: maximize rate, minimize peak RSS
	pareto := paretoFront(choices)
	rankChoices(pareto)

	if *maxResults > len(pareto) {
		*maxResults = len(pareto)
	}

	for i := 0; i < *maxResults; i++ {
		c := pareto[i]
		fmt.Printf("%d) %s\n", i+1, c.Path)
		fmt.Printf("   label=%s workload=%s concurrency=%d rate=%s ops/s peak_rss_mb=%.1f\n",
			c.Row.Label, c.Row.Workload, c.Row.Concurrency, ratebench.FormatRate(c.Row.Rate), c.Report.PeakRSSMegabytes)
		fmt.Printf("   machine=%s os=%s arch=%s cpu=\"%s\" cpus=%d go=%s\n",
			c.Report.Label, c.Report.Env.OS, c.Report.Env.Arch, c.Report.Env.CPUModel, c.Report.Env.CPUNumLogical, c.Report.Env.GoVersion)
	}
}

func loadChoices(dir, workloadName string) ([]Choice, error) {
	loaded, err := benchreport.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []Choice
	for _, l := range loaded {
		for _, row := range l.Report.Results {
			if workloadName != "" && row.Workload != workloadName {
				continue
			}
			out = append(out, Choice{Path: l.Path, Report: l.Report, Row: row})
		}
	}
	return out, nil
}

func paretoFront(in []Choice) []Choice {
	var out []Choice
	for i := range in {
		dominated := false
		for j := range in {
			if i == j {
				continue
			}
			if dominates(in[j], in[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, in[i])
		}
	}
	return out
}

func dominates(a, b Choice) bool {
	// Higher is better for rate, lower is better for RSS; a zero RSS means
	// the report was produced without sampling, so compare rates only.
	aRSS, bRSS := a.Report.PeakRSSMegabytes, b.Report.PeakRSSMegabytes
	betterOrEqualRSS := (aRSS == 0 && bRSS == 0) || (aRSS > 0 && bRSS > 0 && aRSS <= bRSS)
	strictlyBetterRSS := aRSS > 0 && bRSS > 0 && aRSS < bRSS
	betterOrEqualRate := a.Row.Rate >= b.Row.Rate
	strictlyBetterRate := a.Row.Rate > b.Row.Rate

	return (betterOrEqualRSS && strictlyBetterRate) || (strictlyBetterRSS && betterOrEqualRate)
}

// rankChoices orders by rate descending; ties prefer lower peak RSS, then
// fewer logical CPUs.
func rankChoices(choices []Choice) {
	sort.SliceStable(choices, func(i, j int) bool {
		ci, cj := choices[i], choices[j]
		if ci.Row.Rate != cj.Row.Rate {
			return ci.Row.Rate > cj.Row.Rate
		}
		if ci.Report.PeakRSSMegabytes != cj.Report.PeakRSSMegabytes {
			return ci.Report.PeakRSSMegabytes < cj.Report.PeakRSSMegabytes
		}
		return ci.Report.Env.CPUNumLogical < cj.Report.Env.CPUNumLogical
	})
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
