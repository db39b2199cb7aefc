package ratebench

import (
	"fmt"
	"sort"
	"strings"
)

// FormatResults renders results as an aligned table sorted by rate
// descending; entries with equal rates keep their original relative order.
// Labels are left-justified with a trailing colon, rates right-justified
// with '_' thousands separators and the " ops/s" unit:
//
//	noop:       9_876_543 ops/s
//	parse json:    12_345 ops/s
//
// The caller decides whether and where to print the returned text.
func FormatResults(results []Result) string {
	rows := make([]Result, len(results))
	copy(rows, results)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rate > rows[j].Rate
	})

	maxLabel, maxRate := 0, 0
	rates := make([]string, len(rows))
	for i, r := range rows {
		rates[i] = FormatRate(r.Rate)
		if len(r.Label) > maxLabel {
			maxLabel = len(r.Label)
		}
		if len(rates[i]) > maxRate {
			maxRate = len(rates[i])
		}
	}

	var b strings.Builder
	for i, r := range rows {
		fmt.Fprintf(&b, "%-*s %*s ops/s\n", maxLabel+1, r.Label+":", maxRate, rates[i])
	}
	return b.String()
}
