package ratebench

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrZeroDuration reports a rate conversion over a span the clock rounded
// down to nothing. Only reachable when a zero-operation run finishes within
// the clock's resolution.
var ErrZeroDuration = errors.New("cannot convert a zero duration to a rate")

// toRate converts an elapsed span and an operation count into integer
// operations per second: floor(count / elapsed_ns * 1e9).
func toRate(elapsed time.Duration, count int) (int, error) {
	if elapsed <= 0 {
		return 0, ErrZeroDuration
	}
	return int(float64(count) / float64(elapsed.Nanoseconds()) * 1e9), nil
}

// FormatRate renders a rate with '_' thousands separators, grouping by
// three from the least significant digit: 1234567 becomes "1_234_567".
// A leading minus sign stays outside the grouping.
func FormatRate(n int) string {
	s := strconv.Itoa(n)
	var sign string
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('_')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
