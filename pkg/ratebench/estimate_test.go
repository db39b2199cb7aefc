package ratebench

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateRateConvergesForNoop(t *testing.T) {
	work := func() error { return nil }
	var buf bytes.Buffer

	rate, err := estimateRate(work, 1, newProgressPrinter(&buf))

	require.NoError(t, err)
	assert.Greater(t, rate, 0)
}

func TestEstimateRateReportsRunningEstimate(t *testing.T) {
	work := func() error { return nil }
	var buf bytes.Buffer

	_, err := estimateRate(work, 1, newProgressPrinter(&buf))

	require.NoError(t, err)
	// Captured output is not a terminal, so only the final estimate is
	// emitted, as a single plain line.
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "estimating: "), "got %q", out)
	assert.True(t, strings.HasSuffix(out, " ops/s\n"), "got %q", out)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestEstimateRateSlowWorkConvergesEarly(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		// 25ms per op: the first round (1 op) is under the 100ms threshold,
		// the second round (10 ops, ~250ms) is over it.
		time.Sleep(25 * time.Millisecond)
		return nil
	}
	var buf bytes.Buffer

	rate, err := estimateRate(work, 1, newProgressPrinter(&buf))

	require.NoError(t, err)
	assert.Equal(t, int64(11), calls.Load())
	assert.Greater(t, rate, 0)
	assert.LessOrEqual(t, rate, 100)
}

func TestEstimateRatePropagatesWorkError(t *testing.T) {
	errBoom := errors.New("boom")
	work := func() error { return errBoom }
	var buf bytes.Buffer

	_, err := estimateRate(work, 2, newProgressPrinter(&buf))

	assert.Equal(t, errBoom, err)
}

func TestEstimateRateTrialStartsAtConcurrency(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		time.Sleep(40 * time.Millisecond)
		return nil
	}
	var buf bytes.Buffer

	// First trial count equals the concurrency, one op per worker: ~40ms,
	// under the threshold. Second trial is 30 ops (10 per worker, ~400ms),
	// over it. Total 33 calls.
	_, err := estimateRate(work, 3, newProgressPrinter(&buf))

	require.NoError(t, err)
	assert.Equal(t, int64(33), calls.Load())
}
