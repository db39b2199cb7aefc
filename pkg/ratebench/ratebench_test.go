package ratebench

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchRejectsCountAndDurationTogether(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		return nil
	}

	_, err := Bench("conflict", work,
		WithCount(10),
		WithDuration(time.Second),
		WithProgress(io.Discard),
	)

	assert.ErrorIs(t, err, ErrConflictingOptions)
	assert.Equal(t, "use duration OR count, not both", err.Error())
	assert.Equal(t, int64(0), calls.Load(), "no work may run on a config error")
}

func TestBenchRejectsInvalidOptions(t *testing.T) {
	work := func() error { return nil }

	cases := []struct {
		name string
		opts []BenchOpt
	}{
		{"zero concurrency", []BenchOpt{WithConcurrency(0)}},
		{"negative concurrency", []BenchOpt{WithConcurrency(-2)}},
		{"negative count", []BenchOpt{WithCount(-1)}},
		{"zero duration", []BenchOpt{WithDuration(0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Bench("bad", work, tc.opts...)
			assert.Error(t, err)
		})
	}
}

func TestBenchFixedCountSequential(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		return nil
	}

	res, err := Bench("counted", work,
		WithConcurrency(1),
		WithCount(5000),
		WithProgress(io.Discard),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), calls.Load())
	assert.Equal(t, "counted", res.Label)
	assert.Greater(t, res.Rate, 0)
}

func TestBenchFixedCountParallelDropsRemainder(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		return nil
	}

	_, err := Bench("parallel", work,
		WithConcurrency(3),
		WithCount(10),
		WithProgress(io.Discard),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(9), calls.Load())
}

func TestBenchSleepWorkloadEndToEnd(t *testing.T) {
	work := func() error {
		time.Sleep(10 * time.Millisecond)
		return nil
	}

	res, err := Bench("sleep", work,
		WithConcurrency(1),
		WithCount(5),
		WithProgress(io.Discard),
	)

	// 5 sequential 10ms sleeps take at least 50ms, so the rate cannot
	// exceed 100 ops/s. No upper bound on the elapsed side: timing noise
	// only pushes the rate further down.
	require.NoError(t, err)
	assert.Greater(t, res.Rate, 0)
	assert.LessOrEqual(t, res.Rate, 100)
}

func TestBenchDurationModeEstimatesAndRuns(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		return nil
	}

	res, err := Bench("timed", work,
		WithConcurrency(1),
		WithDuration(200*time.Millisecond),
		WithProgress(io.Discard),
	)

	require.NoError(t, err)
	assert.Greater(t, res.Rate, 0)
	assert.Greater(t, calls.Load(), int64(0))
}

func TestBenchPropagatesWorkErrorUnwrapped(t *testing.T) {
	errBoom := errors.New("boom")
	work := func() error { return errBoom }

	_, err := Bench("failing", work,
		WithCount(3),
		WithConcurrency(1),
		WithProgress(io.Discard),
	)

	assert.Equal(t, errBoom, err)
}

func TestBenchManyPreservesEntryOrder(t *testing.T) {
	fast := func() error { return nil }
	slow := func() error {
		time.Sleep(time.Millisecond)
		return nil
	}

	results, err := BenchMany([]Entry{
		{Label: "slow", Work: slow, Opts: []BenchOpt{WithCount(5)}},
		{Label: "fast", Work: fast, Opts: []BenchOpt{WithCount(5)}},
	}, WithConcurrency(1), WithProgress(io.Discard))

	require.NoError(t, err)
	require.Len(t, results, 2)
	// Input order survives even though "fast" has the higher rate.
	assert.Equal(t, "slow", results[0].Label)
	assert.Equal(t, "fast", results[1].Label)
	assert.Greater(t, results[1].Rate, results[0].Rate)
}

func TestBenchManyAbortsOnFirstFailure(t *testing.T) {
	errBoom := errors.New("boom")
	var after atomic.Int64

	results, err := BenchMany([]Entry{
		{Label: "ok", Work: func() error { return nil }, Opts: []BenchOpt{WithCount(3)}},
		{Label: "bad", Work: func() error { return errBoom }, Opts: []BenchOpt{WithCount(3)}},
		{Label: "never", Work: func() error {
			after.Add(1)
			return nil
		}, Opts: []BenchOpt{WithCount(3)}},
	}, WithConcurrency(1), WithProgress(io.Discard))

	assert.Equal(t, errBoom, err)
	assert.Nil(t, results)
	assert.Equal(t, int64(0), after.Load(), "entries after the failure must not run")
}

func TestBenchManyEmitsProgressPerEntry(t *testing.T) {
	var buf bytes.Buffer
	work := func() error { return nil }

	_, err := BenchMany([]Entry{
		{Label: "first", Work: work, Opts: []BenchOpt{WithCount(10)}},
		{Label: "second", Work: work, Opts: []BenchOpt{WithCount(10)}},
	}, WithConcurrency(1), WithProgress(&buf))

	require.NoError(t, err)
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "benchmarking first", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "first: "), "got %q", lines[1])
	assert.True(t, strings.HasSuffix(lines[1], " ops/s"), "got %q", lines[1])
	assert.Equal(t, "benchmarking second", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "second: "), "got %q", lines[3])
}

func TestBenchManyEntryOptsOverrideShared(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		return nil
	}

	_, err := BenchMany([]Entry{
		{Label: "override", Work: work, Opts: []BenchOpt{WithCount(7)}},
	}, WithConcurrency(1), WithCount(100), WithProgress(io.Discard))

	require.NoError(t, err)
	assert.Equal(t, int64(7), calls.Load())
}

func TestBenchManySharedCountConflictsWithEntryDuration(t *testing.T) {
	var calls atomic.Int64
	work := func() error {
		calls.Add(1)
		return nil
	}

	results, err := BenchMany([]Entry{
		{Label: "mixed", Work: work, Opts: []BenchOpt{WithDuration(time.Second)}},
	}, WithCount(10), WithProgress(io.Discard))

	assert.ErrorIs(t, err, ErrConflictingOptions)
	assert.Nil(t, results)
	assert.Equal(t, int64(0), calls.Load(), "no work may run on a config error")
}
