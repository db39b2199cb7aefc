package ratebench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResultsSortsDescendingKeepingTieOrder(t *testing.T) {
	results := []Result{
		{Label: "a", Rate: 100},
		{Label: "b", Rate: 300},
		{Label: "c", Rate: 300},
	}

	got := FormatResults(results)

	want := "b: 300 ops/s\n" +
		"c: 300 ops/s\n" +
		"a: 100 ops/s\n"
	assert.Equal(t, want, got)
}

func TestFormatResultsAlignsColumns(t *testing.T) {
	results := []Result{
		{Label: "parse json", Rate: 12345},
		{Label: "noop", Rate: 9876543},
	}

	got := FormatResults(results)

	want := "noop:       9_876_543 ops/s\n" +
		"parse json:    12_345 ops/s\n"
	assert.Equal(t, want, got)
}

func TestFormatResultsDoesNotMutateInput(t *testing.T) {
	results := []Result{
		{Label: "slow", Rate: 1},
		{Label: "fast", Rate: 1000},
	}

	_ = FormatResults(results)

	assert.Equal(t, "slow", results[0].Label)
	assert.Equal(t, "fast", results[1].Label)
}

func TestFormatResultsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatResults(nil))
}
