package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutConfigUsesDefaults(t *testing.T) {
	a, err := New("")

	require.NoError(t, err)
	assert.Equal(t, "info", a.Config.Log.Level)
	assert.Equal(t, 1, a.Config.Bench.MaxConcurrentRuns)
	assert.NotNil(t, a.Workloads)
	assert.NotNil(t, a.BenchService)
	assert.NoError(t, a.Close())
}

func TestNewLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
suite:
  - name: hash
    workload: sha256
    count: 1000
`), 0o644))

	a, err := New(path)

	require.NoError(t, err)
	require.Len(t, a.Config.Suite, 1)
	assert.Equal(t, "hash", a.Config.Suite[0].Name)
	assert.Equal(t, "debug", a.Config.Log.Level)
}

func TestNewFailsOnMissingConfig(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("garbage"))
}
