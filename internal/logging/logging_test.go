package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInitAt_WritesToFile(t *testing.T) {
	keepDefaultLogger(t)

	dir := filepath.Join(t.TempDir(), "logs")
	path, closeFn, err := InitAt(dir, slog.LevelDebug)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	assert.Equal(t, filepath.Join(dir, FileName), path)

	slog.Debug("project moved", "project_id", "p-1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "project moved")
	assert.Contains(t, string(data), "project_id=p-1")
}

func TestInitAt_FiltersBelowLevel(t *testing.T) {
	keepDefaultLogger(t)

	path, closeFn, err := InitAt(t.TempDir(), slog.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	slog.Debug("move ignored: status unchanged")
	slog.Warn("store mutated from inside a listener", "operation", "AddProject")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "status unchanged")
	assert.Contains(t, string(data), "inside a listener")
}

func TestInitAt_Appends(t *testing.T) {
	keepDefaultLogger(t)

	dir := t.TempDir()
	path, closeFirst, err := InitAt(dir, slog.LevelInfo)
	require.NoError(t, err)
	slog.Info("first")
	require.NoError(t, closeFirst())

	_, closeSecond, err := InitAt(dir, slog.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeSecond() })
	slog.Info("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{" WARN ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
