package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "tasktab.log")
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("task", "test message")

	// Verify
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "tasktab.log")
	logger := New(path, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Debug("task", "debug message")
	logger.Info("task", "info message")
	logger.Warn("task", "warn message")
	logger.Error("task", "error message")

	// Verify (debug and info should be filtered)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyPath(t *testing.T) {
	// Setup with empty path
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute - should not panic
	logger.Info("task", "test message")
	logger.Debug("task", "debug message")
	logger.Warn("task", "warn message")
	logger.Error("task", "error message")

	// No assertion needed - just verify no panic
}

func TestLogger_LogFormat(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "tasktab.log")
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("usecase", `task created: "my task"`)

	// Verify format: [timestamp] [INFO] [usecase] message
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[usecase]")
	assert.Contains(t, line, `task created: "my task"`)
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "tasktab.log")

	// Execute: two logger lifetimes against the same file
	first := New(path, slog.LevelInfo)
	first.Info("session", "first run")
	require.NoError(t, first.Close())

	second := New(path, slog.LevelInfo)
	second.Info("session", "second run")
	require.NoError(t, second.Close())

	// Verify both entries survive
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")
}

func TestLogger_Close(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "tasktab.log")
	logger := New(path, slog.LevelInfo)

	// Write some logs
	logger.Info("task", "test message")

	// Close
	err := logger.Close()
	assert.NoError(t, err)

	// Verify file exists
	assert.FileExists(t, path)

	// Close again is a no-op
	assert.NoError(t, logger.Close())
}

func TestLogger_CreatesParentDir(t *testing.T) {
	// Setup - log path in a subdirectory that doesn't exist yet
	dir := t.TempDir()
	logsDir := filepath.Join(dir, "logs")
	path := filepath.Join(logsDir, "tasktab.log")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	// Create logger and write log
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("task", "test message")

	// Verify the directory was created
	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
