package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/testutil"
)

// testNow keeps due states stable across test runs.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(store *testutil.MockTaskStore) *app.Container {
	return app.NewWithDeps(
		domain.NewDefaultConfig(),
		store,
		&testutil.MockStoreChecker{},
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockLogger{},
	)
}

// mustTask builds a valid task or fails the test.
func mustTask(t *testing.T, date, timeOfDay, priority string, lines ...string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(date, timeOfDay, priority, lines)
	require.NoError(t, err)
	return task
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestAddCommand_CreatesTask(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore()
	container := newTestContainer(store)

	// Create command
	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--date", "2026-3-15", "--time", "9:05", "--priority", "H", "--line", "Write the summary"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Added task 1 (due 2026-03-15 09:05)")

	task, err := store.List.Get(1)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, []string{"Write the summary"}, task.Description)
}

func TestAddCommand_MultiLineDescription(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore()
	container := newTestContainer(store)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--date", "2026-03-15", "--time", "09:00", "--priority", "n",
		"--line", "Water the plants",
		"--line", "Check the soil first",
	})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	task, err := store.List.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water the plants", "Check the soil first"}, task.Description)
}

func TestAddCommand_InvalidDate(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore()
	container := newTestContainer(store)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--date", "2026-02-30", "--time", "09:00", "--priority", "n", "--line", "x"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Equal(t, 0, store.SaveCount())
}

func TestAddCommand_FromDraftFile(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "08:00", "c", "Existing task"),
	)
	container := newTestContainer(store)

	path := filepath.Join(t.TempDir(), "drafts.md")
	drafts := `---
date: 2026-09-01
time: 09:00
priority: h
---
Ship the quarterly report.
---
date: 2026-09-02
time: 14:30
priority: l
---
Water the plants.
Check the soil first.
`
	require.NoError(t, os.WriteFile(path, []byte(drafts), 0o600))

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--from", path})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Imported 2 tasks (3 total)")
	assert.Equal(t, 3, store.List.Len())
}

func TestAddCommand_FromDryRun(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore()
	container := newTestContainer(store)

	path := filepath.Join(t.TempDir(), "drafts.md")
	drafts := "---\ndate: 2026-09-01\ntime: 09:00\npriority: h\n---\nShip the quarterly report.\n"
	require.NoError(t, os.WriteFile(path, []byte(drafts), 0o600))

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--from", path, "--dry-run"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Parsed 1 tasks (dry run, nothing saved)")
	assert.Contains(t, buf.String(), "Ship the quarterly report.")
	assert.Equal(t, 0, store.SaveCount())
}

func TestAddCommand_DryRunWithoutFrom(t *testing.T) {
	// Setup
	container := newTestContainer(testutil.NewMockTaskStore())

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dry-run"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorContains(t, err, "--dry-run requires --from")
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestListCommand_RendersTable(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
		mustTask(t, "2026-03-09", "10:30", "l", "Water the plants"),
	)
	container := newTestContainer(store)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "|   1 | 2026-03-11 | 09:00 |")
	assert.Contains(t, out, "|   2 | 2026-03-09 | 10:30 |")
	assert.Contains(t, out, "Description")
}

func TestListCommand_EmptyListFails(t *testing.T) {
	// Setup
	container := newTestContainer(testutil.NewMockTaskStore())

	cmd := newListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyList)
}

// =============================================================================
// Show Command Tests
// =============================================================================

func TestShowCommand_RendersOneTask(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
		mustTask(t, "2026-03-09", "10:30", "l", "Water the plants"),
	)
	container := newTestContainer(store)

	cmd := newShowCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "|   2 | 2026-03-09 | 10:30 |")
	assert.NotContains(t, out, "2026-03-11")
}

func TestShowCommand_OutOfRange(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
	)
	container := newTestContainer(store)

	cmd := newShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"4"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestShowCommand_BadNumber(t *testing.T) {
	// Setup
	container := newTestContainer(testutil.NewMockTaskStore())

	cmd := newShowCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"two"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorContains(t, err, "invalid task number")
}

// =============================================================================
// Edit Command Tests
// =============================================================================

func TestEditCommand_ChangesDate(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
	)
	container := newTestContainer(store)

	cmd := newEditCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "--date", "2026-4-2"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Updated date of task 1 (due 2026-04-02 09:00)")

	task, err := store.List.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "2026-04-02", task.Date.String())
}

func TestEditCommand_ReplacesDescription(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Old line one", "Old line two"),
	)
	container := newTestContainer(store)

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--line", "New description"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	task, err := store.List.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"New description"}, task.Description)
}

func TestEditCommand_RequiresExactlyOneField(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
	)
	container := newTestContainer(store)

	tests := []struct {
		name string
		args []string
	}{
		{"no field flags", []string{"1"}},
		{"two field flags", []string{"1", "--date", "2026-04-02", "--time", "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newEditCommand(container)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			assert.ErrorContains(t, err, "exactly one of")
			assert.Equal(t, 0, store.SaveCount())
		})
	}
}

func TestEditCommand_InvalidValueKeepsTask(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
	)
	container := newTestContainer(store)

	cmd := newEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--time", "25:00"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
	assert.Equal(t, 0, store.SaveCount())

	task, geterr := store.List.Get(1)
	require.NoError(t, geterr)
	assert.Equal(t, "09:00", task.Time.String())
}

// =============================================================================
// Rm Command Tests
// =============================================================================

func TestRmCommand_WithYesFlag(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
		mustTask(t, "2026-03-12", "10:00", "l", "Water the plants"),
	)
	container := newTestContainer(store)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "--yes"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted task 1 (1 left)")
	assert.Equal(t, 1, store.List.Len())

	// The survivor moved up to position 1.
	task, geterr := store.List.Get(1)
	require.NoError(t, geterr)
	assert.Equal(t, "Water the plants", task.Summary())
}

func TestRmCommand_ConfirmationAccepted(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
	)
	container := newTestContainer(store)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("y\n"))
	cmd.SetArgs([]string{"1"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Delete task 1 (due 2026-03-11 09:00, Write the summary)? [y/N]:")
	assert.Equal(t, 0, store.List.Len())
}

func TestRmCommand_ConfirmationDeclined(t *testing.T) {
	// Setup
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-11", "09:00", "h", "Write the summary"),
	)
	container := newTestContainer(store)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetArgs([]string{"1"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Cancelled")
	assert.Equal(t, 1, store.List.Len())
	assert.Equal(t, 0, store.SaveCount())
}

func TestRmCommand_EmptyList(t *testing.T) {
	// Setup
	container := newTestContainer(testutil.NewMockTaskStore())

	cmd := newRmCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--yes"})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyList)
}

// =============================================================================
// Version Command Tests
// =============================================================================

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCommand("1.2.3")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "tasktab 1.2.3\n", buf.String())
}
