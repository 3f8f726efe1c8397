package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/testutil"
)

func TestStatsCommand_CountsByPriorityAndDueState(t *testing.T) {
	// Setup: clock is pinned to 2026-03-10, so one task is overdue,
	// one is due today and two are still ahead.
	store := testutil.NewMockTaskStore(
		mustTask(t, "2026-03-09", "09:00", "c", "Overdue critical"),
		mustTask(t, "2026-03-10", "10:00", "h", "Due today"),
		mustTask(t, "2026-03-11", "11:00", "h", "Tomorrow"),
		mustTask(t, "2026-04-01", "12:00", "l", "Next month"),
	)
	container := newTestContainer(store)

	cmd := newStatsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.NoError(t, err)
	out := buf.String()

	// go-pretty upper-cases headers and footers.
	assert.Contains(t, out, "PRIORITY")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "Critical")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "Overdue")
	assert.Contains(t, out, "Due today")
	assert.Contains(t, out, "In time")
}

func TestStatsCommand_EmptyListFails(t *testing.T) {
	// Setup
	container := newTestContainer(testutil.NewMockTaskStore())

	cmd := newStatsCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	// Execute
	err := cmd.Execute()

	// Assert
	assert.ErrorIs(t, err, domain.ErrEmptyList)
}
