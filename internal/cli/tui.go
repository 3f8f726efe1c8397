package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for the full-screen browser.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse tasks in a full-screen view",
		Long: `Launch the full-screen task browser.

The list view shows every task with its due date, time, priority and
due state. Enter opens a task, d deletes it after confirmation, r
reloads from disk, q quits. The view also reloads on its own when the
store file changes on disk.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the task browser on the alternate screen.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
