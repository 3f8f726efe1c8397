// Package cli provides the command-line interface for tasktab.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/okanos/tasktab/internal/app"
)

// Command group IDs.
const (
	groupTasks = "tasks"
	groupStore = "store"
)

// NewRootCommand creates the root command with all subcommands registered.
// Running tasktab with no arguments starts the interactive session.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasktab",
		Short: "Keep a dated, prioritized task list in a local JSON file",
		Long: `tasktab keeps a small list of dated, prioritized tasks in a local
JSON file and renders them as a fixed-width table with color swatches
for priority and due state.

Run it with no arguments for the interactive session: a prompt loop
with the actions add, print, edit, delete and end. The subcommands
expose the same operations for scripted use.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (main handles that)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewSession(c, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Task Commands:"},
		&cobra.Group{ID: groupStore, Title: "Store Commands:"},
	)

	sessionCmd := newSessionCommand(c)
	sessionCmd.GroupID = groupTasks

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTasks

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTasks

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTasks

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTasks

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTasks

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupTasks

	validateCmd := newValidateCommand(c)
	validateCmd.GroupID = groupStore

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupStore

	rootCmd.AddCommand(
		sessionCmd,
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		rmCmd,
		statsCmd,
		validateCmd,
		tuiCmd,
		newVersionCommand(version),
	)

	return rootCmd
}
