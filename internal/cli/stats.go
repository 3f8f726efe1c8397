package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/usecase"
)

// newStatsCommand creates the stats command summarizing the list.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize tasks by priority and due state",
		Long: `Print two summary tables: how many tasks exist per priority, and
how many are overdue, due today or still in time. Due states are
computed against the current clock, never read from the store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StatsUseCase().Execute(cmd.Context(), usecase.StatsInput{})
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// printStats renders the two summary tables. go-pretty disables its
// color codes on its own when the writer is not a terminal.
func printStats(w io.Writer, out *usecase.StatsOutput) {
	pt := table.NewWriter()
	pt.SetOutputMirror(w)
	pt.SetStyle(table.StyleDouble)
	pt.Style().Options.SeparateRows = false
	pt.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Priority"),
		text.FgGreen.Sprintf("Tasks"),
	})
	for _, p := range domain.AllPriorities() {
		pt.AppendRow(table.Row{p.Display(), out.ByPriority[p]})
	}
	pt.AppendFooter(table.Row{"Total", out.Total})
	pt.Render()

	dt := table.NewWriter()
	dt.SetOutputMirror(w)
	dt.SetStyle(table.StyleDouble)
	dt.Style().Options.SeparateRows = false
	dt.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Due"),
		text.FgGreen.Sprintf("Tasks"),
	})
	for _, s := range domain.AllDueStates() {
		dt.AppendRow(table.Row{dueStateCell(s), out.ByDueState[s]})
	}
	dt.Render()
}

// dueStateCell colors the due state label the same way the task table
// colors its due swatch.
func dueStateCell(s domain.DueState) string {
	switch s {
	case domain.DueOverdue:
		return text.FgHiRed.Sprintf("%s", s.Display())
	case domain.DueToday:
		return text.FgHiYellow.Sprintf("%s", s.Display())
	case domain.DueInTime:
		return text.FgHiGreen.Sprintf("%s", s.Display())
	default:
		return s.Display()
	}
}
