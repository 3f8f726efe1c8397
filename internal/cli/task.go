package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/render"
	"github.com/okanos/tasktab/internal/usecase"
)

// newAddCommand creates the add command for appending tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date     string
		Time     string
		Priority string
		Lines    []string
		From     string
		DryRun   bool
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new task",
		Long: `Append a new task to the list.

A task needs a due date, a due time, a priority (c/h/n/l) and at
least one description line. With --from, tasks are read from a draft
file instead: one YAML frontmatter block (date, time, priority) per
task, followed by its description lines.

Examples:
  # Add a single task
  tasktab add --date 2026-09-01 --time 09:30 --priority h --line "Ship the report"

  # Multi-line description
  tasktab add --date 2026-9-1 --time 9:30 --priority n \
    --line "Water the plants" --line "Check the soil first"

  # Import tasks from a draft file
  tasktab add --from drafts.md

  # Parse a draft file without saving anything
  tasktab add --from drafts.md --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return runImport(cmd, c, opts.From, opts.DryRun)
			}
			if opts.DryRun {
				return fmt.Errorf("--dry-run requires --from")
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Date:        opts.Date,
				Time:        opts.Time,
				Priority:    opts.Priority,
				Description: opts.Lines,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %d (due %s %s)\n",
				out.Position, out.Task.Date, out.Task.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Due time (HH:MM)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: c, h, n or l")
	cmd.Flags().StringArrayVar(&opts.Lines, "line", nil, "Description line (repeatable)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Read tasks from a draft file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Parse the draft file without saving")

	return cmd
}

// runImport reads a draft file and appends every task in it. A parse
// error in any block rejects the whole file.
func runImport(cmd *cobra.Command, c *app.Container, path string, dryRun bool) error {
	content, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("read draft file: %w", err)
	}

	out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintf(w, "Parsed %d tasks (dry run, nothing saved)\n", len(out.Tasks))
		for _, task := range out.Tasks {
			_, _ = fmt.Fprintf(w, "  %s %s %s %s\n",
				task.Date, task.Time, task.Priority.Display(), task.Summary())
		}
		return nil
	}

	_, _ = fmt.Fprintf(w, "Imported %d tasks (%d total)\n", len(out.Tasks), out.Total)
	return nil
}

// newListCommand creates the list command for rendering the table.
func newListCommand(c *app.Container) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Render the task table",
		Long: `Render every task as a fixed-width table.

Each task shows its position, due date, due time, a priority color
swatch, a due state swatch (green in time, yellow due today, red
overdue) and its description wrapped to the table width.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			styles := c.Styles
			if plain {
				styles = render.PlainStyles()
			}
			table, err := render.New(styles).List(out.Tasks, out.Now)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable color output")

	return cmd
}

// newShowCommand creates the show command for displaying one task.
func newShowCommand(c *app.Container) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{Position: pos})
			if err != nil {
				return err
			}

			styles := c.Styles
			if plain {
				styles = render.PlainStyles()
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), render.New(styles).One(out.Task, out.Position, out.Now))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable color output")

	return cmd
}

// newEditCommand creates the edit command for changing one task field.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date     string
		Time     string
		Priority string
		Lines    []string
	}

	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Change one field of a task",
		Long: `Change exactly one field of the task at the given position.

Pass exactly one of --date, --time, --priority or --line. Repeating
--line replaces the whole description. The new value goes through the
same validation as task creation; on failure nothing changes.

Examples:
  # Push a due date out
  tasktab edit 2 --date 2026-10-01

  # Replace the description
  tasktab edit 2 --line "Call the dentist" --line "Ask about Friday"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{Position: pos}
			changed := 0
			if cmd.Flags().Changed("date") {
				changed++
				input.Field, input.Value = domain.FieldDate, opts.Date
			}
			if cmd.Flags().Changed("time") {
				changed++
				input.Field, input.Value = domain.FieldTime, opts.Time
			}
			if cmd.Flags().Changed("priority") {
				changed++
				input.Field, input.Value = domain.FieldPriority, opts.Priority
			}
			if cmd.Flags().Changed("line") {
				changed++
				input.Field, input.Lines = domain.FieldDescription, opts.Lines
			}
			if changed != 1 {
				return fmt.Errorf("pass exactly one of --date, --time, --priority or --line")
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s of task %d (due %s %s)\n",
				input.Field, pos, out.Task.Date, out.Task.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "New due time (HH:MM)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority: c, h, n or l")
	cmd.Flags().StringArrayVar(&opts.Lines, "line", nil, "New description line (repeatable)")

	return cmd
}

// newRmCommand creates the rm command for deleting a task.
func newRmCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <number>",
		Short: "Delete a task",
		Long: `Delete the task at the given position.

Asks for confirmation unless --yes is passed. Positions after the
removed task shift down by one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			if !yes {
				show, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{Position: pos})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Delete task %d (due %s %s, %s)? [y/N]: ",
					pos, show.Task.Date, show.Task.Time, show.Task.Summary())
				if !confirm(cmd) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{Position: pos})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d (%d left)\n", pos, out.Remaining)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// newVersionCommand creates the version command.
func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tasktab version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tasktab %s\n", version)
		},
	}
}

// parsePosition parses a 1-based task position argument.
func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q", arg)
	}
	return pos, nil
}

// confirm reads one line from the command's input and reports whether
// it is an explicit yes.
func confirm(cmd *cobra.Command) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
