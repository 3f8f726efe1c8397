package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/domain"
	"github.com/okanos/tasktab/internal/render"
	"github.com/okanos/tasktab/internal/usecase"
)

// Feedback styles for the interactive session. fatih/color drops the
// escape codes automatically when the output is not a terminal.
var (
	errorText   = color.New(color.FgRed).SprintFunc()
	successText = color.New(color.FgGreen).SprintFunc()
	headerText  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// newSessionCommand creates the session command. It is the same loop
// the bare tasktab invocation runs; the explicit command exists so the
// session stays reachable when muscle memory types a subcommand.
func newSessionCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start the interactive prompt loop",
		Long: `Start the interactive session: a prompt loop that reads one action
per cycle. Actions are matched case-insensitively.

  add     prompt for date, time, priority and description, then append
  print   render the full task table
  edit    pick a task, pick a field, enter a new value
  delete  pick a task and remove it
  end     save and leave the session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewSession(c, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}

// parseAction maps one input token to a session action. Matching is
// case-insensitive; surrounding whitespace is ignored.
func parseAction(token string) (string, error) {
	action := strings.ToLower(strings.TrimSpace(token))
	switch action {
	case "add", "print", "edit", "delete", "end", "":
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q (use add, print, edit, delete or end)", domain.ErrUnknownAction, strings.TrimSpace(token))
	}
}

// Session is the interactive prompt loop. Each cycle reads one action
// token; recoverable input errors re-issue the responsible prompt,
// while an empty list on edit or delete aborts the whole cycle.
type Session struct {
	c        *app.Container
	scanner  *bufio.Scanner
	out      io.Writer
	renderer *render.Renderer
}

// NewSession creates a session reading from in and writing to out.
func NewSession(c *app.Container, in io.Reader, out io.Writer) *Session {
	return &Session{
		c:        c,
		scanner:  bufio.NewScanner(in),
		out:      out,
		renderer: render.New(c.Styles),
	}
}

// Run executes prompt cycles until the user ends the session or input
// runs out. Both paths persist the list one final time.
func (s *Session) Run(ctx context.Context) error {
	if s.c.Logger != nil {
		s.c.Logger.Info("session", "interactive session started")
	}
	s.printf("%s\n", headerText("tasktab — actions: add, print, edit, delete, end"))

	for {
		line, ok := s.prompt("action> ")
		if !ok {
			// EOF counts as end so a piped script never loses data.
			return s.finish()
		}

		action, err := parseAction(line)
		if err != nil {
			s.errorf("%v", err)
			continue
		}

		switch action {
		case "add":
			s.runAdd(ctx)
		case "print":
			s.runPrint(ctx)
		case "edit":
			s.runEdit(ctx)
		case "delete":
			s.runDelete(ctx)
		case "end":
			return s.finish()
		case "":
			// A bare enter re-prompts silently.
		}
	}
}

// finish persists the list one final time, even when nothing changed.
// Mutating actions already checkpoint after every change, so this
// mostly guarantees the store file exists after a session that only
// browsed.
func (s *Session) finish() error {
	list, err := s.c.Store.Load()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if err := s.c.Store.Save(list); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if s.c.Logger != nil {
		s.c.Logger.Info("session", fmt.Sprintf("interactive session ended with %d tasks", list.Len()))
	}
	s.printf("%s\n", successText("saved, bye"))
	return nil
}

// runAdd collects the four task fields and appends the task. Each
// field prompt repeats until its value parses.
func (s *Session) runAdd(ctx context.Context) {
	date, ok := s.promptValid("due date (YYYY-MM-DD)> ", func(v string) error {
		_, err := domain.ParseDate(v)
		return err
	})
	if !ok {
		return
	}
	timeOfDay, ok := s.promptValid("due time (HH:MM)> ", func(v string) error {
		_, err := domain.ParseTimeOfDay(v)
		return err
	})
	if !ok {
		return
	}
	priority, ok := s.promptValid("priority (c/h/n/l)> ", func(v string) error {
		_, err := domain.ParsePriority(v)
		return err
	})
	if !ok {
		return
	}
	lines, ok := s.promptDescription()
	if !ok {
		return
	}

	out, err := s.c.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{
		Date:        date,
		Time:        timeOfDay,
		Priority:    priority,
		Description: lines,
	})
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.successf("added task %d", out.Position)
}

// runPrint renders the full table. An empty list is reported as an
// error message and the loop continues.
func (s *Session) runPrint(ctx context.Context) {
	out, err := s.c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
	if err != nil {
		s.errorf("%v", err)
		return
	}
	table, err := s.renderer.List(out.Tasks, out.Now)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.printf("%s", table)
}

// runEdit picks a task, picks a field and replaces its value. An
// invalid value re-prompts for the value only; the task and field
// stay chosen.
func (s *Session) runEdit(ctx context.Context) {
	pos, ok := s.promptPosition(ctx)
	if !ok {
		return
	}
	field, ok := s.promptField()
	if !ok {
		return
	}

	for {
		input := usecase.EditTaskInput{Position: pos, Field: field}
		if field == domain.FieldDescription {
			lines, ok := s.promptDescription()
			if !ok {
				return
			}
			input.Lines = lines
		} else {
			value, ok := s.prompt(fmt.Sprintf("new %s> ", field))
			if !ok {
				return
			}
			input.Value = value
		}

		_, err := s.c.EditTaskUseCase().Execute(ctx, input)
		switch {
		case err == nil:
			s.successf("updated %s of task %d", field, pos)
			return
		case errors.Is(err, domain.ErrEmptyList), errors.Is(err, domain.ErrIndexOutOfRange):
			// The store changed between prompts; the position is
			// no longer trustworthy, so abort the cycle.
			s.errorf("%v", err)
			return
		default:
			s.errorf("%v", err)
		}
	}
}

// runDelete picks a task and removes it.
func (s *Session) runDelete(ctx context.Context) {
	pos, ok := s.promptPosition(ctx)
	if !ok {
		return
	}
	out, err := s.c.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{Position: pos})
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.successf("deleted task %d, %d left", pos, out.Remaining)
}

// promptPosition shows the current table and asks for a 1-based task
// position. An empty list aborts the cycle (ok false); a non-numeric
// or out-of-range answer re-prompts.
func (s *Session) promptPosition(ctx context.Context) (int, bool) {
	listOut, err := s.c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
	if err != nil {
		// Empty list: there is no position to ask for.
		s.errorf("%v", err)
		return 0, false
	}
	if table, err := s.renderer.List(listOut.Tasks, listOut.Now); err == nil {
		s.printf("%s", table)
	}

	for {
		line, ok := s.prompt("task number> ")
		if !ok {
			return 0, false
		}
		pos, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.errorf("not a number: %q", strings.TrimSpace(line))
			continue
		}
		if pos < 1 || pos > listOut.Tasks.Len() {
			s.errorf("%v", domain.ErrIndexOutOfRange)
			continue
		}
		return pos, true
	}
}

// promptField asks which task field to edit until the answer parses.
func (s *Session) promptField() (domain.Field, bool) {
	for {
		line, ok := s.prompt("field (date, time, priority, description)> ")
		if !ok {
			return "", false
		}
		field, err := domain.ParseField(line)
		if err != nil {
			s.errorf("%v", err)
			continue
		}
		return field, true
	}
}

// promptDescription reads description lines until a blank line. It
// re-prompts from scratch while no non-blank line was entered.
func (s *Session) promptDescription() ([]string, bool) {
	for {
		s.printf("description (finish with an empty line):\n")
		var lines []string
		for {
			line, ok := s.prompt("| ")
			if !ok {
				return nil, false
			}
			if strings.TrimSpace(line) == "" {
				break
			}
			lines = append(lines, line)
		}
		if _, err := domain.NormalizeDescription(lines); err != nil {
			s.errorf("%v", err)
			continue
		}
		return lines, true
	}
}

// promptValid re-prompts until parse accepts the input. ok is false
// once input runs out.
func (s *Session) promptValid(label string, parse func(string) error) (string, bool) {
	for {
		line, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		if err := parse(line); err != nil {
			s.errorf("%v", err)
			continue
		}
		return line, true
	}
}

// prompt prints the label and reads one line. ok is false at EOF.
func (s *Session) prompt(label string) (string, bool) {
	s.printf("%s", label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) errorf(format string, args ...any) {
	s.printf("%s\n", errorText(fmt.Sprintf(format, args...)))
}

func (s *Session) successf(format string, args ...any) {
	s.printf("%s\n", successText(fmt.Sprintf(format, args...)))
}
