package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/okanos/tasktab/internal/domain"
)

// badge marks the priority and due state columns in the list rows.
const badge = "●"

type taskItem struct {
	task     *domain.Task
	now      time.Time
	position int
}

func (t taskItem) FilterValue() string {
	return strings.Join(t.task.Description, " ")
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	cursor := " "
	if selected {
		cursor = ">"
	}

	position := fmt.Sprintf("%3d", ti.position)
	prio := d.styles.PriorityStyle(task.Priority).Render(badge)
	due := d.styles.DueStyle(task.DueState(ti.now)).Render(badge)

	// Fixed prefix: cursor, position, date, time, two badges and gaps.
	prefixWidth := 32
	listWidth := m.Width()
	maxSummary := listWidth - prefixWidth - 2
	if maxSummary < 10 {
		maxSummary = 10
	}

	summary := task.Summary()
	if runewidth.StringWidth(summary) > maxSummary {
		summary = runewidth.Truncate(summary, maxSummary-3, "...")
	}

	summaryStyle := d.styles.RowSummary
	if selected {
		summaryStyle = d.styles.RowSelected
	}

	line := "  " + d.styles.SelectionCursor.Render(cursor) + " " +
		d.styles.Position.Render(position) + "  " +
		d.styles.RowDate.Render(task.Date.String()+" "+task.Time.String()) + "  " +
		prio + " " + due + "  " +
		summaryStyle.Render(summary)
	_, _ = fmt.Fprintln(w, line)

	// Second row: continuation of the description, if any.
	continuation := ""
	if len(task.Description) > 1 {
		continuation = strings.Join(task.Description[1:], " ")
		if runewidth.StringWidth(continuation) > maxSummary {
			continuation = runewidth.Truncate(continuation, maxSummary-3, "...")
		}
	}
	_, _ = fmt.Fprint(w, strings.Repeat(" ", prefixWidth)+d.styles.ContinuationLine.Render(continuation))
}
