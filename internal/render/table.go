// Package render formats tasks as fixed-width bordered tables.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/okanos/tasktab/internal/domain"
)

// Column content widths. Every cell is additionally padded with one
// space on each side of its separator.
const (
	IndexWidth       = 3
	DateWidth        = 10
	TimeWidth        = 5
	SwatchWidth      = 1
	DescriptionWidth = 44
)

// swatch fills the one-cell priority and due state color columns.
const swatch = "█"

// Renderer formats tasks as table lines. The zero styles render
// without color; see DefaultStyles and StylesFromConfig.
type Renderer struct {
	styles Styles
}

// New creates a Renderer using the given styles.
func New(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// List renders the whole collection: header block, every task in
// insertion order, and a trailing blank line. Rendering an empty list
// is a structural error, distinct from a valid empty render.
func (r *Renderer) List(list *domain.TaskList, now time.Time) (string, error) {
	if list.IsEmpty() {
		return "", domain.ErrEmptyList
	}

	lines := r.HeaderLines()
	for i, task := range list.Tasks() {
		lines = append(lines, r.Task(task, i+1, now)...)
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n") + "\n", nil
}

// One renders the header block plus a single task at its position.
func (r *Renderer) One(task *domain.Task, pos int, now time.Time) string {
	lines := append(r.HeaderLines(), r.Task(task, pos, now)...)
	return strings.Join(lines, "\n") + "\n"
}

// HeaderLines returns the table header block: rule, label row, rule.
func (r *Renderer) HeaderLines() []string {
	head := fmt.Sprintf("| %s | %s | %s | %s | %s | %s |",
		r.styles.Header.Render(fmt.Sprintf("%*s", IndexWidth, "No.")),
		r.styles.Header.Render(fmt.Sprintf("%-*s", DateWidth, "Date")),
		r.styles.Header.Render(fmt.Sprintf("%-*s", TimeWidth, "Time")),
		r.styles.Header.Render("P"),
		r.styles.Header.Render("D"),
		r.styles.Header.Render(fmt.Sprintf("%-*s", DescriptionWidth, "Description")),
	)
	return []string{Rule(), head, Rule()}
}

// Task renders a single task as its table rows followed by the rule
// line that closes it. The first row carries index, date, time and the
// two color swatches; wrapped description chunks continue on rows with
// blank cells. pos is the 1-based position shown to the user.
func (r *Renderer) Task(task *domain.Task, pos int, now time.Time) []string {
	prio := r.styles.PriorityStyle(task.Priority).Render(swatch)
	due := r.styles.DueStyle(task.DueState(now)).Render(swatch)

	// Each original line is chunked on its own; chunks never merge
	// across lines.
	var chunks []string
	for _, line := range task.Description {
		chunks = append(chunks, Chunk(line, DescriptionWidth)...)
	}
	if len(chunks) == 0 {
		// A task that slipped into the store without description
		// lines still occupies one row.
		chunks = Chunk("", DescriptionWidth)
	}

	rows := make([]string, 0, len(chunks)+1)
	rows = append(rows, r.row(strconv.Itoa(pos), task.Date.String(), task.Time.String(), prio, due, chunks[0]))
	for _, chunk := range chunks[1:] {
		rows = append(rows, r.row("", "", "", " ", " ", chunk))
	}
	rows = append(rows, Rule())

	return rows
}

// row joins pre-rendered swatch cells and plain text cells into one
// table line. The swatch cells arrive already one cell wide (possibly
// wrapped in color codes), so they are not padded here.
func (r *Renderer) row(index, date, tod, prio, due, desc string) string {
	return fmt.Sprintf("| %*s | %-*s | %-*s | %s | %s | %s |",
		IndexWidth, index,
		DateWidth, date,
		TimeWidth, tod,
		prio,
		due,
		desc,
	)
}

// Rule returns the horizontal rule line matching the column layout.
func Rule() string {
	cells := []int{IndexWidth, DateWidth, TimeWidth, SwatchWidth, SwatchWidth, DescriptionWidth}
	parts := make([]string, 0, len(cells))
	for _, w := range cells {
		parts = append(parts, strings.Repeat("-", w+2))
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// Chunk splits s into display-width slices of the given width, padding
// the final slice with spaces to exactly that width. A string of
// length L yields ceil(L/width) chunks and never an empty trailing
// chunk; even an empty string yields one all-space chunk so every line
// occupies at least one table row. Widths are measured in terminal
// cells, so wide runes count double.
func Chunk(s string, width int) []string {
	var chunks []string
	var b strings.Builder
	w := 0

	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			chunks = append(chunks, padCell(b.String(), width))
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	chunks = append(chunks, padCell(b.String(), width))

	return chunks
}

// padCell right-pads s with spaces to the given display width.
func padCell(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
