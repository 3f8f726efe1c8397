package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okanos/tasktab/internal/domain"
)

// Colors defines the color palette for the task browser.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color

	// Priority colors
	Critical lipgloss.Color
	High     lipgloss.Color
	Normal   lipgloss.Color
	Low      lipgloss.Color

	// Due state colors
	Overdue lipgloss.Color
	Today   lipgloss.Color
	InTime  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red

	Critical: lipgloss.Color("#D63031"), // Red
	High:     lipgloss.Color("#E17055"), // Orange
	Normal:   lipgloss.Color("#74B9FF"), // Light blue
	Low:      lipgloss.Color("#636E72"), // Gray

	Overdue: lipgloss.Color("#D63031"), // Red
	Today:   lipgloss.Color("#FDCB6E"), // Yellow
	InTime:  lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the task browser.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Task list rows
	Position         lipgloss.Style
	RowDate          lipgloss.Style
	RowSummary       lipgloss.Style
	RowSelected      lipgloss.Style
	SelectionCursor  lipgloss.Style
	ContinuationLine lipgloss.Style

	// Priority badges
	PriorityCritical lipgloss.Style
	PriorityHigh     lipgloss.Style
	PriorityNormal   lipgloss.Style
	PriorityLow      lipgloss.Style

	// Due state badges
	DueOverdue lipgloss.Style
	DueToday   lipgloss.Style
	DueInTime  lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style

	// Dialogs and feedback
	Dialog       lipgloss.Style
	DialogPrompt lipgloss.Style
	ErrorMsg     lipgloss.Style
	EmptyState   lipgloss.Style
	Footer       lipgloss.Style
}

// DefaultStyles returns the default styles for the task browser.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Position: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		RowDate: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B2BEC3")),

		RowSummary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DFE6E9")),

		RowSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),

		SelectionCursor: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		ContinuationLine: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		PriorityCritical: lipgloss.NewStyle().Foreground(Colors.Critical),
		PriorityHigh:     lipgloss.NewStyle().Foreground(Colors.High),
		PriorityNormal:   lipgloss.NewStyle().Foreground(Colors.Normal),
		PriorityLow:      lipgloss.NewStyle().Foreground(Colors.Low),

		DueOverdue: lipgloss.NewStyle().Foreground(Colors.Overdue),
		DueToday:   lipgloss.NewStyle().Foreground(Colors.Today),
		DueInTime:  lipgloss.NewStyle().Foreground(Colors.InTime),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),

		DetailValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DFE6E9")),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 2),

		DialogPrompt: lipgloss.NewStyle().
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// PriorityStyle returns the badge style for a priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return s.PriorityCritical
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityNormal:
		return s.PriorityNormal
	case domain.PriorityLow:
		return s.PriorityLow
	default:
		return s.PriorityNormal
	}
}

// DueStyle returns the badge style for a due state.
func (s Styles) DueStyle(d domain.DueState) lipgloss.Style {
	switch d {
	case domain.DueOverdue:
		return s.DueOverdue
	case domain.DueToday:
		return s.DueToday
	case domain.DueInTime:
		return s.DueInTime
	default:
		return s.DueInTime
	}
}
