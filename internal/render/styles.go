package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okanos/tasktab/internal/domain"
)

// Colors defines the default color palette for table output.
var Colors = struct {
	// Priority colors
	Critical lipgloss.Color
	High     lipgloss.Color
	Normal   lipgloss.Color
	Low      lipgloss.Color

	// Due state colors
	Overdue lipgloss.Color
	Today   lipgloss.Color
	InTime  lipgloss.Color

	// Chrome
	Header lipgloss.Color
}{
	Critical: lipgloss.Color("#D63031"), // Red
	High:     lipgloss.Color("#E17055"), // Orange
	Normal:   lipgloss.Color("#74B9FF"), // Light blue
	Low:      lipgloss.Color("#636E72"), // Gray

	Overdue: lipgloss.Color("#D63031"), // Red
	Today:   lipgloss.Color("#FDCB6E"), // Yellow
	InTime:  lipgloss.Color("#00B894"), // Green

	Header: lipgloss.Color("#A29BFE"), // Lavender
}

// Styles contains the lipgloss styles for table output.
type Styles struct {
	// Header row labels
	Header lipgloss.Style

	// Priority swatches
	Critical lipgloss.Style
	High     lipgloss.Style
	Normal   lipgloss.Style
	Low      lipgloss.Style

	// Due state swatches
	Overdue lipgloss.Style
	Today   lipgloss.Style
	InTime  lipgloss.Style
}

// DefaultStyles returns the default styles for table output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Header),

		Critical: lipgloss.NewStyle().
			Foreground(Colors.Critical),

		High: lipgloss.NewStyle().
			Foreground(Colors.High),

		Normal: lipgloss.NewStyle().
			Foreground(Colors.Normal),

		Low: lipgloss.NewStyle().
			Foreground(Colors.Low),

		Overdue: lipgloss.NewStyle().
			Foreground(Colors.Overdue),

		Today: lipgloss.NewStyle().
			Foreground(Colors.Today),

		InTime: lipgloss.NewStyle().
			Foreground(Colors.InTime),
	}
}

// PlainStyles returns styles that pass text through unmodified. Used
// for plain output and byte-exact assertions.
func PlainStyles() Styles {
	return Styles{}
}

// StylesFromConfig returns the default styles with the configured
// color overrides applied. Empty config values keep the built-in
// palette.
func StylesFromConfig(colors domain.ColorsConfig) Styles {
	s := DefaultStyles()
	if colors.Critical != "" {
		s.Critical = s.Critical.Foreground(lipgloss.Color(colors.Critical))
	}
	if colors.High != "" {
		s.High = s.High.Foreground(lipgloss.Color(colors.High))
	}
	if colors.Normal != "" {
		s.Normal = s.Normal.Foreground(lipgloss.Color(colors.Normal))
	}
	if colors.Low != "" {
		s.Low = s.Low.Foreground(lipgloss.Color(colors.Low))
	}
	if colors.Overdue != "" {
		s.Overdue = s.Overdue.Foreground(lipgloss.Color(colors.Overdue))
	}
	if colors.Today != "" {
		s.Today = s.Today.Foreground(lipgloss.Color(colors.Today))
	}
	if colors.InTime != "" {
		s.InTime = s.InTime.Foreground(lipgloss.Color(colors.InTime))
	}
	return s
}

// PriorityStyle returns the swatch style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return s.Critical
	case domain.PriorityHigh:
		return s.High
	case domain.PriorityNormal:
		return s.Normal
	case domain.PriorityLow:
		return s.Low
	default:
		return s.Normal
	}
}

// DueStyle returns the swatch style for a given due state.
func (s Styles) DueStyle(state domain.DueState) lipgloss.Style {
	switch state {
	case domain.DueOverdue:
		return s.Overdue
	case domain.DueToday:
		return s.Today
	case domain.DueInTime:
		return s.InTime
	default:
		return s.InTime
	}
}
