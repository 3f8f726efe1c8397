// Package tui provides the full-screen task browser.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeList    Mode = iota // Task list navigation
	ModeDetail              // Single task detail view
	ModeConfirm             // Delete confirmation dialog
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeDetail:
		return "detail"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}
