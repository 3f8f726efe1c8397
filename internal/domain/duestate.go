package domain

import "time"

// DueState classifies a task's date against the current calendar day.
// It is derived at render time and never stored.
type DueState string

const (
	DueOverdue DueState = "overdue" // Date has passed
	DueToday   DueState = "today"   // Date is today
	DueInTime  DueState = "in_time" // Date is still ahead
)

// AllDueStates returns all due state values, most urgent first.
func AllDueStates() []DueState {
	return []DueState{DueOverdue, DueToday, DueInTime}
}

// DueStateOf classifies date against the calendar day of now. Only the
// date matters: a task due later today is DueToday regardless of its
// time field.
func DueStateOf(date Date, now time.Time) DueState {
	switch days := date.DaysUntil(now); {
	case days < 0:
		return DueOverdue
	case days == 0:
		return DueToday
	default:
		return DueInTime
	}
}

// Display returns a human-readable representation of the due state.
func (s DueState) Display() string {
	switch s {
	case DueOverdue:
		return "Overdue"
	case DueToday:
		return "Due today"
	case DueInTime:
		return "In time"
	default:
		return string(s)
	}
}
