package domain

import (
	"fmt"
	"strings"
)

// Priority represents the urgency of a task. The value is the
// single-letter code used on input and in the store file.
type Priority string

const (
	PriorityCritical Priority = "c" // Critical
	PriorityHigh     Priority = "h" // High
	PriorityNormal   Priority = "n" // Normal
	PriorityLow      Priority = "l" // Low
)

// AllPriorities returns all valid priority values, most urgent first.
func AllPriorities() []Priority {
	return []Priority{
		PriorityCritical,
		PriorityHigh,
		PriorityNormal,
		PriorityLow,
	}
}

// ParsePriority parses a single-letter priority code, ignoring case.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q (want c, h, n or l)", ErrInvalidPriority, s)
	}
	return p, nil
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}
