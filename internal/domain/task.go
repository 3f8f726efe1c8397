// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a single entry in the task list. All fields are validated on
// construction; a Task in memory is always well-formed.
type Task struct {
	Date        Date      `json:"date"`        // Due date
	Time        TimeOfDay `json:"time"`        // Due time of day
	Priority    Priority  `json:"priority"`    // Single-letter urgency code
	Description []string  `json:"description"` // Non-empty description lines
}

// NewTask parses the raw field inputs and builds a task. Each field
// failure is reported with its own error kind so callers can re-prompt
// for just that field.
func NewTask(date, timeOfDay, priority string, description []string) (*Task, error) {
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	desc, err := NormalizeDescription(description)
	if err != nil {
		return nil, err
	}

	return &Task{Date: d, Time: tod, Priority: p, Description: desc}, nil
}

// NormalizeDescription trims every line and drops the blank ones. At
// least one non-blank line must remain.
func NormalizeDescription(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil, ErrBlankDescription
	}
	return out, nil
}

// DueState classifies the task's date against the current day.
func (t *Task) DueState(now time.Time) DueState {
	return DueStateOf(t.Date, now)
}

// Summary returns the first description line, or "" for a task that
// slipped into the store without one.
func (t *Task) Summary() string {
	if len(t.Description) == 0 {
		return ""
	}
	return t.Description[0]
}

// Validate checks a task decoded from external data. Tasks built via
// NewTask are valid by construction.
func (t *Task) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, string(t.Priority))
	}
	if len(t.Description) == 0 {
		return ErrBlankDescription
	}
	for _, line := range t.Description {
		if strings.TrimSpace(line) == "" {
			return ErrBlankDescription
		}
	}
	return nil
}

// Field identifies a single editable task field.
type Field string

const (
	FieldDate        Field = "date"
	FieldTime        Field = "time"
	FieldPriority    Field = "priority"
	FieldDescription Field = "description"
)

// AllFields returns all editable fields in prompt order.
func AllFields() []Field {
	return []Field{FieldDate, FieldTime, FieldPriority, FieldDescription}
}

// ParseField parses a field name, ignoring case.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FieldDate, FieldTime, FieldPriority, FieldDescription:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want date, time, priority or description)", ErrUnknownField, s)
	}
}

// SetField replaces exactly one field of the task, running the value
// through the same validation as initial creation. For the description
// field the value is ignored and lines is used instead. All other
// fields keep their previous values.
func (t *Task) SetField(field Field, value string, lines []string) error {
	switch field {
	case FieldDate:
		d, err := ParseDate(value)
		if err != nil {
			return err
		}
		t.Date = d
	case FieldTime:
		tod, err := ParseTimeOfDay(value)
		if err != nil {
			return err
		}
		t.Time = tod
	case FieldPriority:
		p, err := ParsePriority(value)
		if err != nil {
			return err
		}
		t.Priority = p
	case FieldDescription:
		desc, err := NormalizeDescription(lines)
		if err != nil {
			return err
		}
		t.Description = desc
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}
