package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// TimeOfDay is a wall-clock time with minute resolution.
type TimeOfDay struct {
	hour   int
	minute int
}

// ParseTimeOfDay validates a clock time in H:M form and normalizes it.
// Hours run 0-23 and minutes 0-59; 24:00 is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q (want HH:MM)", ErrInvalidTime, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not a clock time", ErrInvalidTime, s)
	}

	return TimeOfDay{hour: hour, minute: minute}, nil
}

// MustParseTimeOfDay parses a clock time and panics on failure. For
// tests only.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the time normalized to zero-padded HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
