package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRe matches the accepted input shape. Zero padding is optional on
// input; output is always normalized.
var dateRe = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})-(\d{1,2})$`)

// Date is a calendar date without a time component.
// Fields are ordered to minimize memory padding.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ParseDate validates a date in Y-M-D form and normalizes it.
// The components may omit zero padding, but the date must exist on the
// calendar: 2024-2-30 is rejected even though it matches the shape.
func ParseDate(s string) (Date, error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// time.Date silently normalizes overflow (Feb 30 becomes Mar 1), so
	// a changed component after construction means the input was not a
	// real calendar date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, s)
	}

	return Date{year: year, month: time.Month(month), day: day}, nil
}

// MustParseDate parses a date and panics on failure. For tests and
// compile-time constants only.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date normalized to zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the signed whole-day distance from now's calendar
// day to the date. Negative means the date has passed.
func (d Date) DaysUntil(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Time().Sub(today).Hours() / 24)
}

// IsZero reports whether the date is the zero value. ParseDate never
// produces a zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
