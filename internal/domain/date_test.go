package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "already normalized", input: "2024-01-15", want: "2024-01-15"},
		{name: "unpadded month and day", input: "2024-1-5", want: "2024-01-05"},
		{name: "short year", input: "987-6-1", want: "0987-06-01"},
		{name: "surrounding whitespace", input: " 2024-01-15 ", want: "2024-01-15"},
		{name: "leap day on leap year", input: "2024-02-29", want: "2024-02-29"},
		{name: "leap day on common year", input: "2023-02-29", wantErr: true},
		{name: "month thirteen", input: "2024-13-01", wantErr: true},
		{name: "day zero", input: "2024-01-0", wantErr: true},
		{name: "february thirtieth", input: "2024-2-30", wantErr: true},
		{name: "wrong separator", input: "2024/01/15", wantErr: true},
		{name: "missing component", input: "2024-01", wantErr: true},
		{name: "five digit year", input: "20240-01-15", wantErr: true},
		{name: "trailing garbage", input: "2024-01-15x", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDate_RoundTripStable(t *testing.T) {
	// Normalized output must parse back to the same value.
	first, err := ParseDate("2026-3-7")
	require.NoError(t, err)

	second, err := ParseDate(first.String())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestDate_DaysUntil(t *testing.T) {
	now := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want int
	}{
		{name: "yesterday", date: "2024-01-14", want: -1},
		{name: "today", date: "2024-01-15", want: 0},
		{name: "tomorrow", date: "2024-01-16", want: 1},
		{name: "across month boundary", date: "2024-02-01", want: 17},
		{name: "far past", date: "2023-01-15", want: -365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustParseDate(tt.date)
			assert.Equal(t, tt.want, d.DaysUntil(now))
		})
	}
}

func TestDate_DaysUntil_IgnoresTimeOfDay(t *testing.T) {
	d := MustParseDate("2024-01-15")

	morning := time.Date(2024, 1, 15, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 0, d.DaysUntil(morning))
	assert.Equal(t, 0, d.DaysUntil(evening))
}

func TestDate_TextMarshaling(t *testing.T) {
	d := MustParseDate("2026-9-2")

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", string(text))

	var back Date
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)

	var invalid Date
	err = invalid.UnmarshalText([]byte("2026-02-30"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	assert.True(t, zero.IsZero())
	assert.False(t, MustParseDate("2024-01-15").IsZero())
}
