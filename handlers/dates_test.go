// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Time
	}{
		{"2024-01-31", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"2024-1-5", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{" 2024-02-29 ", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2024-01-31T10:15:00Z", time.Date(2024, 1, 31, 10, 15, 0, 0, time.UTC)},
		{"2024-01-31T23:30:00-02:00", time.Date(2024, 2, 1, 1, 30, 0, 0, time.UTC)},
		{"2024-01-31T10:15:00", time.Date(2024, 1, 31, 10, 15, 0, 0, time.UTC)},
		{"2024-01-31T10:15", time.Date(2024, 1, 31, 10, 15, 0, 0, time.UTC)},
		{"Wed Jan 31 2024", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %v, got %v", tc.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2024-02-30", "31/01/2024", "2024-13-01"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.Error(t, err)
		})
	}
}

func TestCalendarString(t *testing.T) {
	assert.Equal(t, "Mon Jan 01 1990", CalendarString(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Sat Feb 29 2020", CalendarString(time.Date(2020, 2, 29, 23, 59, 59, 0, time.UTC)))

	// the day is the UTC day
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "Tue Jan 02 2024", CalendarString(time.Date(2024, 1, 1, 22, 0, 0, 0, est)))
}

func TestCalendarString_RoundTrip(t *testing.T) {
	day := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

	parsed, err := ParseDate(CalendarString(day))
	require.NoError(t, err)
	assert.True(t, day.Equal(parsed))
}
