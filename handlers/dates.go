// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strings"
	"time"
)

// CalendarLayout renders weekday, month, day and year, e.g. "Mon Jan 01 2024".
const CalendarLayout = "Mon Jan 02 2006"

// Accepted input layouts, tried in order. Values without a zone are UTC.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	CalendarLayout,
}

// ParseDate accepts ISO dates and timestamps as well as calendar strings.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// CalendarString drops the time of day, the day is taken in UTC.
func CalendarString(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
