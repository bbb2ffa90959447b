package domain

import (
	"fmt"
	"time"
)

// ClockTime is a time of day expressed in minutes since midnight.
// It is the unit for wake/sleep times and schedule item boundaries.
type ClockTime int

const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: hour must be 00-23 and minute 00-59", s)
	}
	return ClockTime(h*60 + m), nil
}

// String formats the time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Hour returns the hour component (0-23).
func (c ClockTime) Hour() int { return int(c) / 60 }

// Minute returns the minute component (0-59).
func (c ClockTime) Minute() int { return int(c) % 60 }

// Valid reports whether the value falls inside a single calendar day.
func (c ClockTime) Valid() bool {
	return c >= 0 && c < MinutesPerDay
}

// At combines the clock time with the given calendar date, in the
// date's location.
func (c ClockTime) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}

// ClockOf extracts the ClockTime from an instant.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}
