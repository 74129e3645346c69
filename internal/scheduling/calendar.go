// Package scheduling holds the pure rules of the facility scheduling engine:
// which duties are due, per-day completion, reservation lifecycle and
// occupancy, and the cleaning duties derived from completed reservations.
// Nothing in this package performs I/O.
package scheduling

import (
	"fmt"
	"time"

	apperrors "condo-ops-backend/internal/errors"
)

// Layouts of the calendar strings exchanged with the store
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	MonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD calendar day as midnight UTC
func ParseDate(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateKey, key)
	}
	return t, nil
}

// FormatDate renders the calendar day of t in its own location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateKeyAt returns the calendar day an instant falls on in loc
func DateKeyAt(instant time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return instant.In(loc).Format(DateLayout)
}

// AddDays moves a calendar day by n days using calendar arithmetic
func AddDays(key string, n int) (string, error) {
	t, err := ParseDate(key)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// NextDay returns the calendar day after key
func NextDay(key string) (string, error) {
	return AddDays(key, 1)
}

// ValidClock reports whether s is a 24h HH:MM wall-clock time
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// ClockMinutes converts HH:MM to minutes after midnight
func ClockMinutes(s string) (int, error) {
	if !ValidClock(s) {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidClockTime, s)
	}
	t, _ := time.Parse(ClockLayout, s)
	return t.Hour()*60 + t.Minute(), nil
}

// At combines a calendar day and a wall-clock time into an instant in loc
func At(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	mins, err := ClockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), mins/60, mins%60, 0, 0, loc), nil
}

// ValidYearMonth reports whether s is a YYYY-MM month
func ValidYearMonth(s string) bool {
	if len(s) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// MonthOf returns the YYYY-MM month of a calendar day
func MonthOf(key string) string {
	if len(key) < len(MonthLayout) {
		return ""
	}
	return key[:len(MonthLayout)]
}

// Last12Months lists the current month and the eleven before it, newest first
func Last12Months(now time.Time, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	months := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		months = append(months, first.AddDate(0, -i, 0).Format(MonthLayout))
	}
	return months
}
