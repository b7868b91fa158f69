// Package time contains calendar date helpers
package time

import "time"

// DateLayout is the wire format for calendar dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// DateOnly drops the clock part of t and pins the calendar date to UTC so
// day arithmetic is never skewed by DST transitions
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date as seen from loc (nil means time.Local)
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return DateOnly(now.In(loc))
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// secondsPerDay is exact between two UTC midnights
const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the whole days from a to b (negative when b is before a).
// It works on Unix seconds since time.Duration tops out near 292 years
func DaysBetween(a, b time.Time) int {
	return int((DateOnly(b).Unix() - DateOnly(a).Unix()) / secondsPerDay)
}

// AddDays moves t by n calendar days
func AddDays(t time.Time, n int) time.Time { return DateOnly(t).AddDate(0, 0, n) }
