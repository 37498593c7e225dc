package domain

import "time"

// DateLayout is the calendar-day format used at every storage boundary.
// Dates never carry a time component; all arithmetic happens at midnight UTC
// so time-of-day drift cannot introduce off-by-one errors.
const DateLayout = "2006-01-02"

// Midnight truncates t to 00:00 UTC on the same calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns t normalized to midnight plus the given number of days.
// days may be negative.
func AddDays(t time.Time, days int) time.Time {
	return Midnight(t).AddDate(0, 0, days)
}

// DaysBetween returns the whole-day distance from a to b. Negative when b is
// before a.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}

// CoalesceDate returns the first non-nil date, normalized to midnight.
// Returns nil when every candidate is nil.
func CoalesceDate(dates ...*time.Time) *time.Time {
	for _, d := range dates {
		if d != nil {
			m := Midnight(*d)
			return &m
		}
	}
	return nil
}

// MinDate returns the earlier of a and b, tolerating nil on either side.
func MinDate(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Before(*a) {
		return b
	}
	return a
}

// MaxDate returns the later of a and b, tolerating nil on either side.
func MaxDate(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.After(*a) {
		return b
	}
	return a
}
