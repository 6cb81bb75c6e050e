package domain

import (
	"fmt"
	"time"
)

// ParseDate parses "YYYY-MM-DD" as midnight in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected %s: %w", DateFormat, err)
	}
	return d, nil
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что два времени относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateBefore returns true if the calendar day of a is before the calendar day of b
func DateBefore(a, b time.Time) bool {
	return DateOnly(a).Before(DateOnly(b.In(a.Location())))
}

// DateIn re-anchors the calendar day of t at midnight in loc
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
