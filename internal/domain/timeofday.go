package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay number of minutes in a calendar day
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time in minutes since midnight.
// Values at or past MinutesPerDay are allowed for interval ends (24:00).
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from an hour and a minute
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// TimeOfDayFromTime extracts the wall-clock part of t
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// ParseTimeOfDay parses the display format "h:mm AM" / "hh:mm PM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	clock, period := parts[0], strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hm := strings.Split(clock, ":")
	if len(hm) != 2 || len(hm[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// 12 AM = 0 часов, 12 PM = 12 часов
	if hours == 12 {
		hours = 0
	}
	if period == "PM" {
		hours += 12
	}

	return NewTimeOfDay(hours, minutes), nil
}

// Hour returns the hour component (0-23, wrapped past midnight)
func (t TimeOfDay) Hour() int {
	return (t.normalized() / 60) % 24
}

// Minute returns the minute component
func (t TimeOfDay) Minute() int {
	return t.normalized() % 60
}

// Minutes returns the raw minutes since midnight
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// AddMinutes returns t shifted by m minutes
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter returns true if t is strictly later than other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// String renders t as "h:mm AM/PM"
func (t TimeOfDay) String() string {
	h := t.Hour()
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), period)
}

func (t TimeOfDay) normalized() int {
	m := int(t) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}
