package domain

import (
	"fmt"
	"sort"
	"strings"
)

// slotLabelSeparator separates start and end in a slot label
const slotLabelSeparator = " - "

// TimeSlot is a half-open interval [Start, End) on a date
type TimeSlot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewTimeSlot creates a slot, end must be after start
func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if !end.IsAfter(start) {
		return TimeSlot{}, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidSlot, end, start)
	}
	return TimeSlot{Start: start, End: end}, nil
}

// ParseTimeSlot parses a label like "6:00 AM - 7:00 AM".
// An end at or before the start is treated as falling on the next day (e.g. "11:15 PM - 12:15 AM").
func ParseTimeSlot(label string) (TimeSlot, error) {
	parts := strings.Split(label, slotLabelSeparator)
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
	}

	if !end.IsAfter(start) {
		end = end.AddMinutes(MinutesPerDay)
	}

	return TimeSlot{Start: start, End: end}, nil
}

// Label renders the slot as "h:mm AM - h:mm AM"
func (s TimeSlot) Label() string {
	return s.Start.String() + slotLabelSeparator + s.End.String()
}

// String implements fmt.Stringer
func (s TimeSlot) String() string {
	return s.Label()
}

// DurationMinutes returns the slot length in minutes
func (s TimeSlot) DurationMinutes() int {
	return int(s.End - s.Start)
}

// Shift returns the slot moved by the given number of minutes
func (s TimeSlot) Shift(minutes int) TimeSlot {
	return TimeSlot{Start: s.Start.AddMinutes(minutes), End: s.End.AddMinutes(minutes)}
}

// SlotLabels renders slots as labels preserving order
func SlotLabels(slots []TimeSlot) []string {
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.Label())
	}
	return labels
}

// ParseTimeSlots parses a list of labels
func ParseTimeSlots(labels []string) ([]TimeSlot, error) {
	slots := make([]TimeSlot, 0, len(labels))
	for _, l := range labels {
		s, err := ParseTimeSlot(l)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// SortSlots returns a copy of slots ordered by start time
func SortSlots(slots []TimeSlot) []TimeSlot {
	sorted := make([]TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}
