package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking held by the booking backend
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCanceled  BookingStatus = "canceled"
	StatusFailed    BookingStatus = "failed"
	StatusRefunded  BookingStatus = "refunded"
)

// ExistingBooking is a read-only booking fetched from the booking backend
type ExistingBooking struct {
	FacilityName      string
	FacilityType      Category
	Date              time.Time
	TimeSlots         []string // метки слотов в формате "6:00 AM - 7:00 AM"
	AdditionalPlayers int
	Price             int64
	Status            BookingStatus
}

// IsActive returns true if the booking still occupies its slots.
// Backend statuses are compared case-insensitively ("Confirmed" == "confirmed").
func (b *ExistingBooking) IsActive() bool {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(string(b.Status))))
	for _, inactive := range InactiveStatuses {
		if status == inactive {
			return false
		}
	}
	return true
}
