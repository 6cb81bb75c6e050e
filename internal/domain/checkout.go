package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutStatus status of a local checkout attempt
type CheckoutStatus string

const (
	CheckoutPending   CheckoutStatus = "pending"
	CheckoutVerified  CheckoutStatus = "verified"
	CheckoutFailed    CheckoutStatus = "failed"
	CheckoutAbandoned CheckoutStatus = "abandoned"
)

// CheckoutAttempt is one submission of a draft to the booking backend
type CheckoutAttempt struct {
	ID            uuid.UUID
	DraftID       uuid.UUID
	DraftRevision int64 // ревизия черновика в состоянии submitted
	FacilityID    string
	Category      Category
	Date          time.Time
	TimeSlots     []string // метки в том виде, в котором ушли в заказ
	Persons       int
	DiscountCode  string
	OrderID       string
	Amount        int64
	Currency      string
	Status        CheckoutStatus
	FailureReason *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPending returns true while the attempt awaits payment verification
func (a *CheckoutAttempt) IsPending() bool {
	return a.Status == CheckoutPending
}
