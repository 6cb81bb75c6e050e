package events

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const (
	EventBookingConfirmed     = "booking.confirmed"
	EventBookingPaymentFailed = "booking.payment_failed"

	envelopeVersion = 1
)

// Envelope сообщение в топике бронирований
type Envelope struct {
	Event      string      `json:"event"`
	Version    int         `json:"version"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       BookingData `json:"data"`
}

// BookingData данные о результате оплаты
type BookingData struct {
	DraftID      string   `json:"draftId"`
	OrderID      string   `json:"orderId"`
	PaymentID    string   `json:"paymentId,omitempty"`
	FacilityID   string   `json:"facilityId"`
	FacilityType string   `json:"facilityType"`
	Date         string   `json:"date"`
	TimeSlots    []string `json:"timeSlots"`
	Persons      int      `json:"persons"`
	Amount       int64    `json:"amount"`
	Currency     string   `json:"currency"`
	Reason       string   `json:"reason,omitempty"`
}

// FromAttempt собирает данные события из попытки оплаты
func FromAttempt(a *domain.CheckoutAttempt, paymentID, reason string) BookingData {
	return BookingData{
		DraftID:      a.DraftID.String(),
		OrderID:      a.OrderID,
		PaymentID:    paymentID,
		FacilityID:   a.FacilityID,
		FacilityType: string(a.Category),
		Date:         a.Date.Format(domain.DateFormat),
		TimeSlots:    a.TimeSlots,
		Persons:      a.Persons,
		Amount:       a.Amount,
		Currency:     a.Currency,
		Reason:       reason,
	}
}
