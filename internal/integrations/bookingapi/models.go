package bookingapi

import "encoding/json"

// BookingsByDateResponse ответ GET /api/bookings/by-date
type BookingsByDateResponse struct {
	Bookings []Booking `json:"bookings"`
}

// Booking существующее бронирование
type Booking struct {
	FacilityName      string   `json:"facilityName"`
	FacilityType      string   `json:"facilityType"`
	Date              string   `json:"date"`
	TimeSlots         []string `json:"timeSlots"`
	AdditionalPlayers *int     `json:"additionalPlayers"`
	PersonsCount      *int     `json:"personsCount"` // старые бронирования бассейна
	Price             float64  `json:"price"`
	Status            string   `json:"status"`
}

// CreateOrderRequest тело POST /api/bookings/create-order
type CreateOrderRequest struct {
	FacilityName      string   `json:"facilityName"`
	FacilityType      string   `json:"facilityType"`
	Date              string   `json:"date"`
	TimeSlots         []string `json:"timeSlots"`
	AdditionalPlayers int      `json:"additionalPlayers"`
	BasePrice         int64    `json:"basePrice"`
	DiscountCode      string   `json:"discountCode,omitempty"`
}

// CreateOrderResponse заказ платежного шлюза
type CreateOrderResponse struct {
	RazorpayOrderID string `json:"razorpayOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"keyId"`
}

// VerifyPaymentRequest тело POST /api/bookings/verify-payment
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// VerifyPaymentResponse подтвержденное бронирование
type VerifyPaymentResponse struct {
	Message string          `json:"message"`
	Booking json.RawMessage `json:"booking"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e ErrorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
