package checkout

import (
	checkoutUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/checkout"
)

// CheckoutResponse данные для открытия окна оплаты
type CheckoutResponse struct {
	AttemptID       string   `json:"attemptId"`
	RazorpayOrderID string   `json:"razorpayOrderId"`
	Amount          int64    `json:"amount"`
	Currency        string   `json:"currency"`
	KeyID           string   `json:"keyId"`
	TimeSlots       []string `json:"timeSlots"`
	BaseAmount      int64    `json:"baseAmount"`
	DiscountAmount  int64    `json:"discountAmount"`
	FinalAmount     int64    `json:"finalAmount"`
}

func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	return &CheckoutResponse{
		AttemptID:       resp.AttemptID.String(),
		RazorpayOrderID: resp.OrderID,
		Amount:          resp.Amount,
		Currency:        resp.Currency,
		KeyID:           resp.KeyID,
		TimeSlots:       resp.TimeSlots,
		BaseAmount:      resp.BaseAmount,
		DiscountAmount:  resp.DiscountAmount,
		FinalAmount:     resp.FinalAmount,
	}
}
