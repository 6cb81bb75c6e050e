package verify_payment

import (
	"github.com/google/uuid"

	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
	verifyPayment "github.com/m04kA/SMC-VenueBooking/internal/usecase/verify_payment"
)

// VerifyPaymentRequest данные, которые вернул платежный виджет
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}

// VerifyPaymentResponse результат подтверждения бронирования
type VerifyPaymentResponse struct {
	Message         string                     `json:"message"`
	RazorpayOrderID string                     `json:"razorpayOrderId"`
	Draft           *draftModels.DraftResponse `json:"draft,omitempty"`
}

func (r *VerifyPaymentRequest) ToUseCaseRequest(draftID uuid.UUID) *verifyPayment.Request {
	return &verifyPayment.Request{
		DraftID:   draftID,
		OrderID:   r.RazorpayOrderID,
		PaymentID: r.RazorpayPaymentID,
		Signature: r.RazorpaySignature,
	}
}

func FromUseCaseResponse(resp *verifyPayment.Response) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		Message:         resp.Message,
		RazorpayOrderID: resp.OrderID,
		Draft:           resp.Draft,
	}
}
