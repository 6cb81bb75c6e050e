package verify_payment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == uuid.Nil {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.OrderID) == "" {
		return fmt.Errorf("%w: razorpayOrderId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PaymentID) == "" {
		return fmt.Errorf("%w: razorpayPaymentId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Signature) == "" {
		return fmt.Errorf("%w: razorpaySignature is required", ErrInvalidInput)
	}

	return nil
}
