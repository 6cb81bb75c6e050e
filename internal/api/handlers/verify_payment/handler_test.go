package verify_payment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	verifyPayment "github.com/m04kA/SMC-VenueBooking/internal/usecase/verify_payment"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *verifyPayment.Request) (*verifyPayment.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*verifyPayment.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{"razorpayOrderId":"order_1","razorpayPaymentId":"pay_1","razorpaySignature":"sig"}`

func TestHandle(t *testing.T) {
	draftID := uuid.New()

	tests := []struct {
		name   string
		body   string
		resp   *verifyPayment.Response
		err    error
		status int
	}{
		{
			name:   "confirmed",
			body:   validBody,
			resp:   &verifyPayment.Response{Message: "Booking confirmed", OrderID: "order_1"},
			status: http.StatusOK,
		},
		{name: "missing signature", body: `{"razorpayOrderId":"order_1","razorpayPaymentId":"pay_1"}`, status: http.StatusBadRequest},
		{name: "payment failed", body: validBody, err: fmt.Errorf("%w: bad signature", verifyPayment.ErrPaymentFailed), status: http.StatusPaymentRequired},
		{name: "slot taken", body: validBody, err: verifyPayment.ErrSlotNotAvailable, status: http.StatusConflict},
		{name: "already processed", body: validBody, err: verifyPayment.ErrAttemptNotPending, status: http.StatusConflict},
		{name: "unknown order", body: validBody, err: verifyPayment.ErrAttemptNotFound, status: http.StatusNotFound},
		{name: "unauthorized", body: validBody, err: verifyPayment.ErrUnauthorized, status: http.StatusUnauthorized},
		{name: "internal", body: validBody, err: verifyPayment.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			expected := &verifyPayment.Request{DraftID: draftID, OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
			if tt.resp != nil {
				uc.On("Execute", mock.Anything, expected).Return(tt.resp, nil)
			} else {
				uc.On("Execute", mock.Anything, expected).Return(nil, tt.err)
			}

			req := httptest.NewRequest(http.MethodPost, "/draft/payment/verify", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithDraftID(req.Context(), draftID))
			rec := httptest.NewRecorder()

			NewHandler(uc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
