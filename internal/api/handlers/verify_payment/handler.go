package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	verifyPayment "github.com/m04kA/SMC-VenueBooking/internal/usecase/verify_payment"
)

const (
	msgInvalidRequest   = "некорректный формат запроса"
	msgNotFound         = "черновик бронирования не найден"
	msgAttemptNotFound  = "заказ не найден"
	msgNotPending       = "платеж по заказу уже обработан"
	msgPaymentFailed    = "платеж не прошел проверку"
	msgSlotNotAvailable = "слот заняли до подтверждения оплаты"
	msgUnauthorized     = "требуется авторизация"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/draft/payment/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /draft/payment/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(draftID))
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /draft/payment/verify - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, verifyPayment.ErrAttemptNotFound):
			h.logger.Warn("POST /draft/payment/verify - Attempt not found: draft_id=%s, order_id=%s",
				draftID, req.RazorpayOrderID)
			handlers.RespondNotFound(w, msgAttemptNotFound)

		case errors.Is(err, verifyPayment.ErrAttemptNotPending):
			h.logger.Warn("POST /draft/payment/verify - Attempt already completed: order_id=%s", req.RazorpayOrderID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, verifyPayment.ErrPaymentFailed):
			h.logger.Warn("POST /draft/payment/verify - Payment failed: order_id=%s, error=%v", req.RazorpayOrderID, err)
			handlers.RespondPaymentRequired(w, msgPaymentFailed)

		case errors.Is(err, verifyPayment.ErrSlotNotAvailable):
			h.logger.Warn("POST /draft/payment/verify - Slot taken before confirmation: order_id=%s", req.RazorpayOrderID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, verifyPayment.ErrUnauthorized):
			h.logger.Warn("POST /draft/payment/verify - Unauthorized: order_id=%s", req.RazorpayOrderID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /draft/payment/verify - Failed to verify payment: order_id=%s, error=%v",
				req.RazorpayOrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /draft/payment/verify - Booking confirmed: draft_id=%s, order_id=%s", draftID, result.OrderID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
