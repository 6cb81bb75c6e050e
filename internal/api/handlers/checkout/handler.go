package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	checkoutUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/checkout"
)

const (
	msgNotFound            = "черновик бронирования не найден"
	msgInFlight            = "заказ уже оформляется"
	msgConflict            = "черновик изменен другим запросом, обновите форму"
	msgPoolClosed          = "бронирование бассейна на сегодня закрыто"
	msgSlotNotAvailable    = "выбранный слот уже занят"
	msgCapacityExceeded    = "в выбранном блоке бассейна недостаточно мест"
	msgStaleDiscount       = "скидка больше не действует для этого заказа, примените промокод снова"
	msgOrderRejected       = "заказ отклонен"
	msgUnauthorized        = "требуется авторизация"
	msgDraftGone           = "черновик закрыт во время оформления заказа"
	msgIncompleteSelection = "форма заполнена не полностью"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/draft/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutUC.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrDraftNotFound):
			h.logger.Warn("POST /draft/checkout - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkoutUC.ErrInvalidInput):
			h.logger.Warn("POST /draft/checkout - Incomplete draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, checkoutUC.ErrSubmissionInFlight):
			h.logger.Warn("POST /draft/checkout - Submission in flight: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgInFlight)

		case errors.Is(err, checkoutUC.ErrDraftConflict):
			h.logger.Warn("POST /draft/checkout - Concurrent modification: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, checkoutUC.ErrPoolClosedForToday):
			h.logger.Warn("POST /draft/checkout - Pool closed for today: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgPoolClosed)

		case errors.Is(err, checkoutUC.ErrSlotNotAvailable):
			h.logger.Warn("POST /draft/checkout - Slot not available: draft_id=%s, error=%v", draftID, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, checkoutUC.ErrCapacityExceeded):
			h.logger.Warn("POST /draft/checkout - Capacity exceeded: draft_id=%s, error=%v", draftID, err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, checkoutUC.ErrStaleDiscount):
			h.logger.Warn("POST /draft/checkout - Stale discount: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgStaleDiscount)

		case errors.Is(err, checkoutUC.ErrDraftGone):
			h.logger.Warn("POST /draft/checkout - Draft closed during checkout: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftGone)

		case errors.Is(err, checkoutUC.ErrOrderRejected):
			h.logger.Warn("POST /draft/checkout - Order rejected: draft_id=%s, error=%v", draftID, err)
			handlers.RespondUnprocessable(w, msgOrderRejected)

		case errors.Is(err, checkoutUC.ErrUnauthorized):
			h.logger.Warn("POST /draft/checkout - Unauthorized: draft_id=%s", draftID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /draft/checkout - Failed to create order: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /draft/checkout - Order created successfully: draft_id=%s, order_id=%s, amount=%d",
		draftID, result.OrderID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
