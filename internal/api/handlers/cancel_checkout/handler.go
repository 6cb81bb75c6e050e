package cancel_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	cancelCheckout "github.com/m04kA/SMC-VenueBooking/internal/usecase/cancel_checkout"
)

const (
	msgNotFound      = "черновик бронирования не найден"
	msgNotInCheckout = "оплата не начата"
	msgConflict      = "черновик изменен другим запросом, обновите форму"
)

type Handler struct {
	useCase CancelCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CancelCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/draft/checkout
// Окно оплаты закрыто пользователем, форма снова доступна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelCheckout.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, cancelCheckout.ErrDraftNotFound):
			h.logger.Warn("DELETE /draft/checkout - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelCheckout.ErrNotInCheckout):
			h.logger.Warn("DELETE /draft/checkout - No checkout in progress: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotInCheckout)

		case errors.Is(err, cancelCheckout.ErrDraftConflict):
			h.logger.Warn("DELETE /draft/checkout - Concurrent modification: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("DELETE /draft/checkout - Failed to cancel checkout: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /draft/checkout - Checkout cancelled: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, result.Draft)
}
