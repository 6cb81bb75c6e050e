package apply_discount

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	applyDiscount "github.com/m04kA/SMC-VenueBooking/internal/usecase/apply_discount"
)

const (
	msgInvalidRequest   = "некорректный формат запроса"
	msgNotFound         = "черновик бронирования не найден"
	msgLocked           = "идет оплата, форма недоступна для изменений"
	msgConflict         = "черновик изменен другим запросом, обновите форму"
	msgSlotRequired     = "сначала выберите время"
	msgDiscountRejected = "промокод недействителен"
)

type Handler struct {
	useCase ApplyDiscountUseCase
	logger  Logger
}

func NewHandler(useCase ApplyDiscountUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/draft/discount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req ApplyDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /draft/discount - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(draftID))
	if err != nil {
		var rejected *applyDiscount.RejectedError

		switch {
		case errors.As(err, &rejected):
			h.logger.Warn("POST /draft/discount - Discount rejected: draft_id=%s, message=%s", draftID, rejected.Message)
			handlers.RespondUnprocessable(w, rejected.Message)

		case errors.Is(err, applyDiscount.ErrDiscountRejected):
			h.logger.Warn("POST /draft/discount - Discount rejected: draft_id=%s", draftID)
			handlers.RespondUnprocessable(w, msgDiscountRejected)

		case errors.Is(err, applyDiscount.ErrDraftNotFound):
			h.logger.Warn("POST /draft/discount - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applyDiscount.ErrSlotRequired):
			h.logger.Warn("POST /draft/discount - No slot selected: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgSlotRequired)

		case errors.Is(err, applyDiscount.ErrInvalidInput):
			h.logger.Warn("POST /draft/discount - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, applyDiscount.ErrDraftLocked):
			h.logger.Warn("POST /draft/discount - Draft locked: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgLocked)

		case errors.Is(err, applyDiscount.ErrDraftConflict):
			h.logger.Warn("POST /draft/discount - Concurrent modification: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /draft/discount - Failed to apply discount: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /draft/discount - Discount processed: draft_id=%s, code=%q", draftID, req.Code)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
