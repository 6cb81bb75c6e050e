package update_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts"
)

const (
	msgInvalidRequest   = "некорректный формат запроса"
	msgNotFound         = "черновик бронирования не найден"
	msgLocked           = "идет оплата, форма недоступна для изменений"
	msgConflict         = "черновик изменен другим запросом, обновите форму"
	msgSlotNotAvailable = "выбранный слот недоступен"
	msgCapacityExceeded = "в выбранном блоке бассейна недостаточно мест"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	draft, err := h.service.Update(r.Context(), req.ToServiceRequest(draftID))
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("PATCH /draft - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("PATCH /draft - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, drafts.ErrDraftLocked):
			h.logger.Warn("PATCH /draft - Draft locked: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgLocked)

		case errors.Is(err, drafts.ErrDraftConflict):
			h.logger.Warn("PATCH /draft - Concurrent modification: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, drafts.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /draft - Slot not available: draft_id=%s, error=%v", draftID, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, drafts.ErrCapacityExceeded):
			h.logger.Warn("PATCH /draft - Capacity exceeded: draft_id=%s, error=%v", draftID, err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("PATCH /draft - Failed to update draft: draft_id=%s, action=%s, error=%v",
				draftID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /draft - Draft updated successfully: draft_id=%s, action=%s", draftID, req.Action)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
