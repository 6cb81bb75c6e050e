package close_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts"
)

const msgNotFound = "черновик бронирования не найден"

type Handler struct {
	service DraftService
	session SessionStore
	logger  Logger
}

func NewHandler(service DraftService, session SessionStore, logger Logger) *Handler {
	return &Handler{
		service: service,
		session: session,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/draft
// Ответ на уже отправленный запрос оформления будет проигнорирован
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if err := h.service.Close(r.Context(), draftID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("DELETE /draft - Draft not found: draft_id=%s", draftID)
			h.session.Clear(w)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /draft - Failed to close draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.session.Clear(w)

	h.logger.Info("DELETE /draft - Draft closed successfully: draft_id=%s", draftID)
	w.WriteHeader(http.StatusNoContent)
}
