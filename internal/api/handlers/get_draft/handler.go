package get_draft

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
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID черновика кладет middleware RequireDraft
	draftID, ok := middleware.GetDraftID(r.Context())
	if !ok {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	draft, err := h.service.Get(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("GET /draft - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /draft - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /draft - Draft retrieved successfully: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
