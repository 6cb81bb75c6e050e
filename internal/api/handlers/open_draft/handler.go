package open_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts"
)

const (
	msgInvalidRequest   = "некорректный формат запроса"
	msgFacilityNotFound = "площадка не найдена"
)

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

// Handle POST /api/v1/draft
// Предыдущий черновик сессии закрывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req OpenDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	draft, err := h.service.Open(r.Context(), req.FacilityID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrFacilityNotFound):
			h.logger.Warn("POST /draft - Facility not found: facility_id=%s", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("POST /draft - Failed to open draft: facility_id=%s, error=%v", req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.closePrevious(r)

	draftID, err := uuid.Parse(draft.ID)
	if err != nil {
		h.logger.Error("POST /draft - Invalid draft ID %q: %v", draft.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.session.SetDraftID(w, draftID); err != nil {
		h.logger.Error("POST /draft - Failed to set session cookie: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /draft - Draft opened successfully: draft_id=%s, facility_id=%s", draft.ID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}

func (h *Handler) closePrevious(r *http.Request) {
	previous, err := h.session.DraftID(r)
	if err != nil {
		return
	}

	if err := h.service.Close(r.Context(), previous); err != nil && !errors.Is(err, drafts.ErrDraftNotFound) {
		h.logger.Warn("POST /draft - Failed to close previous draft %s: %v", previous, err)
	}
}
