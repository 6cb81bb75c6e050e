package update_draft

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdateDraftRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateDraftRequest) (*models.DraftResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.DraftResponse{ID: req.DraftID.String()}, nil
}

func TestHandle(t *testing.T) {
	draftID := uuid.New()

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "select date", body: `{"action":"select_date","date":"2026-10-20"}`, status: http.StatusOK},
		{name: "toggle slot", body: `{"action":"toggle_slot","slot":"6:00 AM - 7:00 AM"}`, status: http.StatusOK},
		{name: "unknown action", body: `{"action":"jump"}`, status: http.StatusBadRequest},
		{name: "date missing", body: `{"action":"select_date"}`, status: http.StatusBadRequest},
		{name: "persons missing", body: `{"action":"set_persons"}`, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"action":"set_persons","persons":2,"extra":1}`, status: http.StatusBadRequest},
		{
			name:   "invalid input",
			body:   `{"action":"select_date","date":"2020-01-01"}`,
			err:    fmt.Errorf("%w: date in past", drafts.ErrInvalidInput),
			status: http.StatusBadRequest,
		},
		{name: "locked", body: `{"action":"set_persons","persons":2}`, err: drafts.ErrDraftLocked, status: http.StatusConflict},
		{name: "conflict", body: `{"action":"set_persons","persons":2}`, err: drafts.ErrDraftConflict, status: http.StatusConflict},
		{
			name:   "slot taken",
			body:   `{"action":"toggle_slot","slot":"6:00 AM - 7:00 AM"}`,
			err:    drafts.ErrSlotNotAvailable,
			status: http.StatusConflict,
		},
		{name: "capacity", body: `{"action":"set_persons","persons":5}`, err: drafts.ErrCapacityExceeded, status: http.StatusConflict},
		{name: "not found", body: `{"action":"set_persons","persons":2}`, err: drafts.ErrDraftNotFound, status: http.StatusNotFound},
		{name: "internal", body: `{"action":"set_persons","persons":2}`, err: drafts.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, logger.NewNop())

			req := httptest.NewRequest(http.MethodPatch, "/draft", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithDraftID(req.Context(), draftID))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if svc.got != nil {
				assert.Equal(t, draftID, svc.got.DraftID)
			}
		})
	}
}
