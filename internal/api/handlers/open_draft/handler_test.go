package open_draft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/api/session"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts"
	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type fakeService struct {
	opened uuid.UUID
	closed []uuid.UUID
	err    error
}

func (f *fakeService) Open(_ context.Context, facilityID string) (*models.DraftResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DraftResponse{ID: f.opened.String(), FacilityID: facilityID}, nil
}

func (f *fakeService) Close(_ context.Context, id uuid.UUID) error {
	f.closed = append(f.closed, id)
	return nil
}

func newStore() *session.Store {
	return session.NewStore(session.Config{
		CookieName: "draft",
		HashKey:    []byte("0123456789abcdef0123456789abcdef"),
		MaxAge:     time.Hour,
	})
}

func TestHandle_SetsCookieAndClosesPrevious(t *testing.T) {
	store := newStore()
	previous := uuid.New()
	svc := &fakeService{opened: uuid.New()}
	h := NewHandler(svc, store, logger.NewNop())

	prevRec := httptest.NewRecorder()
	require.NoError(t, store.SetDraftID(prevRec, previous))

	req := httptest.NewRequest(http.MethodPost, "/draft", strings.NewReader(`{"facilityId":"turf"}`))
	req.AddCookie(prevRec.Result().Cookies()[0])
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []uuid.UUID{previous}, svc.closed)

	next := httptest.NewRequest(http.MethodGet, "/draft", nil)
	next.AddCookie(rec.Result().Cookies()[0])
	got, err := store.DraftID(next)
	require.NoError(t, err)
	assert.Equal(t, svc.opened, got)
}

func TestHandle_Errors(t *testing.T) {
	t.Run("missing facility", func(t *testing.T) {
		h := NewHandler(&fakeService{}, newStore(), logger.NewNop())
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/draft", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("facility not found", func(t *testing.T) {
		h := NewHandler(&fakeService{err: drafts.ErrFacilityNotFound}, newStore(), logger.NewNop())
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/draft", strings.NewReader(`{"facilityId":"x"}`)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}
