package open_draft

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

type DraftService interface {
	Open(ctx context.Context, facilityID string) (*models.DraftResponse, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type SessionStore interface {
	DraftID(r *http.Request) (uuid.UUID, error)
	SetDraftID(w http.ResponseWriter, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
