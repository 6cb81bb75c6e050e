package close_draft

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type DraftService interface {
	Close(ctx context.Context, id uuid.UUID) error
}

type SessionStore interface {
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
