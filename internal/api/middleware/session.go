package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/session"
)

const msgNoDraft = "черновик бронирования не найден"

type draftIDKey struct{}

// DraftIDReader читает ID черновика из запроса
type DraftIDReader interface {
	DraftID(r *http.Request) (uuid.UUID, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RequireDraft кладет ID черновика сессии в контекст; без cookie отвечает 404
func RequireDraft(store DraftIDReader, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			draftID, err := store.DraftID(r)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					logger.Warn("%s %s - Invalid session cookie: %v", r.Method, r.URL.Path, err)
				}
				handlers.RespondNotFound(w, msgNoDraft)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithDraftID(r.Context(), draftID)))
		})
	}
}

// WithDraftID сохраняет ID черновика в контексте
func WithDraftID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, draftIDKey{}, id)
}

// GetDraftID возвращает ID черновика сессии
func GetDraftID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(draftIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
