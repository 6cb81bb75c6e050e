package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/pkg/authctx"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "

	msgMissingToken = "требуется авторизация"
)

// ForwardToken сохраняет заголовок Authorization в контексте, если он есть
func ForwardToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get(headerAuthorization); token != "" {
			r = r.WithContext(authctx.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// Auth требует Bearer-токен; сам токен проверяет бэкенд бронирований
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(headerAuthorization)
		if !strings.HasPrefix(token, bearerPrefix) || strings.TrimSpace(token[len(bearerPrefix):]) == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(authctx.WithToken(r.Context(), token)))
	})
}
