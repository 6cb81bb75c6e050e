// Package session хранит ID черновика бронирования в подписанной cookie
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// Config параметры cookie сессии
type Config struct {
	CookieName string
	HashKey    []byte
	BlockKey   []byte // пустой ключ отключает шифрование
	MaxAge     time.Duration
	Secure     bool
}

// Store читает и записывает cookie с ID черновика
type Store struct {
	name   string
	codec  *securecookie.SecureCookie
	maxAge time.Duration
	secure bool
}

// NewStore создает хранилище сессий
func NewStore(cfg Config) *Store {
	var blockKey []byte
	if len(cfg.BlockKey) > 0 {
		blockKey = cfg.BlockKey
	}

	codec := securecookie.New(cfg.HashKey, blockKey)
	codec.MaxAge(int(cfg.MaxAge.Seconds()))

	return &Store{
		name:   cfg.CookieName,
		codec:  codec,
		maxAge: cfg.MaxAge,
		secure: cfg.Secure,
	}
}

// DraftID возвращает ID черновика из cookie запроса
func (s *Store) DraftID(r *http.Request) (uuid.UUID, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return uuid.Nil, ErrNoSession
	}

	var raw string
	if err := s.codec.Decode(s.name, cookie.Value, &raw); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	return id, nil
}

// SetDraftID записывает ID черновика в cookie ответа
func (s *Store) SetDraftID(w http.ResponseWriter, id uuid.UUID) error {
	encoded, err := s.codec.Encode(s.name, id.String())
	if err != nil {
		return fmt.Errorf("session: encode cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		Expires:  time.Now().Add(s.maxAge),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear удаляет cookie черновика
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
