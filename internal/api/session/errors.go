package session

import "errors"

var (
	// ErrNoSession возвращается, когда cookie черновика отсутствует
	ErrNoSession = errors.New("session: no draft cookie")

	// ErrInvalidSession возвращается при поддельной или поврежденной cookie
	ErrInvalidSession = errors.New("session: invalid draft cookie")
)
