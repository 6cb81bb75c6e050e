package events

import "errors"

var (
	ErrInvalidConfig = errors.New("events: invalid publisher config")
	ErrEncode        = errors.New("events: failed to encode event")
	ErrPublish       = errors.New("events: failed to publish event")
	ErrClosed        = errors.New("events: publisher closed")
)
