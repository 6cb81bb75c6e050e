package domain

import "errors"

var (
	ErrInvalidTimeFormat  = errors.New("invalid time format, expected h:mm AM/PM")
	ErrInvalidSlot        = errors.New("invalid time slot")
	ErrInvalidCategory    = errors.New("invalid facility category")
	ErrDateRequired       = errors.New("date must be selected first")
	ErrDateInPast         = errors.New("date is in the past")
	ErrSlotRequired       = errors.New("at least one slot must be selected")
	ErrPersonsOutOfRange  = errors.New("person count out of range")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrDraftLocked        = errors.New("draft is locked while submission is in flight")
	ErrNotSubmitted       = errors.New("draft has not been submitted")
	ErrSelectionChanged   = errors.New("draft no longer holds the paid selection")
)
