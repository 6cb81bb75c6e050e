package domain

import (
	"time"

	"github.com/google/uuid"
)

// DraftState is the state of the booking selection form
type DraftState string

const (
	DraftNoDateSelected DraftState = "no_date_selected"
	DraftDateSelected   DraftState = "date_selected"
	DraftSlotSelected   DraftState = "slot_selected"
	DraftSubmitted      DraftState = "submitted"
)

// Draft is an in-progress booking request held per session.
// Transitions never mutate the receiver; they return the next value.
type Draft struct {
	ID         uuid.UUID
	FacilityID string
	Category   Category
	Date       *time.Time
	Slots      []TimeSlot
	Persons    int
	Discount   *DiscountResult
	State      DraftState
	Revision   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewDraft opens an empty draft for a facility
func NewDraft(id uuid.UUID, facility Facility, persons int, now time.Time) Draft {
	return Draft{
		ID:         id,
		FacilityID: facility.ID,
		Category:   facility.Category,
		Persons:    persons,
		State:      DraftNoDateSelected,
		Revision:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsLocked returns true while a submission is in flight
func (d Draft) IsLocked() bool {
	return d.State == DraftSubmitted
}

// HasSlot returns true if slot is part of the selection
func (d Draft) HasSlot(slot TimeSlot) bool {
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SelectDate sets the date; slots and discount are date-scoped and get cleared
func (d Draft) SelectDate(date, today time.Time) (Draft, error) {
	if d.IsLocked() {
		return d, ErrDraftLocked
	}
	if DateBefore(date, today) {
		return d, ErrDateInPast
	}

	next := d.clone()
	day := DateOnly(date)
	next.Date = &day
	next.Slots = nil
	next.Discount = nil
	next.State = DraftDateSelected
	next.Revision++
	return next, nil
}

// ToggleSlot adds or removes a slot.
// Turf is multi-select; pool and combo keep at most one slot.
func (d Draft) ToggleSlot(slot TimeSlot) (Draft, error) {
	if d.IsLocked() {
		return d, ErrDraftLocked
	}
	if d.Date == nil {
		return d, ErrDateRequired
	}

	next := d.clone()
	switch {
	case d.HasSlot(slot):
		next.Slots = removeSlot(next.Slots, slot)
	case d.Category.AllowsMultipleSlots():
		next.Slots = append(next.Slots, slot)
	default:
		next.Slots = []TimeSlot{slot}
	}

	next.Discount = nil
	next.State = DraftDateSelected
	if len(next.Slots) > 0 {
		next.State = DraftSlotSelected
	}
	next.Revision++
	return next, nil
}

// SetPersons updates the person counter within the given limits
func (d Draft) SetPersons(n int, limits PersonLimits) (Draft, error) {
	if d.IsLocked() {
		return d, ErrDraftLocked
	}
	if !limits.Contains(n) {
		return d, ErrPersonsOutOfRange
	}

	next := d.clone()
	next.Persons = n
	next.Discount = nil
	next.Revision++
	return next, nil
}

// ApplyDiscount attaches a server-validated discount
func (d Draft) ApplyDiscount(result DiscountResult) (Draft, error) {
	if d.IsLocked() {
		return d, ErrDraftLocked
	}
	if d.State != DraftSlotSelected {
		return d, ErrSlotRequired
	}

	next := d.clone()
	next.Discount = &result
	next.Revision++
	return next, nil
}

// ClearDiscount removes an applied discount
func (d Draft) ClearDiscount() (Draft, error) {
	if d.IsLocked() {
		return d, ErrDraftLocked
	}

	next := d.clone()
	next.Discount = nil
	next.Revision++
	return next, nil
}

// CanSubmit checks the local submission preconditions
func (d Draft) CanSubmit() error {
	if d.IsLocked() {
		return ErrSubmissionInFlight
	}
	if d.Date == nil {
		return ErrDateRequired
	}
	if len(d.Slots) == 0 {
		return ErrSlotRequired
	}
	if d.Category.IsPerPerson() && d.Persons < 1 {
		return ErrPersonsOutOfRange
	}
	return nil
}

// Submit locks the draft while the order is being created
func (d Draft) Submit() (Draft, error) {
	if err := d.CanSubmit(); err != nil {
		return d, err
	}

	next := d.clone()
	next.State = DraftSubmitted
	next.Revision++
	return next, nil
}

// Confirm resets the form after a successful booking, keeping facility and id
func (d Draft) Confirm(initialPersons int) (Draft, error) {
	if d.State != DraftSubmitted {
		return d, ErrNotSubmitted
	}

	next := d.clone()
	next.Date = nil
	next.Slots = nil
	next.Discount = nil
	next.Persons = initialPersons
	next.State = DraftNoDateSelected
	next.Revision++
	return next, nil
}

// ConfirmPaid resets the form after a payment verified for the given selection.
// The draft may already be unlocked, but it must still hold the paid date and slots.
func (d Draft) ConfirmPaid(date time.Time, labels []string, initialPersons int) (Draft, error) {
	if !d.HoldsSelection(date, labels) {
		return d, ErrSelectionChanged
	}

	locked := d
	locked.State = DraftSubmitted
	return locked.Confirm(initialPersons)
}

// HoldsSelection reports whether every selected slot of the draft is among labels on the given date
func (d Draft) HoldsSelection(date time.Time, labels []string) bool {
	if d.Date == nil || len(d.Slots) == 0 || !SameDay(*d.Date, date) {
		return false
	}

	held := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		held[l] = struct{}{}
	}
	for _, s := range d.Slots {
		if _, ok := held[s.Label()]; !ok {
			return false
		}
	}
	return true
}

// Fail unlocks the draft keeping the selection for a retry
func (d Draft) Fail() (Draft, error) {
	if d.State != DraftSubmitted {
		return d, ErrNotSubmitted
	}

	next := d.clone()
	next.State = DraftSlotSelected
	next.Revision++
	return next, nil
}

// Fingerprint identifies the order-determining inputs of the draft
func (d Draft) Fingerprint() string {
	var date time.Time
	if d.Date != nil {
		date = *d.Date
	}
	return OrderFingerprint(d.FacilityID, date, d.Slots, d.Persons)
}

func (d Draft) clone() Draft {
	next := d
	if d.Date != nil {
		date := *d.Date
		next.Date = &date
	}
	if d.Slots != nil {
		next.Slots = make([]TimeSlot, len(d.Slots))
		copy(next.Slots, d.Slots)
	}
	if d.Discount != nil {
		discount := *d.Discount
		next.Discount = &discount
	}
	return next
}

func removeSlot(slots []TimeSlot, slot TimeSlot) []TimeSlot {
	result := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s != slot {
			result = append(result, s)
		}
	}
	return result
}
