package domain

import (
	"strconv"
	"strings"
	"time"
)

// DiscountResult is the outcome of a server-side coupon validation.
// It is only valid for the order inputs it was validated against (Fingerprint).
type DiscountResult struct {
	Code           string
	DiscountAmount int64
	FinalAmount    int64
	OrderAmount    int64
	Message        string
	Fingerprint    string
}

// Matches returns true if the discount was validated for the given inputs
func (d *DiscountResult) Matches(fingerprint string) bool {
	return d != nil && d.Fingerprint == fingerprint
}

// OrderFingerprint identifies the inputs that determine an order amount.
// Slots are order-independent.
func OrderFingerprint(facilityID string, date time.Time, slots []TimeSlot, persons int) string {
	var b strings.Builder
	b.WriteString(facilityID)
	b.WriteByte('|')
	b.WriteString(date.Format(DateFormat))
	b.WriteByte('|')
	b.WriteString(strings.Join(SlotLabels(SortSlots(slots)), ","))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(persons))
	return b.String()
}
