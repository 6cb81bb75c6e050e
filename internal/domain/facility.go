package domain

import "fmt"

// Category is the kind of facility being booked
type Category string

const (
	CategoryTurf  Category = "turf"
	CategoryPool  Category = "pool"
	CategoryCombo Category = "combo"
)

// ParseCategory validates a raw category value
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Valid returns true for a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryTurf, CategoryPool, CategoryCombo:
		return true
	}
	return false
}

// IsPerPerson returns true if the price is charged per person
func (c Category) IsPerPerson() bool {
	return c == CategoryPool
}

// AllowsMultipleSlots returns true if several slots may be selected at once
func (c Category) AllowsMultipleSlots() bool {
	return c == CategoryTurf
}

// Facility is an immutable bookable unit of the venue
type Facility struct {
	ID        string
	Name      string
	Category  Category
	UnitPrice int64 // в рупиях; для бассейна - цена за человека
	Capacity  int
}

// SlotParams describes a slot grid for a category
type SlotParams struct {
	StartHour       int
	EndHour         int
	DurationMinutes int
	GapMinutes      int
}

// Step returns the distance between two consecutive slot starts
func (p SlotParams) Step() int {
	return p.DurationMinutes + p.GapMinutes
}

// PersonLimits bounds the person counter of a draft
type PersonLimits struct {
	Min int
	Max int
}

// Clamp returns n limited to [Min, Max]
func (l PersonLimits) Clamp(n int) int {
	if n < l.Min {
		return l.Min
	}
	if n > l.Max {
		return l.Max
	}
	return n
}

// Contains returns true if n is within the limits
func (l PersonLimits) Contains(n int) bool {
	return n >= l.Min && n <= l.Max
}

// VenueRules holds category parameters and venue-wide policy constants
type VenueRules struct {
	Turf                 SlotParams
	Pool                 SlotParams
	PoolCapacity         int
	PoolCutoff           TimeOfDay
	GraceMinutes         int
	PerPersonSurcharge   int64
	MaxAdditionalPlayers int
	MaxPoolPersons       int
}

// DefaultVenueRules returns the venue defaults
func DefaultVenueRules() VenueRules {
	return VenueRules{
		Turf: SlotParams{
			StartHour:       DefaultTurfStartHour,
			EndHour:         DefaultTurfEndHour,
			DurationMinutes: DefaultTurfSlotMinutes,
			GapMinutes:      DefaultTurfGapMinutes,
		},
		Pool: SlotParams{
			StartHour:       DefaultPoolStartHour,
			EndHour:         DefaultPoolEndHour,
			DurationMinutes: DefaultPoolBlockMinutes,
			GapMinutes:      0,
		},
		PoolCapacity:         DefaultPoolCapacity,
		PoolCutoff:           NewTimeOfDay(DefaultPoolCutoffHour, 0),
		GraceMinutes:         DefaultGraceMinutes,
		PerPersonSurcharge:   DefaultPerPersonSurcharge,
		MaxAdditionalPlayers: DefaultMaxAdditionalPlayers,
		MaxPoolPersons:       DefaultMaxPoolPersons,
	}
}

// ParamsFor returns the slot grid used by a category; combo shares the turf grid
func (r VenueRules) ParamsFor(c Category) SlotParams {
	if c == CategoryPool {
		return r.Pool
	}
	return r.Turf
}

// PersonLimitsFor returns the static person limits of a category
func (r VenueRules) PersonLimitsFor(c Category) PersonLimits {
	if c == CategoryPool {
		return PersonLimits{Min: 1, Max: r.MaxPoolPersons}
	}
	return PersonLimits{Min: 0, Max: r.MaxAdditionalPlayers}
}

// InitialPersons returns the person count of a fresh draft
func (r VenueRules) InitialPersons(c Category) int {
	return r.PersonLimitsFor(c).Min
}

// PoolCapacityFor returns the occupancy ceiling of a pool facility
func (r VenueRules) PoolCapacityFor(f Facility) int {
	if f.Capacity > 0 {
		return f.Capacity
	}
	return r.PoolCapacity
}
