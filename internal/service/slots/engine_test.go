package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

var (
	turfFacility  = domain.Facility{ID: "turf-main", Name: "Main Turf", Category: domain.CategoryTurf, UnitPrice: 1200}
	poolFacility  = domain.Facility{ID: "pool-main", Name: "Swimming Pool", Category: domain.CategoryPool, UnitPrice: 300}
	comboFacility = domain.Facility{ID: "combo", Name: "Turf + Pool", Category: domain.CategoryCombo, UnitPrice: 1500}

	testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	// накануне, чтобы время не влияло на доступность
	dayBefore = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
)

func mustSlot(t *testing.T, label string) domain.TimeSlot {
	t.Helper()
	s, err := domain.ParseTimeSlot(label)
	require.NoError(t, err)
	return s
}

func newEngine() *Engine {
	return NewEngine(domain.DefaultVenueRules())
}

func TestEngine_ComboPairing(t *testing.T) {
	e := newEngine()

	paired := e.PairedPoolSlot(mustSlot(t, "6:00 AM - 7:00 AM"))
	assert.Equal(t, "7:05 AM - 8:05 AM", paired.Label())
}

func TestEngine_ComboGridFitsBeforeMidnight(t *testing.T) {
	e := newEngine()

	combo, err := e.SlotsFor(domain.CategoryCombo)
	require.NoError(t, err)
	turf, err := e.SlotsFor(domain.CategoryTurf)
	require.NoError(t, err)

	assert.Len(t, combo, len(turf)-1)
	last := combo[len(combo)-1]
	assert.Equal(t, "9:10 PM - 10:10 PM", last.Label())
	assert.Equal(t, "10:15 PM - 11:15 PM", e.PairedPoolSlot(last).Label())
}

func TestEngine_ComboPoolTimeBlocked(t *testing.T) {
	e := newEngine()
	bookings := []*domain.ExistingBooking{{
		FacilityType: domain.CategoryTurf,
		Date:         testDate,
		TimeSlots:    []string{"7:05 AM - 8:05 AM"},
		Status:       domain.StatusConfirmed,
	}}

	view, err := e.EvaluateDay(comboFacility, testDate, bookings, dayBefore)
	require.NoError(t, err)

	first := view.Slots[0]
	assert.Equal(t, "6:00 AM - 7:00 AM", first.Slot.Label())
	assert.False(t, first.Bookable)
	assert.Equal(t, domain.ReasonPoolTimeBlocked, first.Reason)
	require.NotNil(t, first.PairedSlot)
	assert.Equal(t, "7:05 AM - 8:05 AM", first.PairedSlot.Label())

	second := view.Slots[1]
	assert.Equal(t, domain.ReasonBooked, second.Reason)

	assert.True(t, view.Slots[2].Bookable)
}

func TestEngine_ComboBookingBlocksBothLabels(t *testing.T) {
	e := newEngine()
	bookings := []*domain.ExistingBooking{{
		FacilityType: domain.CategoryCombo,
		Date:         testDate,
		TimeSlots:    []string{"8:10 AM - 9:10 AM", "9:15 AM - 10:15 AM"},
		Status:       "Confirmed",
	}}

	view, err := e.EvaluateDay(turfFacility, testDate, bookings, dayBefore)
	require.NoError(t, err)

	assert.Equal(t, []string{"8:10 AM - 9:10 AM", "9:15 AM - 10:15 AM"}, view.Blocked)
	assert.Equal(t, domain.ReasonBooked, view.Slots[2].Reason)
	assert.Equal(t, domain.ReasonBooked, view.Slots[3].Reason)
	assert.True(t, view.Slots[4].Bookable)
}

func TestEngine_CancelledAndOtherDayBookingsIgnored(t *testing.T) {
	e := newEngine()
	bookings := []*domain.ExistingBooking{
		{FacilityType: domain.CategoryTurf, Date: testDate, TimeSlots: []string{"6:00 AM - 7:00 AM"}, Status: domain.StatusCancelled},
		{FacilityType: domain.CategoryTurf, Date: testDate.AddDate(0, 0, 1), TimeSlots: []string{"6:00 AM - 7:00 AM"}, Status: domain.StatusConfirmed},
	}

	view, err := e.EvaluateDay(turfFacility, testDate, bookings, dayBefore)
	require.NoError(t, err)
	assert.True(t, view.Slots[0].Bookable)
	assert.Empty(t, view.Blocked)
}

func TestEngine_LeadingZeroLabelsBlock(t *testing.T) {
	e := newEngine()
	bookings := []*domain.ExistingBooking{{
		FacilityType: domain.CategoryTurf,
		Date:         testDate,
		TimeSlots:    []string{"06:00 AM - 07:00 AM"},
		Status:       domain.StatusConfirmed,
	}}

	view, err := e.EvaluateDay(turfFacility, testDate, bookings, dayBefore)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonBooked, view.Slots[0].Reason)
}

func TestEngine_TimePassed(t *testing.T) {
	e := newEngine()
	slot := mustSlot(t, "7:05 AM - 8:05 AM")

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"day before", dayBefore, false},
		{"before start", time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), false},
		{"within grace", time.Date(2026, 3, 10, 7, 9, 0, 0, time.UTC), false},
		{"grace boundary", time.Date(2026, 3, 10, 7, 10, 0, 0, time.UTC), false},
		{"grace elapsed", time.Date(2026, 3, 10, 7, 11, 0, 0, time.UTC), true},
		{"next day", time.Date(2026, 3, 11, 5, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsTimePassed(slot, testDate, tt.now))
		})
	}
}

func TestEngine_TimePassedReason(t *testing.T) {
	e := newEngine()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	view, err := e.EvaluateDay(turfFacility, testDate, nil, now)
	require.NoError(t, err)

	assert.Equal(t, domain.ReasonTimePassed, view.Slots[0].Reason)
	assert.Equal(t, domain.ReasonTimePassed, view.Slots[1].Reason)
	// 8:10 AM слот начался 50 минут назад
	assert.Equal(t, domain.ReasonTimePassed, view.Slots[2].Reason)
	assert.True(t, view.Slots[3].Bookable)
}

func poolBookings(persons ...int) []*domain.ExistingBooking {
	result := make([]*domain.ExistingBooking, 0, len(persons))
	for _, p := range persons {
		result = append(result, &domain.ExistingBooking{
			FacilityType:      domain.CategoryPool,
			Date:              testDate,
			TimeSlots:         []string{"9:00 AM - 12:00 PM"},
			AdditionalPlayers: p,
			Status:            domain.StatusConfirmed,
		})
	}
	return result
}

func TestEngine_PoolCapacity(t *testing.T) {
	e := newEngine()

	view, err := e.EvaluateDay(poolFacility, testDate, poolBookings(12, 8), dayBefore)
	require.NoError(t, err)

	morning := view.Slots[0]
	assert.True(t, morning.Bookable)
	assert.Equal(t, 20, morning.Occupancy)
	assert.Equal(t, 5, morning.CapacityRemaining)

	limits := e.PersonLimits(poolFacility, &morning)
	assert.Equal(t, domain.PersonLimits{Min: 1, Max: 5}, limits)
	assert.True(t, limits.Contains(5))
	assert.False(t, limits.Contains(6))

	assert.Equal(t, 25, view.Slots[1].CapacityRemaining)
	assert.Empty(t, view.Blocked, "pool bookings never block")
}

func TestEngine_PoolFull(t *testing.T) {
	e := newEngine()

	view, err := e.EvaluateDay(poolFacility, testDate, poolBookings(20, 5), dayBefore)
	require.NoError(t, err)

	assert.False(t, view.Slots[0].Bookable)
	assert.Equal(t, domain.ReasonFull, view.Slots[0].Reason)
	assert.Equal(t, 0, view.Slots[0].CapacityRemaining)
}

func TestEngine_PoolCutoff(t *testing.T) {
	e := newEngine()
	now := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)

	view, err := e.EvaluateDay(poolFacility, testDate, nil, now)
	require.NoError(t, err)
	assert.True(t, view.PoolClosed)

	err = e.CheckSelection(poolFacility, testDate, []domain.TimeSlot{mustSlot(t, "6:00 PM - 9:00 PM")}, 1, nil, now)
	assert.ErrorIs(t, err, ErrPoolClosedForToday)

	assert.False(t, e.IsPoolClosed(testDate, time.Date(2026, 3, 10, 20, 59, 0, 0, time.UTC)))
}

func TestEngine_CheckSelection(t *testing.T) {
	e := newEngine()
	booked := []*domain.ExistingBooking{{
		FacilityType: domain.CategoryTurf,
		Date:         testDate,
		TimeSlots:    []string{"6:00 AM - 7:00 AM"},
		Status:       domain.StatusConfirmed,
	}}

	err := e.CheckSelection(turfFacility, testDate, []domain.TimeSlot{mustSlot(t, "6:00 AM - 7:00 AM")}, 0, booked, dayBefore)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	err = e.CheckSelection(turfFacility, testDate, []domain.TimeSlot{mustSlot(t, "6:30 AM - 7:30 AM")}, 0, nil, dayBefore)
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	err = e.CheckSelection(turfFacility, testDate, []domain.TimeSlot{mustSlot(t, "7:05 AM - 8:05 AM")}, 2, booked, dayBefore)
	assert.NoError(t, err)

	morning := []domain.TimeSlot{mustSlot(t, "9:00 AM - 12:00 PM")}
	assert.ErrorIs(t, e.CheckSelection(poolFacility, testDate, morning, 6, poolBookings(20), dayBefore), ErrCapacityExceeded)
	assert.NoError(t, e.CheckSelection(poolFacility, testDate, morning, 5, poolBookings(20), dayBefore))
	assert.ErrorIs(t, e.CheckSelection(poolFacility, testDate, morning, 1, poolBookings(25), dayBefore), ErrCapacityExceeded)
}

func TestEngine_ExpandForSubmission(t *testing.T) {
	e := newEngine()
	turf := mustSlot(t, "6:00 AM - 7:00 AM")

	combo := e.ExpandForSubmission(domain.CategoryCombo, []domain.TimeSlot{turf})
	assert.Equal(t, []string{"6:00 AM - 7:00 AM", "7:05 AM - 8:05 AM"}, domain.SlotLabels(combo))

	plain := e.ExpandForSubmission(domain.CategoryTurf, []domain.TimeSlot{mustSlot(t, "8:10 AM - 9:10 AM"), turf})
	assert.Equal(t, []string{"6:00 AM - 7:00 AM", "8:10 AM - 9:10 AM"}, domain.SlotLabels(plain))
}

func TestEngine_IsOffered(t *testing.T) {
	e := newEngine()

	assert.True(t, e.IsOffered(domain.CategoryTurf, mustSlot(t, "10:15 PM - 11:15 PM")))
	assert.False(t, e.IsOffered(domain.CategoryCombo, mustSlot(t, "10:15 PM - 11:15 PM")))
	assert.True(t, e.IsOffered(domain.CategoryPool, mustSlot(t, "3:00 PM - 6:00 PM")))
	assert.False(t, e.IsOffered(domain.Category("tennis"), mustSlot(t, "3:00 PM - 6:00 PM")))
}
