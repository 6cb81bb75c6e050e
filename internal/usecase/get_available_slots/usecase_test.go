package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

var (
	kolkata, _ = time.LoadLocation("Asia/Kolkata")
	testDate   = time.Date(2026, 3, 10, 0, 0, 0, 0, kolkata)
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockBookingClient struct {
	mock.Mock
}

func (m *mockBookingClient) GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.ExistingBooking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]*domain.ExistingBooking)
	return bookings, args.Error(1)
}

func newTestUseCase(client BookingAPIClient, now time.Time) *UseCase {
	rules := domain.DefaultVenueRules()
	catalog := facilities.NewService([]domain.Facility{
		{ID: "turf-main", Name: "Main Turf", Category: domain.CategoryTurf, UnitPrice: 1200},
		{ID: "pool-main", Name: "Swimming Pool", Category: domain.CategoryPool, UnitPrice: 300, Capacity: 25},
		{ID: "combo", Name: "Turf + Pool", Category: domain.CategoryCombo, UnitPrice: 1500},
	}, rules, logger.NewNop())

	uc := NewUseCase(catalog, client, slots.NewEngine(rules), kolkata, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_Turf(t *testing.T) {
	client := &mockBookingClient{}
	client.On("GetBookingsByDate", mock.Anything, testDate).Return([]*domain.ExistingBooking{
		{
			FacilityType: domain.CategoryCombo,
			Date:         testDate,
			TimeSlots:    []string{"6:00 AM - 7:00 AM", "7:05 AM - 8:05 AM"},
			Status:       "Confirmed",
		},
	}, nil)

	uc := newTestUseCase(client, time.Date(2026, 3, 9, 18, 0, 0, 0, kolkata))
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: "turf-main", Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "6:00 AM - 7:00 AM", resp.Slots[0].Label)
	assert.False(t, resp.Slots[0].Bookable)
	assert.Equal(t, domain.ReasonBooked, resp.Slots[0].Reason)
	assert.False(t, resp.Slots[1].Bookable)
	assert.True(t, resp.Slots[2].Bookable)
	assert.Nil(t, resp.Slots[2].Occupancy)
	assert.Equal(t, []string{"6:00 AM - 7:00 AM", "7:05 AM - 8:05 AM"}, resp.Blocked)
	client.AssertExpectations(t)
}

func TestExecute_ComboPoolTimeBlocked(t *testing.T) {
	client := &mockBookingClient{}
	client.On("GetBookingsByDate", mock.Anything, testDate).Return([]*domain.ExistingBooking{
		{FacilityType: domain.CategoryTurf, Date: testDate, TimeSlots: []string{"7:05 AM - 8:05 AM"}, Status: "pending"},
	}, nil)

	uc := newTestUseCase(client, time.Date(2026, 3, 9, 18, 0, 0, 0, kolkata))
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: "combo", Date: testDate})
	require.NoError(t, err)

	first := resp.Slots[0]
	require.NotNil(t, first.PairedSlot)
	assert.Equal(t, "7:05 AM - 8:05 AM", *first.PairedSlot)
	assert.Equal(t, domain.ReasonPoolTimeBlocked, first.Reason)
	assert.Equal(t, domain.ReasonBooked, resp.Slots[1].Reason)
}

func TestExecute_PoolTodayAfterCutoff(t *testing.T) {
	today := time.Date(2026, 3, 10, 21, 30, 0, 0, kolkata)
	client := &mockBookingClient{}
	client.On("GetBookingsByDate", mock.Anything, testDate).Return(nil, nil)

	uc := newTestUseCase(client, today)
	resp, err := uc.Execute(context.Background(), &Request{FacilityID: "pool-main", Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.PoolClosed)
	require.Len(t, resp.Slots, 4)
	require.NotNil(t, resp.Slots[0].CapacityRemaining)
	assert.Equal(t, 25, *resp.Slots[0].CapacityRemaining)
	assert.Equal(t, domain.ReasonTimePassed, resp.Slots[3].Reason)
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, kolkata)

	t.Run("missing facility id", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{Date: testDate})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("past date", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{FacilityID: "turf-main", Date: testDate.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown facility", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{FacilityID: "tennis", Date: testDate})
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("booking api down", func(t *testing.T) {
		client := &mockBookingClient{}
		client.On("GetBookingsByDate", mock.Anything, testDate).Return(nil, errors.New("timeout"))

		uc := newTestUseCase(client, now)
		_, err := uc.Execute(context.Background(), &Request{FacilityID: "turf-main", Date: testDate})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
