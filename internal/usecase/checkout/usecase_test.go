package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-VenueBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

var (
	kolkata, _ = time.LoadLocation("Asia/Kolkata")
	testNow    = time.Date(2026, 3, 9, 12, 0, 0, 0, kolkata)
	testDate   = time.Date(2026, 3, 10, 0, 0, 0, 0, kolkata)

	turf  = domain.Facility{ID: "turf-main", Name: "Main Turf", Category: domain.CategoryTurf, UnitPrice: 1200}
	pool  = domain.Facility{ID: "pool-main", Name: "Swimming Pool", Category: domain.CategoryPool, UnitPrice: 300, Capacity: 25}
	combo = domain.Facility{ID: "combo", Name: "Turf + Pool", Category: domain.CategoryCombo, UnitPrice: 1500}

	slotSix   = domain.TimeSlot{Start: domain.NewTimeOfDay(6, 0), End: domain.NewTimeOfDay(7, 0)}
	poolNine  = domain.TimeSlot{Start: domain.NewTimeOfDay(9, 0), End: domain.NewTimeOfDay(12, 0)}
	sixLabel  = "6:00 AM - 7:00 AM"
	nineLabel = "9:00 AM - 12:00 PM"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type memDraftRepo struct {
	drafts map[uuid.UUID]domain.Draft
}

func (m *memDraftRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	d, ok := m.drafts[id]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	return &d, nil
}

func (m *memDraftRepo) Update(_ context.Context, draft *domain.Draft, expectedRevision int64) error {
	stored, ok := m.drafts[draft.ID]
	if !ok {
		return draftRepo.ErrDraftNotFound
	}
	if stored.Revision != expectedRevision {
		return draftRepo.ErrDraftConflict
	}
	m.drafts[draft.ID] = *draft
	return nil
}

type mockCheckoutRepo struct {
	mock.Mock
	created *domain.CheckoutAttempt
}

func (m *mockCheckoutRepo) Create(ctx context.Context, attempt *domain.CheckoutAttempt) error {
	m.created = attempt
	return m.Called(ctx, attempt).Error(0)
}

func (m *mockCheckoutRepo) SetOrder(ctx context.Context, id uuid.UUID, orderID string, amount int64, currency string) error {
	return m.Called(ctx, id, orderID, amount, currency).Error(0)
}

func (m *mockCheckoutRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CheckoutStatus, reason *string) error {
	return m.Called(ctx, id, from, to, reason).Error(0)
}

type mockBookingClient struct {
	mock.Mock
}

func (m *mockBookingClient) GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.ExistingBooking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]*domain.ExistingBooking)
	return bookings, args.Error(1)
}

func (m *mockBookingClient) CreateOrder(ctx context.Context, order *bookingapi.CreateOrderRequest) (*bookingapi.CreateOrderResponse, error) {
	args := m.Called(ctx, order)
	resp, _ := args.Get(0).(*bookingapi.CreateOrderResponse)
	return resp, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics map[string]int

func (m countingMetrics) RecordCheckout(category, outcome string) { m[category+":"+outcome]++ }

type fixture struct {
	drafts   *memDraftRepo
	attempts *mockCheckoutRepo
	client   *mockBookingClient
	metrics  countingMetrics
	uc       *UseCase
}

func newFixture(now time.Time) *fixture {
	rules := domain.DefaultVenueRules()
	f := &fixture{
		drafts:   &memDraftRepo{drafts: map[uuid.UUID]domain.Draft{}},
		attempts: &mockCheckoutRepo{},
		client:   &mockBookingClient{},
		metrics:  countingMetrics{},
	}

	f.uc = NewUseCase(
		f.drafts,
		f.attempts,
		facilities.NewService([]domain.Facility{turf, pool, combo}, rules, logger.NewNop()),
		f.client,
		slots.NewEngine(rules),
		pricing.NewCalculator(rules),
		inlineTx{},
		f.metrics,
		kolkata,
		logger.NewNop(),
	)
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func (f *fixture) addDraft(t *testing.T, facility domain.Facility, slot domain.TimeSlot, persons int) domain.Draft {
	t.Helper()
	rules := domain.DefaultVenueRules()

	d := domain.NewDraft(uuid.New(), facility, rules.InitialPersons(facility.Category), testNow)
	d, err := d.SelectDate(testDate, testNow)
	require.NoError(t, err)
	d, err = d.ToggleSlot(slot)
	require.NoError(t, err)
	d, err = d.SetPersons(persons, rules.PersonLimitsFor(facility.Category))
	require.NoError(t, err)

	f.drafts.drafts[d.ID] = d
	return d
}

func (f *fixture) noBookings() {
	f.client.On("GetBookingsByDate", mock.Anything, testDate).Return(nil, nil)
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 1)
	f.noBookings()

	f.attempts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.client.On("CreateOrder", mock.Anything, &bookingapi.CreateOrderRequest{
		FacilityName:      "Main Turf",
		FacilityType:      "turf",
		Date:              "2026-03-10",
		TimeSlots:         []string{sixLabel},
		AdditionalPlayers: 1,
		BasePrice:         1200,
	}).Return(&bookingapi.CreateOrderResponse{RazorpayOrderID: "order_1", Amount: 130000, Currency: "INR", KeyID: "rzp"}, nil)
	f.attempts.On("SetOrder", mock.Anything, mock.Anything, "order_1", int64(130000), "INR").Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)

	assert.Equal(t, "order_1", resp.OrderID)
	assert.Equal(t, int64(1300), resp.FinalAmount)
	assert.Equal(t, "rzp", resp.KeyID)

	stored := f.drafts.drafts[draft.ID]
	assert.Equal(t, domain.DraftSubmitted, stored.State)

	require.NotNil(t, f.attempts.created)
	assert.Equal(t, domain.CheckoutPending, f.attempts.created.Status)
	assert.Equal(t, stored.Revision, f.attempts.created.DraftRevision)
	assert.Equal(t, int64(1300), f.attempts.created.Amount)
	assert.Equal(t, 1, f.metrics["turf:"+outcomeCreated])

	f.client.AssertExpectations(t)
	f.attempts.AssertExpectations(t)
}

func TestExecute_ComboExpandsPayload(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, combo, slotSix, 0)
	f.noBookings()

	f.attempts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.client.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req *bookingapi.CreateOrderRequest) bool {
		return assert.ObjectsAreEqual([]string{sixLabel, "7:05 AM - 8:05 AM"}, req.TimeSlots)
	})).Return(&bookingapi.CreateOrderResponse{RazorpayOrderID: "order_2", Amount: 150000}, nil)
	f.attempts.On("SetOrder", mock.Anything, mock.Anything, "order_2", int64(150000), defaultCurrency).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{sixLabel, "7:05 AM - 8:05 AM"}, resp.TimeSlots)
	assert.Equal(t, defaultCurrency, resp.Currency)
}

func TestExecute_SecondCheckoutInFlight(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 0)
	submitted, err := draft.Submit()
	require.NoError(t, err)
	f.drafts.drafts[draft.ID] = submitted

	_, err = f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	f.client.AssertNotCalled(t, "GetBookingsByDate", mock.Anything, mock.Anything)
}

func TestExecute_LocalValidationBeforeNetwork(t *testing.T) {
	f := newFixture(testNow)
	d := domain.NewDraft(uuid.New(), turf, 0, testNow)
	d, err := d.SelectDate(testDate, testNow)
	require.NoError(t, err)
	f.drafts.drafts[d.ID] = d

	_, err = f.uc.Execute(context.Background(), &Request{DraftID: d.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)
	f.client.AssertNotCalled(t, "GetBookingsByDate", mock.Anything, mock.Anything)

	_, err = f.uc.Execute(context.Background(), &Request{DraftID: uuid.New()})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecute_SlotTakenMeanwhile(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 0)
	f.client.On("GetBookingsByDate", mock.Anything, testDate).Return([]*domain.ExistingBooking{
		{FacilityType: domain.CategoryTurf, Date: testDate, TimeSlots: []string{"06:00 AM - 07:00 AM"}, Status: "confirmed"},
	}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, domain.DraftSlotSelected, f.drafts.drafts[draft.ID].State)
	assert.Equal(t, 1, f.metrics["turf:"+outcomeRejected])
}

func TestExecute_PoolOverCapacity(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, pool, poolNine, 6)
	f.client.On("GetBookingsByDate", mock.Anything, testDate).Return([]*domain.ExistingBooking{
		{FacilityType: domain.CategoryPool, Date: testDate, TimeSlots: []string{nineLabel}, AdditionalPlayers: 20, Status: "confirmed"},
	}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_PoolClosedForToday(t *testing.T) {
	f := newFixture(time.Date(2026, 3, 10, 21, 5, 0, 0, kolkata))
	rules := domain.DefaultVenueRules()
	d := domain.NewDraft(uuid.New(), pool, 1, testNow)
	d, _ = d.SelectDate(testDate, testNow)
	d, _ = d.ToggleSlot(domain.TimeSlot{Start: domain.NewTimeOfDay(18, 0), End: domain.NewTimeOfDay(21, 0)})
	d, _ = d.SetPersons(2, rules.PersonLimitsFor(domain.CategoryPool))
	f.drafts.drafts[d.ID] = d

	_, err := f.uc.Execute(context.Background(), &Request{DraftID: d.ID})
	assert.ErrorIs(t, err, ErrPoolClosedForToday)
	f.client.AssertNotCalled(t, "GetBookingsByDate", mock.Anything, mock.Anything)
}

func TestExecute_StaleDiscount(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 0)
	draft, err := draft.ApplyDiscount(domain.DiscountResult{
		Code:           "SAVE10",
		DiscountAmount: 120,
		FinalAmount:    1080,
		Fingerprint:    "turf-main|2026-03-10|6:00 AM - 7:00 AM|3",
	})
	require.NoError(t, err)
	f.drafts.drafts[draft.ID] = draft
	f.noBookings()

	_, err = f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	assert.ErrorIs(t, err, ErrStaleDiscount)
}

func TestExecute_DiscountCarriedIntoOrder(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 0)
	draft, err := draft.ApplyDiscount(domain.DiscountResult{
		Code: "SAVE10", DiscountAmount: 120, FinalAmount: 1080, Fingerprint: draft.Fingerprint(),
	})
	require.NoError(t, err)
	f.drafts.drafts[draft.ID] = draft
	f.noBookings()

	f.attempts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.client.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req *bookingapi.CreateOrderRequest) bool {
		return req.DiscountCode == "SAVE10"
	})).Return(&bookingapi.CreateOrderResponse{RazorpayOrderID: "order_3", Amount: 108000, Currency: "INR"}, nil)
	f.attempts.On("SetOrder", mock.Anything, mock.Anything, "order_3", int64(108000), "INR").Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(120), resp.DiscountAmount)
	assert.Equal(t, int64(1080), resp.FinalAmount)
	assert.Equal(t, "SAVE10", f.attempts.created.DiscountCode)
}

func TestExecute_OrderConflictUnlocksDraft(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 0)
	f.noBookings()

	f.attempts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.client.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: Slot already booked", bookingapi.ErrSlotConflict))
	f.attempts.On("UpdateStatus", mock.Anything, mock.Anything, domain.CheckoutPending, domain.CheckoutFailed, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	stored := f.drafts.drafts[draft.ID]
	assert.Equal(t, domain.DraftSlotSelected, stored.State)
	assert.Equal(t, []domain.TimeSlot{slotSix}, stored.Slots)
	assert.Equal(t, 1, f.metrics["turf:"+outcomeOrderFailed])
	f.attempts.AssertExpectations(t)
}

func TestExecute_DraftClosedDuringOrder(t *testing.T) {
	f := newFixture(testNow)
	draft := f.addDraft(t, turf, slotSix, 0)
	f.noBookings()

	f.attempts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.client.On("CreateOrder", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { delete(f.drafts.drafts, draft.ID) }).
		Return(&bookingapi.CreateOrderResponse{RazorpayOrderID: "order_4", Amount: 120000}, nil)
	f.attempts.On("UpdateStatus", mock.Anything, mock.Anything, domain.CheckoutPending, domain.CheckoutAbandoned, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	assert.ErrorIs(t, err, ErrDraftGone)
	f.attempts.AssertNotCalled(t, "SetOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.attempts.AssertExpectations(t)
	assert.Equal(t, 1, f.metrics["turf:"+outcomeAbandoned])
}
