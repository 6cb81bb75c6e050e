package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	facilitiesService "github.com/m04kA/SMC-VenueBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
)

// UseCase use case для получения сетки слотов площадки с доступностью
type UseCase struct {
	catalog       FacilityCatalog
	bookingClient BookingAPIClient
	engine        *slots.Engine
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog FacilityCatalog,
	bookingClient BookingAPIClient,
	engine *slots.Engine,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:       catalog,
		bookingClient: bookingClient,
		engine:        engine,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%s, date=%s", req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе площадки
	now := uc.timeProvider.Now().In(uc.location)
	date := domain.DateIn(req.Date, uc.location)

	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем площадку
	facility, err := uc.catalog.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilitiesService.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 4. Получаем все бронирования на дату
	bookings, err := uc.bookingClient.GetBookingsByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступность для каждого слота
	view, err := uc.engine.EvaluateDay(*facility, date, bookings, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to evaluate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to evaluate slots: %v", ErrInternal, err)
	}

	resp := &Response{
		FacilityID: facility.ID,
		Category:   string(facility.Category),
		Date:       view.Date,
		Slots:      make([]Slot, 0, len(view.Slots)),
		Blocked:    view.Blocked,
		PoolClosed: view.PoolClosed,
	}

	isPool := facility.Category == domain.CategoryPool
	for _, sv := range view.Slots {
		slot := Slot{
			Label:    sv.Slot.Label(),
			Bookable: sv.Bookable,
			Reason:   sv.Reason,
		}
		if sv.PairedSlot != nil {
			paired := sv.PairedSlot.Label()
			slot.PairedSlot = &paired
		}
		if isPool {
			occupancy, remaining := sv.Occupancy, sv.CapacityRemaining
			slot.Occupancy = &occupancy
			slot.CapacityRemaining = &remaining
		}
		resp.Slots = append(resp.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for facility=%s, date=%s, blocked=%d",
		len(resp.Slots), facility.ID, date.Format(domain.DateFormat), len(resp.Blocked))

	return resp, nil
}
