package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// FacilityCatalog интерфейс каталога площадок
type FacilityCatalog interface {
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
}

// BookingAPIClient интерфейс клиента внешнего API бронирований
type BookingAPIClient interface {
	// GetBookingsByDate получает все бронирования площадки на дату
	GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.ExistingBooking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
