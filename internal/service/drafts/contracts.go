package drafts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.Draft) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft, expectedRevision int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FacilityCatalog интерфейс каталога площадок
type FacilityCatalog interface {
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
}

// BookingAPIClient интерфейс клиента внешнего API бронирований
type BookingAPIClient interface {
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
