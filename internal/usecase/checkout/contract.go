package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft, expectedRevision int64) error
}

// CheckoutRepository интерфейс репозитория попыток оформления
type CheckoutRepository interface {
	Create(ctx context.Context, attempt *domain.CheckoutAttempt) error
	SetOrder(ctx context.Context, id uuid.UUID, orderID string, amount int64, currency string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CheckoutStatus, reason *string) error
}

// FacilityCatalog интерфейс каталога площадок
type FacilityCatalog interface {
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
}

// BookingAPIClient интерфейс клиента внешнего API бронирований
type BookingAPIClient interface {
	GetBookingsByDate(ctx context.Context, date time.Time) ([]*domain.ExistingBooking, error)
	CreateOrder(ctx context.Context, order *bookingapi.CreateOrderRequest) (*bookingapi.CreateOrderResponse, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчик попыток оформления
type MetricsRecorder interface {
	RecordCheckout(category, outcome string)
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
