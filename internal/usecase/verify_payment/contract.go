package verify_payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft, expectedRevision int64) error
}

// CheckoutRepository интерфейс репозитория попыток оформления
type CheckoutRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.CheckoutAttempt, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CheckoutStatus, reason *string) error
}

// PaymentClient интерфейс проверки платежа на бэкенде
type PaymentClient interface {
	VerifyPayment(ctx context.Context, payment *bookingapi.VerifyPaymentRequest) (*bookingapi.VerifyPaymentResponse, error)
}

// EventPublisher интерфейс публикации событий о бронированиях
type EventPublisher interface {
	PublishConfirmed(ctx context.Context, data events.BookingData) error
	PublishPaymentFailed(ctx context.Context, data events.BookingData) error
}

// DraftPresenter собирает ответ по черновику
type DraftPresenter interface {
	Get(ctx context.Context, id uuid.UUID) (*draftModels.DraftResponse, error)
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
