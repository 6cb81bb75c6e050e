package cancel_checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft, expectedRevision int64) error
}

// CheckoutRepository интерфейс репозитория попыток оформления
type CheckoutRepository interface {
	GetPendingByDraftID(ctx context.Context, draftID uuid.UUID) (*domain.CheckoutAttempt, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CheckoutStatus, reason *string) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// DraftPresenter собирает ответ по черновику
type DraftPresenter interface {
	Get(ctx context.Context, id uuid.UUID) (*draftModels.DraftResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
