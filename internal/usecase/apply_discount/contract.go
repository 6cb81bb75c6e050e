package apply_discount

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/discountservice"
	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft, expectedRevision int64) error
}

// FacilityCatalog интерфейс каталога площадок
type FacilityCatalog interface {
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
}

// DiscountClient интерфейс клиента сервиса промокодов
type DiscountClient interface {
	Validate(ctx context.Context, req *discountservice.ValidateRequest) (*discountservice.Validation, error)
}

// DraftPresenter собирает ответ по черновику
type DraftPresenter interface {
	Get(ctx context.Context, id uuid.UUID) (*draftModels.DraftResponse, error)
}

// MetricsRecorder счетчик проверок промокодов
type MetricsRecorder interface {
	RecordDiscountValidation(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
