package apply_discount

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/discountservice"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
)

const (
	outcomeApplied  = "applied"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase use case применения промокода
type UseCase struct {
	draftRepo      DraftRepository
	catalog        FacilityCatalog
	discountClient DiscountClient
	calculator     *pricing.Calculator
	presenter      DraftPresenter
	metrics        MetricsRecorder
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	catalog FacilityCatalog,
	discountClient DiscountClient,
	calculator *pricing.Calculator,
	presenter DraftPresenter,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:      draftRepo,
		catalog:        catalog,
		discountClient: discountClient,
		calculator:     calculator,
		presenter:      presenter,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case применения промокода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Code = strings.TrimSpace(req.Code)
	uc.logger.Info("ApplyDiscount: draft=%s, code=%q", req.DraftID, req.Code)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyDiscount: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем черновик
	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("ApplyDiscount: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if draft.IsLocked() {
		uc.logger.Warn("ApplyDiscount: draft id=%s is locked", draft.ID)
		return nil, ErrDraftLocked
	}

	// 3. Пустой код снимает примененную скидку
	if req.Code == "" {
		next, err := draft.ClearDiscount()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return uc.save(ctx, draft.Revision, next, "")
	}

	if draft.State != domain.DraftSlotSelected {
		uc.logger.Warn("ApplyDiscount: draft id=%s has no slot selected", draft.ID)
		return nil, ErrSlotRequired
	}

	// 4. Считаем сумму заказа без скидки
	facility, err := uc.catalog.GetFacility(ctx, draft.FacilityID)
	if err != nil {
		uc.logger.Error("ApplyDiscount: failed to get facility id=%s: %v", draft.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	orderAmount, err := uc.calculator.BaseAmount(*facility, len(draft.Slots), draft.Persons)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to price draft: %v", ErrInternal, err)
	}

	// 5. Проверяем промокод на сервисе
	validation, err := uc.discountClient.Validate(ctx, &discountservice.ValidateRequest{
		Code:              req.Code,
		FacilityName:      facility.Name,
		FacilityType:      string(facility.Category),
		Date:              draft.Date.Format(domain.DateFormat),
		TimeSlots:         domain.SlotLabels(domain.SortSlots(draft.Slots)),
		AdditionalPlayers: draft.Persons,
		BasePrice:         facility.UnitPrice,
		OrderAmount:       orderAmount,
	})
	if err != nil {
		var rejected *discountservice.RejectedError
		if errors.As(err, &rejected) {
			uc.record(outcomeRejected)
			uc.logger.Info("ApplyDiscount: code %q rejected for draft id=%s: %s", req.Code, draft.ID, rejected.Message)
			return nil, &RejectedError{Message: rejected.Message}
		}
		uc.record(outcomeError)
		uc.logger.Error("ApplyDiscount: failed to validate code %q: %v", req.Code, err)
		return nil, fmt.Errorf("%w: failed to validate discount: %v", ErrInternal, err)
	}

	result := domain.DiscountResult{
		Code:           req.Code,
		DiscountAmount: validation.DiscountAmount,
		FinalAmount:    validation.FinalAmount,
		OrderAmount:    orderAmount,
		Message:        validation.Message,
		Fingerprint:    draft.Fingerprint(),
	}

	// 6. Проверяем согласованность сумм сервиса с нашей стоимостью
	if _, err := uc.calculator.ComputeTotal(*facility, draft.Slots, draft.Persons, result.Fingerprint, &result); err != nil {
		uc.record(outcomeError)
		uc.logger.Error("ApplyDiscount: inconsistent discount for draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	next, err := draft.ApplyDiscount(result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.record(outcomeApplied)
	return uc.save(ctx, draft.Revision, next, validation.Message)
}

func (uc *UseCase) save(ctx context.Context, expectedRevision int64, next domain.Draft, message string) (*Response, error) {
	next.UpdatedAt = time.Now()

	if err := uc.draftRepo.Update(ctx, &next, expectedRevision); err != nil {
		switch {
		case errors.Is(err, draftRepo.ErrDraftConflict):
			return nil, ErrDraftConflict
		case errors.Is(err, draftRepo.ErrDraftNotFound):
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("ApplyDiscount: failed to save draft id=%s: %v", next.ID, err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	resp, err := uc.presenter.Get(ctx, next.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to present draft: %v", ErrInternal, err)
	}

	return &Response{Draft: resp, Message: message}, nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordDiscountValidation(outcome)
	}
}
