package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
)

const (
	defaultCurrency = "INR"

	outcomeCreated     = "created"
	outcomeRejected    = "rejected"
	outcomeOrderFailed = "order_failed"
	outcomeAbandoned   = "abandoned"
)

// UseCase use case оформления заказа по черновику
type UseCase struct {
	draftRepo     DraftRepository
	checkoutRepo  CheckoutRepository
	catalog       FacilityCatalog
	bookingClient BookingAPIClient
	engine        *slots.Engine
	calculator    *pricing.Calculator
	txManager     TransactionManager
	metrics       MetricsRecorder
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	checkoutRepo CheckoutRepository,
	catalog FacilityCatalog,
	bookingClient BookingAPIClient,
	engine *slots.Engine,
	calculator *pricing.Calculator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:     draftRepo,
		checkoutRepo:  checkoutRepo,
		catalog:       catalog,
		bookingClient: bookingClient,
		engine:        engine,
		calculator:    calculator,
		txManager:     txManager,
		metrics:       metrics,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case оформления заказа.
// Черновик блокируется (submitted) до подтверждения или отказа платежа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: draft=%s", req.DraftID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем черновик и проверяем локальные условия
	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("Checkout: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if err := validateDraft(draft); err != nil {
		uc.logger.Warn("Checkout: draft id=%s not ready: %v", draft.ID, err)
		return nil, err
	}

	facility, err := uc.catalog.GetFacility(ctx, draft.FacilityID)
	if err != nil {
		uc.logger.Error("Checkout: failed to get facility id=%s: %v", draft.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().In(uc.location)
	date := *draft.Date

	// 3. Бассейн закрывается для бронирования на сегодня после отсечки
	if facility.Category == domain.CategoryPool && uc.engine.IsPoolClosed(date, now) {
		uc.logger.Warn("Checkout: pool closed for today, draft id=%s", draft.ID)
		uc.record(facility.Category, outcomeRejected)
		return nil, ErrPoolClosedForToday
	}

	// 4. Повторно проверяем доступность по актуальным бронированиям
	bookings, err := uc.bookingClient.GetBookingsByDate(ctx, date)
	if err != nil {
		uc.logger.Error("Checkout: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if err := uc.engine.CheckSelection(*facility, date, draft.Slots, draft.Persons, bookings, now); err != nil {
		uc.logger.Warn("Checkout: selection of draft id=%s no longer valid: %v", draft.ID, err)
		uc.record(facility.Category, outcomeRejected)
		return nil, mapSelectionError(err)
	}

	// 5. Скидка должна быть проверена для текущих параметров заказа
	fingerprint := draft.Fingerprint()
	if draft.Discount != nil && !draft.Discount.Matches(fingerprint) {
		uc.logger.Warn("Checkout: stale discount %q on draft id=%s", draft.Discount.Code, draft.ID)
		uc.record(facility.Category, outcomeRejected)
		return nil, ErrStaleDiscount
	}

	quote, err := uc.calculator.QuoteDraft(*facility, *draft)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to price draft: %v", ErrInternal, err)
	}

	// 6. Комбо уходит в заказ парой [поле, бассейн]
	timeSlots := domain.SlotLabels(uc.engine.ExpandForSubmission(facility.Category, draft.Slots))

	// 7. Блокируем черновик и сохраняем попытку в одной транзакции
	submitted, err := draft.Submit()
	if err != nil {
		return nil, validateDraft(draft)
	}
	submitted.UpdatedAt = now

	attempt := &domain.CheckoutAttempt{
		ID:            uuid.New(),
		DraftID:       draft.ID,
		DraftRevision: submitted.Revision,
		FacilityID:    facility.ID,
		Category:      facility.Category,
		Date:          date,
		TimeSlots:     timeSlots,
		Persons:       draft.Persons,
		Amount:        quote.FinalAmount,
		Currency:      defaultCurrency,
		Status:        domain.CheckoutPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if draft.Discount != nil {
		attempt.DiscountCode = draft.Discount.Code
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.draftRepo.Update(txCtx, &submitted, draft.Revision); err != nil {
			switch {
			case errors.Is(err, draftRepo.ErrDraftConflict):
				return ErrDraftConflict
			case errors.Is(err, draftRepo.ErrDraftNotFound):
				return ErrDraftNotFound
			}
			return fmt.Errorf("%w: failed to submit draft: %v", ErrInternal, err)
		}

		if err := uc.checkoutRepo.Create(txCtx, attempt); err != nil {
			return fmt.Errorf("%w: failed to create checkout attempt: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("Checkout: failed to lock draft id=%s: %v", draft.ID, err)
		return nil, err
	}

	// 8. Создаем заказ на бэкенде
	order, err := uc.bookingClient.CreateOrder(ctx, &bookingapi.CreateOrderRequest{
		FacilityName:      facility.Name,
		FacilityType:      string(facility.Category),
		Date:              date.Format(domain.DateFormat),
		TimeSlots:         timeSlots,
		AdditionalPlayers: draft.Persons,
		BasePrice:         facility.UnitPrice,
		DiscountCode:      attempt.DiscountCode,
	})
	if err != nil {
		uc.logger.Warn("Checkout: create-order failed for draft id=%s: %v", draft.ID, err)
		uc.record(facility.Category, outcomeOrderFailed)
		uc.failAttempt(ctx, attempt, submitted, err.Error())
		return nil, mapOrderError(err)
	}

	// 9. Черновик могли закрыть или изменить, пока шел запрос
	current, err := uc.draftRepo.GetByID(ctx, draft.ID)
	if err != nil && !errors.Is(err, draftRepo.ErrDraftNotFound) {
		uc.logger.Error("Checkout: failed to reload draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to reload draft: %v", ErrInternal, err)
	}
	if current == nil || current.Revision != submitted.Revision {
		uc.logger.Warn("Checkout: draft id=%s closed during create-order, order=%s abandoned",
			draft.ID, order.RazorpayOrderID)
		uc.record(facility.Category, outcomeAbandoned)
		uc.setStatus(ctx, attempt.ID, domain.CheckoutAbandoned, "draft closed during create-order")
		return nil, ErrDraftGone
	}

	// 10. Сохраняем данные заказа для проверки платежа
	currency := order.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	if err := uc.checkoutRepo.SetOrder(ctx, attempt.ID, order.RazorpayOrderID, order.Amount, currency); err != nil {
		uc.logger.Error("Checkout: failed to store order=%s for attempt id=%s: %v",
			order.RazorpayOrderID, attempt.ID, err)
		return nil, fmt.Errorf("%w: failed to store order: %v", ErrInternal, err)
	}

	uc.record(facility.Category, outcomeCreated)
	uc.logger.Info("Checkout: order=%s created for draft id=%s, amount=%d %s",
		order.RazorpayOrderID, draft.ID, order.Amount, currency)

	return &Response{
		AttemptID:      attempt.ID,
		OrderID:        order.RazorpayOrderID,
		Amount:         order.Amount,
		Currency:       currency,
		KeyID:          order.KeyID,
		TimeSlots:      timeSlots,
		BaseAmount:     quote.BaseAmount,
		DiscountAmount: quote.DiscountAmount,
		FinalAmount:    quote.FinalAmount,
	}, nil
}

// failAttempt помечает попытку неуспешной и возвращает черновик к выбору
func (uc *UseCase) failAttempt(ctx context.Context, attempt *domain.CheckoutAttempt, submitted domain.Draft, reason string) {
	uc.setStatus(ctx, attempt.ID, domain.CheckoutFailed, reason)

	failed, err := submitted.Fail()
	if err != nil {
		uc.logger.Error("Checkout: cannot unlock draft id=%s: %v", submitted.ID, err)
		return
	}
	failed.UpdatedAt = uc.timeProvider.Now()

	if err := uc.draftRepo.Update(ctx, &failed, submitted.Revision); err != nil {
		// черновик закрыт или изменен - разблокировать нечего
		uc.logger.Warn("Checkout: draft id=%s not unlocked: %v", submitted.ID, err)
	}
}

func (uc *UseCase) setStatus(ctx context.Context, id uuid.UUID, status domain.CheckoutStatus, reason string) {
	if err := uc.checkoutRepo.UpdateStatus(ctx, id, domain.CheckoutPending, status, &reason); err != nil {
		uc.logger.Error("Checkout: failed to mark attempt id=%s %s: %v", id, status, err)
	}
}

func (uc *UseCase) record(category domain.Category, outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordCheckout(string(category), outcome)
	}
}
