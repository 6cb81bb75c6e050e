package verify_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	checkoutRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/checkout"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
)

const (
	outcomeVerified      = "verified"
	outcomePaymentFailed = "payment_failed"
)

// UseCase use case подтверждения платежа
type UseCase struct {
	draftRepo     DraftRepository
	checkoutRepo  CheckoutRepository
	paymentClient PaymentClient
	publisher     EventPublisher
	presenter     DraftPresenter
	metrics       MetricsRecorder
	rules         domain.VenueRules
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	checkoutRepo CheckoutRepository,
	paymentClient PaymentClient,
	publisher EventPublisher,
	presenter DraftPresenter,
	metrics MetricsRecorder,
	rules domain.VenueRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:     draftRepo,
		checkoutRepo:  checkoutRepo,
		paymentClient: paymentClient,
		publisher:     publisher,
		presenter:     presenter,
		metrics:       metrics,
		rules:         rules,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения платежа. Повторных попыток нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifyPayment: draft=%s, order=%s, payment=%s", req.DraftID, req.OrderID, req.PaymentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("VerifyPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Попытка должна принадлежать черновику сессии и ждать оплаты
	attempt, err := uc.checkoutRepo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, checkoutRepo.ErrAttemptNotFound) {
			uc.logger.Warn("VerifyPayment: order=%s not found", req.OrderID)
			return nil, ErrAttemptNotFound
		}
		uc.logger.Error("VerifyPayment: failed to get attempt for order=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to get checkout attempt: %v", ErrInternal, err)
	}

	if attempt.DraftID != req.DraftID {
		uc.logger.Warn("VerifyPayment: order=%s belongs to draft=%s, not %s", req.OrderID, attempt.DraftID, req.DraftID)
		return nil, ErrAttemptNotFound
	}

	if !attempt.IsPending() {
		uc.logger.Warn("VerifyPayment: order=%s already %s", req.OrderID, attempt.Status)
		return nil, ErrAttemptNotPending
	}

	// 3. Проверяем подпись платежа на бэкенде
	verified, err := uc.paymentClient.VerifyPayment(ctx, &bookingapi.VerifyPaymentRequest{
		RazorpayOrderID:   req.OrderID,
		RazorpayPaymentID: req.PaymentID,
		RazorpaySignature: req.Signature,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrPaymentNotVerified):
			uc.fail(ctx, attempt, req.PaymentID, err.Error())
			return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		case errors.Is(err, bookingapi.ErrSlotConflict):
			uc.fail(ctx, attempt, req.PaymentID, err.Error())
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, bookingapi.ErrUnauthorized):
			return nil, ErrUnauthorized
		}
		// Результат платежа неизвестен: попытка остается pending для повторной проверки
		uc.logger.Error("VerifyPayment: verify-payment failed for order=%s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to verify payment: %v", ErrInternal, err)
	}

	// 4. Платеж подтвержден: фиксируем статус, только если попытку не закрыл параллельный запрос
	if err := uc.markVerified(ctx, attempt); err != nil {
		if errors.Is(err, ErrAttemptNotPending) {
			uc.logger.Warn("VerifyPayment: order=%s completed concurrently", req.OrderID)
			return nil, err
		}
		uc.logger.Error("VerifyPayment: failed to mark attempt id=%s verified: %v", attempt.ID, err)
		return nil, err
	}
	uc.record(attempt, outcomeVerified)

	draftAlive := uc.confirmDraft(ctx, attempt)

	if err := uc.publisher.PublishConfirmed(ctx, events.FromAttempt(attempt, req.PaymentID, "")); err != nil {
		uc.logger.Warn("VerifyPayment: booking.confirmed not published for order=%s: %v", req.OrderID, err)
	}

	uc.logger.Info("VerifyPayment: order=%s confirmed", req.OrderID)

	resp := &Response{Message: verified.Message, OrderID: req.OrderID}
	if draftAlive {
		resp.Draft, err = uc.presenter.Get(ctx, attempt.DraftID)
		if err != nil {
			uc.logger.Warn("VerifyPayment: failed to present draft id=%s: %v", attempt.DraftID, err)
		}
	}
	return resp, nil
}

// markVerified переводит попытку в verified.
// Отмененная во время проверки попытка тоже подтверждается: оплата уже прошла.
func (uc *UseCase) markVerified(ctx context.Context, attempt *domain.CheckoutAttempt) error {
	err := uc.checkoutRepo.UpdateStatus(ctx, attempt.ID, domain.CheckoutPending, domain.CheckoutVerified, nil)
	if errors.Is(err, checkoutRepo.ErrStatusChanged) {
		uc.logger.Warn("VerifyPayment: attempt id=%s left pending during verification", attempt.ID)
		err = uc.checkoutRepo.UpdateStatus(ctx, attempt.ID, domain.CheckoutAbandoned, domain.CheckoutVerified, nil)
	}
	if errors.Is(err, checkoutRepo.ErrStatusChanged) {
		// уже verified или failed
		return ErrAttemptNotPending
	}
	if err != nil {
		return fmt.Errorf("%w: failed to update checkout attempt: %v", ErrInternal, err)
	}
	return nil
}

// fail помечает попытку неуспешной, разблокирует черновик и публикует событие
func (uc *UseCase) fail(ctx context.Context, attempt *domain.CheckoutAttempt, paymentID, reason string) {
	uc.logger.Warn("VerifyPayment: order=%s failed: %s", attempt.OrderID, reason)

	err := uc.checkoutRepo.UpdateStatus(ctx, attempt.ID, domain.CheckoutPending, domain.CheckoutFailed, &reason)
	if errors.Is(err, checkoutRepo.ErrStatusChanged) {
		// попытку уже закрыли, черновик разблокирован без нас
		uc.logger.Warn("VerifyPayment: attempt id=%s already completed, failure not recorded", attempt.ID)
		return
	}
	if err != nil {
		uc.logger.Error("VerifyPayment: failed to mark attempt id=%s failed: %v", attempt.ID, err)
	}
	uc.record(attempt, outcomePaymentFailed)

	uc.transitionDraft(ctx, attempt, func(d domain.Draft) (domain.Draft, error) {
		return d.Fail()
	})

	if err := uc.publisher.PublishPaymentFailed(ctx, events.FromAttempt(attempt, paymentID, reason)); err != nil {
		uc.logger.Warn("VerifyPayment: booking.payment_failed not published for order=%s: %v", attempt.OrderID, err)
	}
}

// confirmDraft сбрасывает форму, если черновик все еще держит оплаченный выбор,
// даже если его успели разблокировать. Возвращает false, если черновик закрыт.
func (uc *UseCase) confirmDraft(ctx context.Context, attempt *domain.CheckoutAttempt) bool {
	draft, ok := uc.loadDraft(ctx, attempt)
	if !ok {
		return false
	}

	next, err := draft.ConfirmPaid(attempt.Date, attempt.TimeSlots, uc.rules.InitialPersons(draft.Category))
	if err != nil {
		uc.logger.Warn("VerifyPayment: draft id=%s moved on (revision %d, attempt %d), left as is: %v",
			draft.ID, draft.Revision, attempt.DraftRevision, err)
		return true
	}
	uc.save(ctx, draft, next)
	return true
}

// transitionDraft применяет переход, только если черновик все еще в состоянии этой попытки
func (uc *UseCase) transitionDraft(
	ctx context.Context,
	attempt *domain.CheckoutAttempt,
	transition func(domain.Draft) (domain.Draft, error),
) {
	draft, ok := uc.loadDraft(ctx, attempt)
	if !ok {
		return
	}

	if draft.Revision != attempt.DraftRevision {
		uc.logger.Warn("VerifyPayment: draft id=%s moved on (revision %d, attempt %d), left as is",
			draft.ID, draft.Revision, attempt.DraftRevision)
		return
	}

	next, err := transition(*draft)
	if err != nil {
		uc.logger.Warn("VerifyPayment: draft id=%s transition rejected: %v", draft.ID, err)
		return
	}
	uc.save(ctx, draft, next)
}

func (uc *UseCase) loadDraft(ctx context.Context, attempt *domain.CheckoutAttempt) (*domain.Draft, bool) {
	draft, err := uc.draftRepo.GetByID(ctx, attempt.DraftID)
	if err != nil {
		if !errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Error("VerifyPayment: failed to get draft id=%s: %v", attempt.DraftID, err)
		}
		return nil, false
	}
	return draft, true
}

func (uc *UseCase) save(ctx context.Context, current *domain.Draft, next domain.Draft) {
	next.UpdatedAt = uc.timeProvider.Now()
	if err := uc.draftRepo.Update(ctx, &next, current.Revision); err != nil {
		uc.logger.Warn("VerifyPayment: failed to update draft id=%s: %v", current.ID, err)
	}
}

func (uc *UseCase) record(attempt *domain.CheckoutAttempt, outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordCheckout(string(attempt.Category), outcome)
	}
}
