package cancel_checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	checkoutRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/checkout"
	draftRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/draft"
)

const cancelReason = "payment dismissed by user"

// UseCase use case отмены оформления: попытка помечается abandoned, черновик разблокируется
type UseCase struct {
	draftRepo    DraftRepository
	checkoutRepo CheckoutRepository
	txManager    TransactionManager
	presenter    DraftPresenter
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	checkoutRepo CheckoutRepository,
	txManager TransactionManager,
	presenter DraftPresenter,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		checkoutRepo: checkoutRepo,
		txManager:    txManager,
		presenter:    presenter,
		logger:       logger,
	}
}

// Execute выполняет use case отмены оформления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelCheckout: draft=%s", req.DraftID)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		draft, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		if draft.State != domain.DraftSubmitted {
			return ErrNotInCheckout
		}

		attempt, err := uc.checkoutRepo.GetPendingByDraftID(txCtx, draft.ID)
		switch {
		case err == nil:
			reason := cancelReason
			err := uc.checkoutRepo.UpdateStatus(txCtx, attempt.ID, domain.CheckoutPending, domain.CheckoutAbandoned, &reason)
			if errors.Is(err, checkoutRepo.ErrStatusChanged) {
				// оплата уже проверена параллельным запросом
				return ErrNotInCheckout
			}
			if err != nil {
				return fmt.Errorf("%w: failed to abandon attempt: %v", ErrInternal, err)
			}
		case errors.Is(err, checkoutRepo.ErrAttemptNotFound):
			uc.logger.Warn("CancelCheckout: no pending attempt for draft id=%s", draft.ID)
		default:
			return fmt.Errorf("%w: failed to get attempt: %v", ErrInternal, err)
		}

		next, err := draft.Fail()
		if err != nil {
			return ErrNotInCheckout
		}
		next.UpdatedAt = time.Now()

		if err := uc.draftRepo.Update(txCtx, &next, draft.Revision); err != nil {
			if errors.Is(err, draftRepo.ErrDraftConflict) {
				return ErrDraftConflict
			}
			return fmt.Errorf("%w: failed to unlock draft: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CancelCheckout: draft=%s: %v", req.DraftID, err)
		return nil, err
	}

	resp, err := uc.presenter.Get(ctx, req.DraftID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to present draft: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelCheckout: draft=%s unlocked", req.DraftID)
	return &Response{Draft: resp}, nil
}
