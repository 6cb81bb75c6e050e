package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == uuid.Nil {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}
	return nil
}

// validateDraft проверяет локальные условия оформления до любых сетевых вызовов
func validateDraft(draft *domain.Draft) error {
	err := draft.CanSubmit()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return ErrSubmissionInFlight
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}

// mapSelectionError переводит ошибки проверки выбора в ошибки usecase
func mapSelectionError(err error) error {
	switch {
	case errors.Is(err, slots.ErrPoolClosedForToday):
		return ErrPoolClosedForToday
	case errors.Is(err, slots.ErrCapacityExceeded):
		return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	case errors.Is(err, slots.ErrSlotNotAvailable), errors.Is(err, slots.ErrSlotNotOffered):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// mapOrderError переводит ошибки создания заказа в ошибки usecase
func mapOrderError(err error) error {
	switch {
	case errors.Is(err, bookingapi.ErrSlotConflict):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	case errors.Is(err, bookingapi.ErrOrderRejected):
		return fmt.Errorf("%w: %v", ErrOrderRejected, err)
	case errors.Is(err, bookingapi.ErrUnauthorized):
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
	}
}
