package apply_discount

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftLocked возвращается, когда идет оформление заказа
	ErrDraftLocked = errors.New("draft is locked while checkout is in progress")

	// ErrDraftConflict возвращается, когда черновик был изменен параллельным запросом
	ErrDraftConflict = errors.New("draft was modified concurrently")

	// ErrSlotRequired возвращается, когда слот еще не выбран
	ErrSlotRequired = errors.New("select a time slot before applying a discount")

	// ErrDiscountRejected возвращается, когда промокод отклонен сервисом
	ErrDiscountRejected = errors.New("discount code rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// RejectedError отказ с сообщением сервиса промокодов
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return ErrDiscountRejected.Error() + ": " + e.Message
}

func (e *RejectedError) Unwrap() error {
	return ErrDiscountRejected
}
