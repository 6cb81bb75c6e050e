package cancel_checkout

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrNotInCheckout возвращается, когда черновик не ждет оплаты
	ErrNotInCheckout = errors.New("draft has no checkout in progress")

	// ErrDraftConflict возвращается, когда черновик был изменен параллельным запросом
	ErrDraftConflict = errors.New("draft was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
