package checkout

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrSubmissionInFlight возвращается при повторном оформлении того же черновика
	ErrSubmissionInFlight = errors.New("checkout already in progress")

	// ErrDraftConflict возвращается, когда черновик был изменен параллельным запросом
	ErrDraftConflict = errors.New("draft was modified concurrently")

	// ErrPoolClosedForToday возвращается после закрытия бронирования бассейна на сегодня
	ErrPoolClosedForToday = errors.New("pool bookings are closed for today")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrCapacityExceeded возвращается, когда в блоке бассейна не хватает мест
	ErrCapacityExceeded = errors.New("pool capacity exceeded")

	// ErrStaleDiscount возвращается, когда скидка была проверена для других параметров заказа
	ErrStaleDiscount = errors.New("discount is no longer valid for this order, apply it again")

	// ErrOrderRejected возвращается, когда бэкенд отклонил заказ
	ErrOrderRejected = errors.New("order rejected")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDraftGone возвращается, когда черновик закрыли во время создания заказа
	ErrDraftGone = errors.New("draft was closed while the order was being created")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
