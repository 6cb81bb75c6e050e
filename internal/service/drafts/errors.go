package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден (закрыт или не открыт)
	ErrDraftNotFound = errors.New("draft not found")

	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDraftLocked возвращается при изменении черновика во время оформления заказа
	ErrDraftLocked = errors.New("draft is locked while checkout is in progress")

	// ErrDraftConflict возвращается, когда черновик был изменен параллельным запросом
	ErrDraftConflict = errors.New("draft was modified concurrently")

	// ErrSlotNotAvailable возвращается при выборе занятого слота
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrCapacityExceeded возвращается, когда количество людей превышает остаток вместимости
	ErrCapacityExceeded = errors.New("pool capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
