package slots

import "errors"

var (
	// ErrInvalidSlotParams возвращается при некорректных параметрах сетки слотов
	ErrInvalidSlotParams = errors.New("slots: invalid slot parameters")

	// ErrSlotNotOffered возвращается, когда слот не входит в сетку категории
	ErrSlotNotOffered = errors.New("slots: slot is not offered for this facility")

	// ErrSlotNotAvailable возвращается, когда слот занят или время прошло
	ErrSlotNotAvailable = errors.New("slots: slot not available")

	// ErrCapacityExceeded возвращается, когда количество людей превышает остаток вместимости бассейна
	ErrCapacityExceeded = errors.New("slots: pool capacity exceeded")

	// ErrPoolClosedForToday возвращается после времени закрытия бассейна в текущий день
	ErrPoolClosedForToday = errors.New("slots: pool is closed for today")
)
