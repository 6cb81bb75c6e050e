package verify_payment

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда заказ не найден в сессии
	ErrAttemptNotFound = errors.New("checkout attempt not found")

	// ErrAttemptNotPending возвращается, когда платеж по заказу уже обработан
	ErrAttemptNotPending = errors.New("checkout attempt is already completed")

	// ErrPaymentFailed возвращается, когда платеж не прошел проверку
	ErrPaymentFailed = errors.New("payment failed")

	// ErrSlotNotAvailable возвращается, когда слот заняли до подтверждения платежа
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
