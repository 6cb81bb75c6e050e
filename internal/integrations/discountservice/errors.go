package discountservice

import "errors"

var (
	// ErrDiscountRejected возвращается, когда сервис отклонил промокод
	ErrDiscountRejected = errors.New("discount service: code rejected")

	// ErrUnauthorized возвращается при 401/403 от сервиса
	ErrUnauthorized = errors.New("discount service: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("discount service client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("discount service client: invalid response")
)

// RejectedError отказ сервиса с сообщением для пользователя
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return ErrDiscountRejected.Error() + ": " + e.Message
}

func (e *RejectedError) Unwrap() error {
	return ErrDiscountRejected
}
