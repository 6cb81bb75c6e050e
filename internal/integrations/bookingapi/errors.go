package bookingapi

import "errors"

var (
	// ErrSlotConflict возвращается, когда бэкенд отклонил заказ из-за занятого слота (409)
	ErrSlotConflict = errors.New("booking api: slot already booked")

	// ErrOrderRejected возвращается, когда бэкенд отклонил заказ как некорректный
	ErrOrderRejected = errors.New("booking api: order rejected")

	// ErrPaymentNotVerified возвращается, когда подпись платежа не прошла проверку
	ErrPaymentNotVerified = errors.New("booking api: payment verification failed")

	// ErrUnauthorized возвращается при 401/403 от бэкенда
	ErrUnauthorized = errors.New("booking api: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("booking api client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("booking api client: invalid response")
)
