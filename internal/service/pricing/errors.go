package pricing

import "errors"

var (
	// ErrNegativePersons возвращается при отрицательном количестве людей
	ErrNegativePersons = errors.New("pricing: persons must not be negative")

	// ErrInvalidDiscount возвращается, когда скидка не согласована с суммой заказа
	ErrInvalidDiscount = errors.New("pricing: discount does not match order amount")
)
