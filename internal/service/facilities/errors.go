package facilities

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена в каталоге
	ErrFacilityNotFound = errors.New("facility not found")
)
