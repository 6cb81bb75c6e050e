package apply_discount

import (
	"fmt"

	"github.com/google/uuid"
)

const maxCodeLength = 64

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DraftID == uuid.Nil {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if len(req.Code) > maxCodeLength {
		return fmt.Errorf("%w: code is too long", ErrInvalidInput)
	}

	return nil
}
