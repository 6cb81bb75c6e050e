package apply_discount

import (
	"strings"

	"github.com/google/uuid"

	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
	applyDiscount "github.com/m04kA/SMC-VenueBooking/internal/usecase/apply_discount"
)

// ApplyDiscountRequest HTTP запрос; пустой код снимает скидку
type ApplyDiscountRequest struct {
	Code string `json:"code" validate:"max=64"`
}

// ApplyDiscountResponse черновик с пересчитанной стоимостью
type ApplyDiscountResponse struct {
	Message string                     `json:"message,omitempty"`
	Draft   *draftModels.DraftResponse `json:"draft"`
}

func (r *ApplyDiscountRequest) ToUseCaseRequest(draftID uuid.UUID) *applyDiscount.Request {
	return &applyDiscount.Request{
		DraftID: draftID,
		Code:    strings.TrimSpace(r.Code),
	}
}

func FromUseCaseResponse(resp *applyDiscount.Response) *ApplyDiscountResponse {
	return &ApplyDiscountResponse{
		Message: resp.Message,
		Draft:   resp.Draft,
	}
}
