package verify_payment

import (
	"github.com/google/uuid"

	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// Request данные платежа от платежного шлюза
type Request struct {
	DraftID   uuid.UUID // черновик сессии
	OrderID   string
	PaymentID string
	Signature string
}

// Response результат подтверждения
type Response struct {
	Message string
	OrderID string
	Draft   *draftModels.DraftResponse // сброшенная форма; nil, если черновик уже закрыт
}
