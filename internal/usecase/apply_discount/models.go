package apply_discount

import (
	"github.com/google/uuid"

	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// Request применение промокода к черновику; пустой код снимает скидку
type Request struct {
	DraftID uuid.UUID
	Code    string
}

// Response черновик после применения скидки
type Response struct {
	Draft   *draftModels.DraftResponse
	Message string // сообщение сервиса промокодов
}
