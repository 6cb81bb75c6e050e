package cancel_checkout

import (
	"github.com/google/uuid"

	draftModels "github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// Request отмена оплаты (окно платежа закрыто пользователем)
type Request struct {
	DraftID uuid.UUID
}

// Response разблокированный черновик
type Response struct {
	Draft *draftModels.DraftResponse
}
