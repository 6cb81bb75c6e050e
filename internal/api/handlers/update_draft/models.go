package update_draft

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/service/drafts/models"
)

// UpdateDraftRequest HTTP запрос на изменение формы
type UpdateDraftRequest struct {
	Action  string  `json:"action" validate:"required,oneof=select_date toggle_slot set_persons"`
	Date    *string `json:"date,omitempty" validate:"required_if=Action select_date"`
	Slot    *string `json:"slot,omitempty" validate:"required_if=Action toggle_slot"`
	Persons *int    `json:"persons,omitempty" validate:"required_if=Action set_persons"`
}

func (r *UpdateDraftRequest) ToServiceRequest(draftID uuid.UUID) *models.UpdateDraftRequest {
	return &models.UpdateDraftRequest{
		DraftID: draftID,
		Action:  r.Action,
		Date:    r.Date,
		Slot:    r.Slot,
		Persons: r.Persons,
	}
}
