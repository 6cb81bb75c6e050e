package open_draft

// OpenDraftRequest HTTP запрос на открытие формы бронирования
type OpenDraftRequest struct {
	FacilityID string `json:"facilityId" validate:"required"`
}
