package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
)

// Действия над черновиком
const (
	ActionSelectDate = "select_date"
	ActionToggleSlot = "toggle_slot"
	ActionSetPersons = "set_persons"
)

// UpdateDraftRequest изменение черновика одним действием
type UpdateDraftRequest struct {
	DraftID uuid.UUID
	Action  string
	Date    *string // для select_date, формат YYYY-MM-DD
	Slot    *string // для toggle_slot, формат "6:00 AM - 7:00 AM"
	Persons *int    // для set_persons
}

// DiscountResponse примененная скидка
type DiscountResponse struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalAmount    int64  `json:"finalAmount"`
	Message        string `json:"message,omitempty"`
}

// QuoteResponse стоимость заказа
type QuoteResponse struct {
	BaseAmount     int64 `json:"baseAmount"`
	DiscountAmount int64 `json:"discountAmount"`
	FinalAmount    int64 `json:"finalAmount"`
}

// DraftResponse состояние формы бронирования
type DraftResponse struct {
	ID         string            `json:"id"`
	FacilityID string            `json:"facilityId"`
	Category   string            `json:"category"`
	State      string            `json:"state"`
	Date       *string           `json:"date,omitempty"`
	Slots      []string          `json:"slots"`
	PairedSlot *string           `json:"pairedSlot,omitempty"` // слот бассейна для комбо
	Persons    int               `json:"persons"`
	MinPersons int               `json:"minPersons"`
	MaxPersons int               `json:"maxPersons"`
	Discount   *DiscountResponse `json:"discount,omitempty"`
	Quote      QuoteResponse     `json:"quote"`
	CanSubmit  bool              `json:"canSubmit"`
	Revision   int64             `json:"revision"`
}

// FromDomainDraft конвертирует черновик в ответ
func FromDomainDraft(
	draft domain.Draft,
	quote *pricing.Quote,
	limits domain.PersonLimits,
	paired *domain.TimeSlot,
) *DraftResponse {
	resp := &DraftResponse{
		ID:         draft.ID.String(),
		FacilityID: draft.FacilityID,
		Category:   string(draft.Category),
		State:      string(draft.State),
		Slots:      domain.SlotLabels(domain.SortSlots(draft.Slots)),
		Persons:    draft.Persons,
		MinPersons: limits.Min,
		MaxPersons: limits.Max,
		CanSubmit:  draft.CanSubmit() == nil,
		Revision:   draft.Revision,
	}

	if draft.Date != nil {
		date := draft.Date.Format(domain.DateFormat)
		resp.Date = &date
	}

	if paired != nil {
		label := paired.Label()
		resp.PairedSlot = &label
	}

	if quote != nil {
		resp.Quote = QuoteResponse{
			BaseAmount:     quote.BaseAmount,
			DiscountAmount: quote.DiscountAmount,
			FinalAmount:    quote.FinalAmount,
		}
	}

	if draft.Discount != nil {
		resp.Discount = &DiscountResponse{
			Code:           draft.Discount.Code,
			DiscountAmount: draft.Discount.DiscountAmount,
			FinalAmount:    draft.Discount.FinalAmount,
			Message:        draft.Discount.Message,
		}
	}

	return resp
}
