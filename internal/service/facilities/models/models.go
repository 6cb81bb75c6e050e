package models

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// FacilityResponse площадка каталога с параметрами формы бронирования
type FacilityResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Category           string `json:"category"`
	UnitPrice          int64  `json:"unitPrice"`
	IsPerPerson        bool   `json:"isPerPerson"`
	MultiSelect        bool   `json:"multiSelect"`
	MinPersons         int    `json:"minPersons"`
	MaxPersons         int    `json:"maxPersons"`
	PerPersonSurcharge int64  `json:"perPersonSurcharge"` // 0 для бассейна
	Capacity           int    `json:"capacity,omitempty"` // вместимость бассейна
	SlotMinutes        int    `json:"slotMinutes"`
}

// FromDomainFacility конвертирует площадку в ответ
func FromDomainFacility(f domain.Facility, rules domain.VenueRules) *FacilityResponse {
	limits := rules.PersonLimitsFor(f.Category)

	resp := &FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Category:    string(f.Category),
		UnitPrice:   f.UnitPrice,
		IsPerPerson: f.Category.IsPerPerson(),
		MultiSelect: f.Category.AllowsMultipleSlots(),
		MinPersons:  limits.Min,
		MaxPersons:  limits.Max,
		SlotMinutes: rules.ParamsFor(f.Category).DurationMinutes,
	}

	if f.Category == domain.CategoryPool {
		resp.Capacity = rules.PoolCapacityFor(f)
	} else {
		resp.PerPersonSurcharge = rules.PerPersonSurcharge
	}

	return resp
}
