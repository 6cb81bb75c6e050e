package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_available_slots"
)

// SlotsResponse сетка слотов площадки на дату
type SlotsResponse struct {
	FacilityID string         `json:"facilityId"`
	Category   string         `json:"category"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
	Blocked    []string       `json:"blocked"`
	PoolClosed bool           `json:"poolClosed"`
}

type SlotResponse struct {
	Label             string  `json:"label"`
	PairedSlot        *string `json:"pairedSlot,omitempty"`
	Bookable          bool    `json:"bookable"`
	Reason            string  `json:"reason,omitempty"`
	Occupancy         *int    `json:"occupancy,omitempty"`
	CapacityRemaining *int    `json:"capacityRemaining,omitempty"`
}

// ToUseCaseRequest парсит дату в часовом поясе площадки
func ToUseCaseRequest(facilityID, date string, loc *time.Location) (*getAvailableSlots.Request, error) {
	parsed, err := domain.ParseDate(date, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		FacilityID: facilityID,
		Date:       parsed,
	}, nil
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Label:             s.Label,
			PairedSlot:        s.PairedSlot,
			Bookable:          s.Bookable,
			Reason:            s.Reason,
			Occupancy:         s.Occupancy,
			CapacityRemaining: s.CapacityRemaining,
		})
	}

	blocked := resp.Blocked
	if blocked == nil {
		blocked = []string{}
	}

	return &SlotsResponse{
		FacilityID: resp.FacilityID,
		Category:   resp.Category,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
		Blocked:    blocked,
		PoolClosed: resp.PoolClosed,
	}
}
