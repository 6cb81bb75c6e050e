package slots

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// GenerateSlots генерирует сетку слотов на день.
// Слоты начинаются в startHour, длятся durationMinutes и разделены gapMinutes.
// Последний неполный интервал отбрасывается, а не обрезается.
func GenerateSlots(startHour, endHour, durationMinutes, gapMinutes int) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 || gapMinutes < 0 ||
		startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, fmt.Errorf("%w: start=%d end=%d duration=%d gap=%d",
			ErrInvalidSlotParams, startHour, endHour, durationMinutes, gapMinutes)
	}

	open := domain.NewTimeOfDay(startHour, 0)
	closeAt := domain.NewTimeOfDay(endHour, 0)

	slots := make([]domain.TimeSlot, 0)
	current := open

	for current.IsBefore(closeAt) {
		end := current.AddMinutes(durationMinutes)
		if end.IsAfter(closeAt) {
			break
		}

		slots = append(slots, domain.TimeSlot{Start: current, End: end})
		current = end.AddMinutes(gapMinutes)
	}

	return slots, nil
}

// generateFor генерирует сетку по параметрам категории
func generateFor(p domain.SlotParams) ([]domain.TimeSlot, error) {
	return GenerateSlots(p.StartHour, p.EndHour, p.DurationMinutes, p.GapMinutes)
}
