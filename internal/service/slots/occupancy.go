package slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Occupied занятость площадки на дату, собранная из существующих бронирований
type Occupied struct {
	blocked   map[string]struct{}
	occupancy map[string]int
}

// CollectOccupied собирает занятые слоты за дату.
// Активные бронирования поля и комбо блокируют свои метки (комбо блокирует и поле, и бассейн);
// бронирования бассейна только увеличивают заполненность блока.
func CollectOccupied(bookings []*domain.ExistingBooking, date time.Time) Occupied {
	o := Occupied{
		blocked:   make(map[string]struct{}),
		occupancy: make(map[string]int),
	}

	for _, b := range bookings {
		// Пропускаем отмененные бронирования и бронирования на другую дату
		if b == nil || !b.IsActive() {
			continue
		}
		if !b.Date.IsZero() && !domain.SameDay(date, b.Date) {
			continue
		}

		switch b.FacilityType {
		case domain.CategoryTurf, domain.CategoryCombo:
			for _, label := range b.TimeSlots {
				o.blocked[normalizeLabel(label)] = struct{}{}
			}
		case domain.CategoryPool:
			for _, label := range b.TimeSlots {
				o.occupancy[normalizeLabel(label)] += b.AdditionalPlayers
			}
		}
	}

	return o
}

// IsBlocked проверяет, что слот занят бронированием поля или комбо
func (o Occupied) IsBlocked(slot domain.TimeSlot) bool {
	_, ok := o.blocked[slot.Label()]
	return ok
}

// PoolOccupancy возвращает количество людей, уже записанных в блок бассейна
func (o Occupied) PoolOccupancy(slot domain.TimeSlot) int {
	return o.occupancy[slot.Label()]
}

// BlockedLabels возвращает занятые метки без дублей, по времени начала
func (o Occupied) BlockedLabels() []string {
	labels := make([]string, 0, len(o.blocked))
	for l := range o.blocked {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, errA := domain.ParseTimeSlot(labels[i])
		b, errB := domain.ParseTimeSlot(labels[j])
		if errA != nil || errB != nil {
			return labels[i] < labels[j]
		}
		return a.Start < b.Start
	})
	return labels
}

// normalizeLabel приводит метку к каноническому виду ("06:00 AM" -> "6:00 AM")
func normalizeLabel(label string) string {
	slot, err := domain.ParseTimeSlot(label)
	if err != nil {
		return label
	}
	return slot.Label()
}
