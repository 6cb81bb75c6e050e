package get_available_slots

import "time"

// Request модель запроса на получение слотов
type Request struct {
	FacilityID string    // ID площадки
	Date       time.Time // Дата в часовом поясе площадки (без времени)
}

// Response сетка слотов площадки на дату
type Response struct {
	FacilityID string
	Category   string
	Date       time.Time
	Slots      []Slot
	Blocked    []string // занятые метки поля и комбо
	PoolClosed bool     // бассейн закрыт для бронирования на сегодня
}

// Slot модель временного слота
type Slot struct {
	Label             string  // "6:00 AM - 7:00 AM"
	PairedSlot        *string // слот бассейна для комбо
	Bookable          bool
	Reason            string // причина недоступности
	Occupancy         *int   // только для бассейна
	CapacityRemaining *int   // только для бассейна
}
