package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Availability доступность одного слота
type Availability struct {
	Bookable          bool
	Reason            string // пусто, если слот доступен
	Occupancy         int    // только для бассейна
	CapacityRemaining int    // только для бассейна
}

// SlotView слот с аннотацией доступности
type SlotView struct {
	Slot       domain.TimeSlot
	PairedSlot *domain.TimeSlot // слот бассейна для комбо
	Availability
}

// DayView сетка слотов площадки на дату
type DayView struct {
	Facility   domain.Facility
	Date       time.Time
	Slots      []SlotView
	Blocked    []string // занятые метки поля и комбо
	PoolClosed bool
}

// Find возвращает представление слота, если он есть в сетке
func (d *DayView) Find(slot domain.TimeSlot) (*SlotView, bool) {
	for i := range d.Slots {
		if d.Slots[i].Slot == slot {
			return &d.Slots[i], true
		}
	}
	return nil, false
}

// Engine вычисляет сетку слотов и их доступность по правилам площадки
type Engine struct {
	rules domain.VenueRules
}

// NewEngine создает движок слотов
func NewEngine(rules domain.VenueRules) *Engine {
	return &Engine{rules: rules}
}

// Rules возвращает правила площадки
func (e *Engine) Rules() domain.VenueRules {
	return e.rules
}

// SlotsFor возвращает сетку слотов категории.
// Комбо - это слоты поля, у которых парный слот бассейна тоже заканчивается до конца дня.
func (e *Engine) SlotsFor(category domain.Category) ([]domain.TimeSlot, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	grid, err := generateFor(e.rules.ParamsFor(category))
	if err != nil {
		return nil, err
	}
	if category != domain.CategoryCombo {
		return grid, nil
	}

	dayEnd := domain.NewTimeOfDay(e.rules.Turf.EndHour, 0)
	combo := make([]domain.TimeSlot, 0, len(grid))
	for _, s := range grid {
		if !e.PairedPoolSlot(s).End.IsAfter(dayEnd) {
			combo = append(combo, s)
		}
	}
	return combo, nil
}

// PairedPoolSlot возвращает слот бассейна, который идет в паре со слотом поля в комбо:
// следующий слот сетки той же длительности
func (e *Engine) PairedPoolSlot(turf domain.TimeSlot) domain.TimeSlot {
	return turf.Shift(e.rules.Turf.Step())
}

// IsOffered проверяет, что слот входит в сетку категории
func (e *Engine) IsOffered(category domain.Category, slot domain.TimeSlot) bool {
	grid, err := e.SlotsFor(category)
	if err != nil {
		return false
	}
	for _, s := range grid {
		if s == slot {
			return true
		}
	}
	return false
}

// ExpandForSubmission возвращает слоты для заказа: комбо раскрывается в [поле, бассейн]
func (e *Engine) ExpandForSubmission(category domain.Category, selected []domain.TimeSlot) []domain.TimeSlot {
	sorted := domain.SortSlots(selected)
	if category != domain.CategoryCombo {
		return sorted
	}

	expanded := make([]domain.TimeSlot, 0, len(sorted)*2)
	for _, s := range sorted {
		expanded = append(expanded, s, e.PairedPoolSlot(s))
	}
	return expanded
}

// IsTimePassed проверяет, что от начала слота прошло больше grace минут или дата в прошлом
func (e *Engine) IsTimePassed(slot domain.TimeSlot, date, now time.Time) bool {
	if domain.DateBefore(date, now) {
		return true
	}
	if !domain.SameDay(date, now) {
		return false
	}
	return domain.TimeOfDayFromTime(now.In(date.Location())).IsAfter(slot.Start.AddMinutes(e.rules.GraceMinutes))
}

// IsPoolClosed проверяет отсечку бассейна в текущий день
func (e *Engine) IsPoolClosed(date, now time.Time) bool {
	if !domain.SameDay(date, now) {
		return false
	}
	return !domain.TimeOfDayFromTime(now.In(date.Location())).IsBefore(e.rules.PoolCutoff)
}

// IsBookable вычисляет доступность одного слота
func (e *Engine) IsBookable(
	facility domain.Facility,
	slot domain.TimeSlot,
	date time.Time,
	occupied Occupied,
	now time.Time,
) Availability {
	switch facility.Category {
	case domain.CategoryPool:
		return e.poolAvailability(facility, slot, date, occupied, now)
	case domain.CategoryCombo:
		if occupied.IsBlocked(slot) {
			return Availability{Reason: domain.ReasonBooked}
		}
		if occupied.IsBlocked(e.PairedPoolSlot(slot)) {
			return Availability{Reason: domain.ReasonPoolTimeBlocked}
		}
	default:
		if occupied.IsBlocked(slot) {
			return Availability{Reason: domain.ReasonBooked}
		}
	}

	if e.IsTimePassed(slot, date, now) {
		return Availability{Reason: domain.ReasonTimePassed}
	}
	return Availability{Bookable: true}
}

func (e *Engine) poolAvailability(
	facility domain.Facility,
	slot domain.TimeSlot,
	date time.Time,
	occupied Occupied,
	now time.Time,
) Availability {
	capacity := e.rules.PoolCapacityFor(facility)
	occupancy := occupied.PoolOccupancy(slot)

	remaining := capacity - occupancy
	if remaining < 0 {
		remaining = 0
	}

	a := Availability{
		Bookable:          true,
		Occupancy:         occupancy,
		CapacityRemaining: remaining,
	}

	switch {
	case remaining == 0:
		a.Bookable, a.Reason = false, domain.ReasonFull
	case e.IsTimePassed(slot, date, now):
		a.Bookable, a.Reason = false, domain.ReasonTimePassed
	}
	return a
}

// EvaluateDay возвращает по одному SlotView на каждый слот сетки, в порядке сетки
func (e *Engine) EvaluateDay(
	facility domain.Facility,
	date time.Time,
	bookings []*domain.ExistingBooking,
	now time.Time,
) (*DayView, error) {
	grid, err := e.SlotsFor(facility.Category)
	if err != nil {
		return nil, err
	}

	occupied := CollectOccupied(bookings, date)

	view := &DayView{
		Facility: facility,
		Date:     domain.DateOnly(date),
		Slots:    make([]SlotView, 0, len(grid)),
		Blocked:  occupied.BlockedLabels(),
	}
	if facility.Category == domain.CategoryPool {
		view.PoolClosed = e.IsPoolClosed(date, now)
	}

	for _, slot := range grid {
		sv := SlotView{
			Slot:         slot,
			Availability: e.IsBookable(facility, slot, date, occupied, now),
		}
		if facility.Category == domain.CategoryCombo {
			paired := e.PairedPoolSlot(slot)
			sv.PairedSlot = &paired
		}
		view.Slots = append(view.Slots, sv)
	}

	return view, nil
}

// PersonLimits возвращает границы счетчика людей с учетом выбранного слота бассейна
func (e *Engine) PersonLimits(facility domain.Facility, selected *SlotView) domain.PersonLimits {
	limits := e.rules.PersonLimitsFor(facility.Category)
	if facility.Category == domain.CategoryPool && selected != nil && selected.CapacityRemaining < limits.Max {
		limits.Max = selected.CapacityRemaining
	}
	return limits
}

// CheckSelection повторно проверяет выбор перед оформлением заказа
func (e *Engine) CheckSelection(
	facility domain.Facility,
	date time.Time,
	selected []domain.TimeSlot,
	persons int,
	bookings []*domain.ExistingBooking,
	now time.Time,
) error {
	if facility.Category == domain.CategoryPool && e.IsPoolClosed(date, now) {
		return ErrPoolClosedForToday
	}

	view, err := e.EvaluateDay(facility, date, bookings, now)
	if err != nil {
		return err
	}

	for _, slot := range selected {
		sv, ok := view.Find(slot)
		if !ok {
			return fmt.Errorf("%w: %s", ErrSlotNotOffered, slot.Label())
		}

		if !sv.Bookable {
			if sv.Reason == domain.ReasonFull {
				return fmt.Errorf("%w: %s is full", ErrCapacityExceeded, slot.Label())
			}
			return fmt.Errorf("%w: %s (%s)", ErrSlotNotAvailable, slot.Label(), sv.Reason)
		}

		if facility.Category == domain.CategoryPool && persons > sv.CapacityRemaining {
			return fmt.Errorf("%w: %s has %d places left, requested %d",
				ErrCapacityExceeded, slot.Label(), sv.CapacityRemaining, persons)
		}
	}

	return nil
}
