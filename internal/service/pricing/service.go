package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Quote итоговая стоимость заказа
type Quote struct {
	BaseAmount     int64
	DiscountAmount int64
	FinalAmount    int64
	DiscountCode   string // пусто, если скидка не применена
}

// Calculator считает стоимость по правилам площадки
type Calculator struct {
	surcharge int64
}

// NewCalculator создает калькулятор стоимости
func NewCalculator(rules domain.VenueRules) *Calculator {
	return &Calculator{surcharge: rules.PerPersonSurcharge}
}

// BaseAmount считает стоимость без скидки.
// Поле и комбо: количество слотов * цена + люди * доплата.
// Бассейн: люди * цена, количество слотов не влияет.
func (c *Calculator) BaseAmount(facility domain.Facility, slotCount, persons int) (int64, error) {
	if persons < 0 {
		return 0, ErrNegativePersons
	}

	if facility.Category.IsPerPerson() {
		return int64(persons) * facility.UnitPrice, nil
	}
	return int64(slotCount)*facility.UnitPrice + int64(persons)*c.surcharge, nil
}

// ComputeTotal считает итог с учетом скидки.
// Скидка применяется, только если она была проверена для тех же входных данных (fingerprint);
// суммы скидки берутся из ответа сервиса проверки и не пересчитываются.
func (c *Calculator) ComputeTotal(
	facility domain.Facility,
	slots []domain.TimeSlot,
	persons int,
	fingerprint string,
	discount *domain.DiscountResult,
) (*Quote, error) {
	base, err := c.BaseAmount(facility, len(slots), persons)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		BaseAmount:  base,
		FinalAmount: base,
	}

	if !discount.Matches(fingerprint) {
		return quote, nil
	}

	if discount.DiscountAmount < 0 || discount.DiscountAmount > base || discount.FinalAmount < 0 {
		return nil, fmt.Errorf("%w: base=%d discount=%d final=%d",
			ErrInvalidDiscount, base, discount.DiscountAmount, discount.FinalAmount)
	}

	quote.DiscountAmount = discount.DiscountAmount
	quote.FinalAmount = discount.FinalAmount
	quote.DiscountCode = discount.Code
	return quote, nil
}

// QuoteDraft считает стоимость черновика
func (c *Calculator) QuoteDraft(facility domain.Facility, draft domain.Draft) (*Quote, error) {
	return c.ComputeTotal(facility, draft.Slots, draft.Persons, draft.Fingerprint(), draft.Discount)
}
