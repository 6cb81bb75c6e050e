package checkout

import "github.com/google/uuid"

// Request оформление заказа по черновику сессии
type Request struct {
	DraftID uuid.UUID
}

// Response заказ платежного шлюза
type Response struct {
	AttemptID      uuid.UUID
	OrderID        string
	Amount         int64 // сумма заказа в минимальных единицах валюты
	Currency       string
	KeyID          string
	TimeSlots      []string
	BaseAmount     int64
	DiscountAmount int64
	FinalAmount    int64
}
