package discountservice

// ValidateRequest тело POST /api/auth/discount-codes/validate
type ValidateRequest struct {
	Code              string   `json:"code"`
	FacilityName      string   `json:"facilityName"`
	FacilityType      string   `json:"facilityType"`
	Date              string   `json:"date"`
	TimeSlots         []string `json:"timeSlots"`
	AdditionalPlayers int      `json:"additionalPlayers"`
	BasePrice         int64    `json:"basePrice"`
	OrderAmount       int64    `json:"orderAmount"`
}

// ValidateResponse результат проверки промокода
type ValidateResponse struct {
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
	OrderAmount    float64 `json:"orderAmount"`
	Message        string  `json:"message"`
}

// Validation результат проверки в целых рупиях
type Validation struct {
	DiscountAmount int64
	FinalAmount    int64
	OrderAmount    int64
	Message        string
}

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
