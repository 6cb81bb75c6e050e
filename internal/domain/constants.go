package domain

// Default venue rules
const (
	DefaultTurfStartHour        = 6
	DefaultTurfEndHour          = 24
	DefaultTurfSlotMinutes      = 60
	DefaultTurfGapMinutes       = 5
	DefaultPoolStartHour        = 9
	DefaultPoolEndHour          = 21
	DefaultPoolBlockMinutes     = 180
	DefaultPoolCapacity         = 25
	DefaultPoolCutoffHour       = 21
	DefaultGraceMinutes         = 5
	DefaultPerPersonSurcharge   = 100 // ₹ за дополнительного игрока
	DefaultMaxAdditionalPlayers = 4
	DefaultMaxPoolPersons       = 25
	DefaultTimezone             = "Asia/Kolkata"
)

// Unavailability reasons shown next to a slot
const (
	ReasonBooked          = "Booked"
	ReasonTimePassed      = "Time Passed"
	ReasonPoolTimeBlocked = "Pool Time Blocked"
	ReasonFull            = "Full"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при вычислении занятых слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCanceled,
	StatusFailed,
	StatusRefunded,
}
