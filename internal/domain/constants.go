package domain

// Значения по умолчанию для расписания тенанта
const (
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "20:00"
	DefaultSlotDurationMinutes = 60
	DefaultAdvanceHours        = 4
)

// Границы бизнес-валидации
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240 // 4 часа
	MinAdvanceHours        = 0
	MaxAdvanceHours        = 168 // неделя

	MaxTenantNameLength   = 100
	MaxMenuNameLength     = 100
	MaxCustomerNameLength = 100
	MaxPhoneLength        = 20

	DaysPerWeek = 7
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения диапазона выдачи доступности
const (
	DefaultAvailabilityDays = 7
	MaxAvailabilityDays     = 31
)
