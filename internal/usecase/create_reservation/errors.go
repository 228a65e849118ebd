package create_reservation

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("create_reservation: tenant not found")

	// ErrAccessDenied возвращается, когда актор не может действовать от имени тенанта
	ErrAccessDenied = errors.New("create_reservation: access denied")

	// ErrInvalidSource возвращается при неизвестном источнике бронирования
	ErrInvalidSource = errors.New("create_reservation: invalid booking source")

	// ErrMissingFields возвращается, когда обязательные поля пустые
	ErrMissingFields = errors.New("create_reservation: required fields are missing")

	// ErrFieldTooLong возвращается на клиентском пути при превышении длины полей
	ErrFieldTooLong = errors.New("create_reservation: field exceeds maximum length")

	// ErrInvalidDateFormat возвращается при нечитаемой дате
	ErrInvalidDateFormat = errors.New("create_reservation: invalid date format")

	// ErrInvalidTimeFormat возвращается при нечитаемом времени
	ErrInvalidTimeFormat = errors.New("create_reservation: invalid time format")

	// ErrTenantClosed возвращается, когда тенант не работает в этот день недели
	ErrTenantClosed = errors.New("create_reservation: tenant is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с сеткой слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: time does not match slot grid")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_reservation: date is in the past")

	// ErrTooLateToBook возвращается, когда слот не проходит порог advance_hours
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrMenuNotFound возвращается на клиентском пути при нераспознанном меню
	ErrMenuNotFound = errors.New("create_reservation: menu not found")

	// ErrSlotTaken возвращается, когда слот уже занят другой бронью
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
