package get_availability

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("get_availability: tenant not found")

	// ErrInvalidDateFormat возвращается при нечитаемой стартовой дате
	ErrInvalidDateFormat = errors.New("get_availability: invalid date format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
