package menus

import "errors"

var (
	// ErrMenuNotFound возвращается, когда пункт меню не найден
	ErrMenuNotFound = errors.New("menu not found")

	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateName возвращается при дубликате имени меню в рамках тенанта
	ErrDuplicateName = errors.New("menu name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
