package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// normalizedInput провалидированные и нормализованные поля запроса
type normalizedInput struct {
	customerName  string
	customerPhone string
	customerEmail *string
	date          time.Time
	timeSlot      types.TimeString
}

// validateRequiredFields проверяет обязательные поля после TrimSpace
func validateRequiredFields(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrMissingFields)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrMissingFields)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrMissingFields)
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		return fmt.Errorf("%w: time slot is required", ErrMissingFields)
	}
	return nil
}

// normalizeFields применяет ограничения длины согласно уровню доверия источника:
// клиентский путь жестко отклоняет превышение, владельческие пути молча обрезают
func normalizeFields(req *Request) (name, phone string, err error) {
	name = strings.TrimSpace(req.CustomerName)
	phone = strings.TrimSpace(req.CustomerPhone)

	if req.Source.TruncatesLongFields() {
		name = truncateRunes(name, domain.MaxCustomerNameLength)
		phone = truncateRunes(phone, domain.MaxPhoneLength)
		return name, phone, nil
	}

	if len([]rune(name)) > domain.MaxCustomerNameLength {
		return "", "", fmt.Errorf("%w: customer name exceeds %d characters",
			ErrFieldTooLong, domain.MaxCustomerNameLength)
	}
	if len([]rune(phone)) > domain.MaxPhoneLength {
		return "", "", fmt.Errorf("%w: customer phone exceeds %d characters",
			ErrFieldTooLong, domain.MaxPhoneLength)
	}

	return name, phone, nil
}

// parseDateTime разбирает сырые дату и время
// Нечитаемый формат отклоняется своей ошибкой, отличимой от валидного,
// но недоступного для брони значения
func parseDateTime(rawDate, rawTime string) (time.Time, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(rawDate))
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, rawDate)
	}

	timeSlot, err := types.NewTimeStringFromString(strings.TrimSpace(rawTime))
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, rawTime)
	}

	return date, timeSlot, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// truncateRunes обрезает строку до limit рун
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
