package create_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на создание брони
// Date и TimeSlot приходят сырыми строками: разбор формата - часть пайплайна,
// нечитаемый ввод отклоняется отдельной ошибкой, а не валидным-но-недоступным
type Request struct {
	TenantSlug    string
	MenuID        *int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Date          string // "2026-09-15"
	TimeSlot      string // "10:00"

	// Source определяет уровень доверия: customer / owner / block
	Source domain.BookingSource
	// Actor обязателен для владельческих источников
	Actor *domain.Actor
	// NoNotify подавляет уведомления для этой брони
	NoNotify bool
}

// Response модель ответа с созданной бронью
type Response struct {
	ID            int64
	TenantID      int64
	MenuID        *int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Date          string
	TimeSlot      string
	CreatedAt     string
}
