package get_availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса календаря доступности
type Request struct {
	TenantSlug string
	StartDate  string // "2026-09-15"; пустая строка означает "с сегодняшнего дня"
	Days       int    // количество дней; 0 означает дефолт
}

// Response календарь доступности по дням
type Response struct {
	TenantSlug string `json:"tenantSlug"`
	Days       []Day  `json:"days"`
}

// Day календарь одного дня
type Day struct {
	Date  string `json:"date"` // "2026-09-15"
	Open  bool   `json:"open"`
	Slots []Slot `json:"slots"`
}

// Slot слот с вычисленным статусом
type Slot struct {
	Time   string `json:"time"`   // "10:00"
	Status string `json:"status"` // closed / past_cutoff / booked / open
}

// fromDomainDay конвертирует доменный календарь дня в response
func fromDomainDay(d *domain.DayAvailability) Day {
	day := Day{
		Date:  d.Date.Format(domain.DateFormat),
		Open:  d.Open,
		Slots: make([]Slot, 0, len(d.Slots)),
	}
	for _, s := range d.Slots {
		day.Slots = append(day.Slots, Slot{
			Time:   s.Time.String(),
			Status: string(s.Status),
		})
	}
	return day
}
