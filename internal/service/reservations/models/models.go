package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID            int64    `json:"id"`
	TenantID      int64    `json:"tenantId"`
	MenuID        *int64   `json:"menuId,omitempty"`
	MenuName      *string  `json:"menuName,omitempty"`
	MenuPrice     *float64 `json:"menuPrice,omitempty"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	CustomerEmail *string  `json:"customerEmail,omitempty"`
	Date          string   `json:"date"`     // "2026-09-15"
	TimeSlot      string   `json:"timeSlot"` // "10:00"
	CreatedAt     string   `json:"createdAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// MonthlyCountsResponse количество броней по датам месяца
// Даты без броней в map отсутствуют
type MonthlyCountsResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Counts map[string]int `json:"counts"` // "2026-09-15" -> 3
}

// FromDomainReservation конвертирует доменную бронь в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID,
		TenantID:      r.TenantID,
		MenuID:        r.MenuID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          r.Date.Format(domain.DateFormat),
		TimeSlot:      r.TimeSlot.String(),
		CreatedAt:     r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainReservationDetail конвертирует детальную бронь в response
func FromDomainReservationDetail(d *domain.ReservationDetail) *ReservationResponse {
	resp := FromDomainReservation(&d.Reservation)
	resp.MenuName = d.MenuName
	resp.MenuPrice = d.MenuPrice
	return resp
}

// FromDomainReservationList конвертирует список доменных броней в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}
	return resp
}
