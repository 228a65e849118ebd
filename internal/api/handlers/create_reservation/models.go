package create_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	MenuID        *int64  `json:"menuId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Date          string  `json:"date"`     // "2026-09-15"
	TimeSlot      string  `json:"timeSlot"` // "10:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64   `json:"id"`
	TenantID      int64   `json:"tenantId"`
	MenuID        *int64  `json:"menuId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Date          string  `json:"date"`
	TimeSlot      string  `json:"timeSlot"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время уходят сырыми строками: их разбор - зона ответственности пайплайна
func (r *CreateReservationRequest) ToUseCaseRequest(tenantSlug string) *createReservation.Request {
	return &createReservation.Request{
		TenantSlug:    tenantSlug,
		MenuID:        r.MenuID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		Source:        domain.SourceCustomer,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		TenantID:      resp.TenantID,
		MenuID:        resp.MenuID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		Date:          resp.Date,
		TimeSlot:      resp.TimeSlot,
		CreatedAt:     resp.CreatedAt,
	}
}
