package create_owner_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateOwnerReservationRequest HTTP request model
// Block=true закрывает слот без клиента (уведомления не отправляются),
// NoNotify подавляет уведомления у обычной владельческой брони
type CreateOwnerReservationRequest struct {
	MenuID        *int64  `json:"menuId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Date          string  `json:"date"`
	TimeSlot      string  `json:"timeSlot"`
	Block         bool    `json:"block,omitempty"`
	NoNotify      bool    `json:"noNotify,omitempty"`
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
func (r *CreateOwnerReservationRequest) ToUseCaseRequest(tenantSlug string, actor domain.Actor) *createReservation.Request {
	source := domain.SourceOwner
	if r.Block {
		source = domain.SourceBlock
	}

	return &createReservation.Request{
		TenantSlug:    tenantSlug,
		MenuID:        r.MenuID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		Source:        source,
		Actor:         &actor,
		NoNotify:      r.NoNotify,
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
