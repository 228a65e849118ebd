package models

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request модели

// CreateMenuRequest запрос на создание пункта меню
type CreateMenuRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"` // по умолчанию true
}

// UpdateMenuRequest запрос на обновление пункта меню
// nil-поля остаются без изменений
type UpdateMenuRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// Response модели

// MenuResponse ответ с данными пункта меню
type MenuResponse struct {
	ID          int64    `json:"id"`
	TenantID    int64    `json:"tenantId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// MenuListResponse ответ со списком пунктов меню
type MenuListResponse struct {
	Menus []*MenuResponse `json:"menus"`
}

// FromDomainMenu конвертирует доменный пункт меню в response
func FromDomainMenu(m *domain.Menu) *MenuResponse {
	return &MenuResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		IsActive:    m.IsActive,
	}
}

// FromDomainMenuList конвертирует список доменных пунктов меню в response
func FromDomainMenuList(menus []*domain.Menu) *MenuListResponse {
	resp := &MenuListResponse{
		Menus: make([]*MenuResponse, 0, len(menus)),
	}
	for _, m := range menus {
		resp.Menus = append(resp.Menus, FromDomainMenu(m))
	}
	return resp
}
