package domain

import "time"

// Menu услуга тенанта, прикрепляемая к броням
// Имя уникально в пределах тенанта; неактивное меню нельзя прикрепить
// к новой брони, но существующие брони сохраняют ссылку
type Menu struct {
	ID          int64
	TenantID    int64
	Name        string
	Description string
	Price       *float64
	IsActive    bool
	CreatedAt   time.Time
}
