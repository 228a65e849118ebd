package menus

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	Create(ctx context.Context, m *domain.Menu) (*domain.Menu, error)
	GetByID(ctx context.Context, id int64) (*domain.Menu, error)
	ListByTenant(ctx context.Context, tenantID int64, onlyActive bool) ([]*domain.Menu, error)
	Update(ctx context.Context, m *domain.Menu) error
	Delete(ctx context.Context, id int64) error
}

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
