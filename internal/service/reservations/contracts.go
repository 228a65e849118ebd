package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ReservationDetail, error)
	ListByTenant(ctx context.Context, tenantID int64, limit int) ([]*domain.Reservation, error)
	CountByTenantAndMonth(ctx context.Context, tenantID int64, year int, month time.Month) (map[string]int, error)
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
