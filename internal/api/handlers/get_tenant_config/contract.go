package get_tenant_config

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/tenants/models"
)

type TenantService interface {
	GetConfig(ctx context.Context, tenantSlug string, actor domain.Actor) (*models.TenantConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
