package create_menu

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

type MenuService interface {
	Create(ctx context.Context, tenantSlug string, actor domain.Actor, req *models.CreateMenuRequest) (*models.MenuResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
