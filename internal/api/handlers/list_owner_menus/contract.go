package list_owner_menus

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

type MenuService interface {
	List(ctx context.Context, tenantSlug string, actor domain.Actor) (*models.MenuListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
