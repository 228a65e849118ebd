package list_public_menus

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

type MenuService interface {
	ListPublic(ctx context.Context, tenantSlug string) (*models.MenuListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
