package update_menu

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

type MenuService interface {
	Update(ctx context.Context, menuID int64, actor domain.Actor, req *models.UpdateMenuRequest) (*models.MenuResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
