package delete_menu

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type MenuService interface {
	Delete(ctx context.Context, menuID int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
