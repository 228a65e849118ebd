package delete_menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus"
)

const (
	msgInvalidID    = "メニューIDが正しくありません"
	msgUnauthorized = "認証情報が見つかりません"
	msgAccessDenied = "このメニューを削除する権限がありません"
	msgMenuNotFound = "メニューが見つかりません"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/menus/{menuId}
// У существующих броней с этим меню menu_id обнуляется, брони сохраняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["menuId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /menus/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /menus/%d - No actor in context", id)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), id, actor); err != nil {
		switch {
		case errors.Is(err, menus.ErrMenuNotFound), errors.Is(err, menus.ErrTenantNotFound):
			h.logger.Warn("DELETE /menus/%d - Not found", id)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, menus.ErrAccessDenied):
			h.logger.Warn("DELETE /menus/%d - Access denied for user=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /menus/%d - Failed to delete menu: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /menus/%d - Menu deleted by user=%d", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
