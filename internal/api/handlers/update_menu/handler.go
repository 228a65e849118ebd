package update_menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

const (
	msgInvalidID          = "メニューIDが正しくありません"
	msgInvalidRequestBody = "リクエストの内容が正しくありません"
	msgInvalidMenu        = "メニューの内容が正しくありません"
	msgDuplicateName      = "同じ名前のメニューが既に存在します"
	msgUnauthorized       = "認証情報が見つかりません"
	msgAccessDenied       = "このメニューを変更する権限がありません"
	msgMenuNotFound       = "メニューが見つかりません"
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

// Handle PUT /api/v1/menus/{menuId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["menuId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /menus/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /menus/%d - No actor in context", id)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateMenuRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /menus/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrInvalidInput):
			h.logger.Warn("PUT /menus/%d - Invalid menu: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidMenu)

		case errors.Is(err, menus.ErrDuplicateName):
			h.logger.Warn("PUT /menus/%d - Duplicate name", id)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, menus.ErrMenuNotFound), errors.Is(err, menus.ErrTenantNotFound):
			h.logger.Warn("PUT /menus/%d - Not found", id)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, menus.ErrAccessDenied):
			h.logger.Warn("PUT /menus/%d - Access denied for user=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /menus/%d - Failed to update menu: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /menus/%d - Menu updated by user=%d", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
