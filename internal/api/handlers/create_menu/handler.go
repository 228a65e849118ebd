package create_menu

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

const (
	msgInvalidRequestBody = "リクエストの内容が正しくありません"
	msgInvalidMenu        = "メニューの内容が正しくありません"
	msgDuplicateName      = "同じ名前のメニューが既に存在します"
	msgUnauthorized       = "認証情報が見つかりません"
	msgAccessDenied       = "この店舗のメニューを変更する権限がありません"
	msgTenantNotFound     = "店舗が見つかりません"
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

// Handle POST /api/v1/tenants/{tenantSlug}/menus
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /tenants/%s/menus - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateMenuRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/%s/menus - Invalid request body: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), tenantSlug, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrInvalidInput):
			h.logger.Warn("POST /tenants/%s/menus - Invalid menu: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidMenu)

		case errors.Is(err, menus.ErrDuplicateName):
			h.logger.Warn("POST /tenants/%s/menus - Duplicate name", tenantSlug)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, menus.ErrTenantNotFound):
			h.logger.Warn("POST /tenants/%s/menus - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, menus.ErrAccessDenied):
			h.logger.Warn("POST /tenants/%s/menus - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /tenants/%s/menus - Failed to create menu: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/%s/menus - Menu created: id=%d by user=%d", tenantSlug, result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
