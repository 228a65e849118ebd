package list_owner_menus

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus"
)

const (
	msgUnauthorized   = "認証情報が見つかりません"
	msgAccessDenied   = "この店舗のメニューを閲覧する権限がありません"
	msgTenantNotFound = "店舗が見つかりません"
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

// Handle GET /api/v1/tenants/{tenantSlug}/owner/menus
// Список меню для владельца, включая неактивные пункты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /tenants/%s/owner/menus - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), tenantSlug, actor)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/%s/owner/menus - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, menus.ErrAccessDenied):
			h.logger.Warn("GET /tenants/%s/owner/menus - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /tenants/%s/owner/menus - Failed to list menus: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
