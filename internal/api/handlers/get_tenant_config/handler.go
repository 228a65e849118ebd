package get_tenant_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tenants"
)

const (
	msgUnauthorized   = "認証情報が見つかりません"
	msgAccessDenied   = "この店舗の設定を閲覧する権限がありません"
	msgTenantNotFound = "店舗が見つかりません"
)

type Handler struct {
	service TenantService
	logger  Logger
}

func NewHandler(service TenantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantSlug}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /tenants/%s/config - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetConfig(r.Context(), tenantSlug, actor)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/%s/config - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, tenants.ErrAccessDenied):
			h.logger.Warn("GET /tenants/%s/config - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /tenants/%s/config - Failed to get config: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
