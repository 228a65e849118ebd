package update_tenant_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tenants"
	"github.com/m04kA/SMC-ReservationService/internal/service/tenants/models"
)

const (
	msgInvalidRequestBody = "リクエストの内容が正しくありません"
	msgInvalidSchedule    = "営業時間の設定が正しくありません"
	msgUnauthorized       = "認証情報が見つかりません"
	msgAccessDenied       = "この店舗の設定を変更する権限がありません"
	msgTenantNotFound     = "店舗が見つかりません"
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

// Handle PUT /api/v1/tenants/{tenantSlug}/config
// Конфигурация валидируется и применяется целиком, существующие брони не трогаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /tenants/%s/config - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/%s/config - Invalid request body: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSchedule(r.Context(), tenantSlug, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrInvalidSchedule):
			h.logger.Warn("PUT /tenants/%s/config - Invalid schedule: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/%s/config - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, tenants.ErrAccessDenied):
			h.logger.Warn("PUT /tenants/%s/config - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /tenants/%s/config - Failed to update config: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/%s/config - Schedule updated by user=%d", tenantSlug, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
