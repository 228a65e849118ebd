package update_notification_settings

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

// Handle PUT /api/v1/tenants/{tenantSlug}/notification-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /tenants/%s/notification-settings - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateNotificationSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/%s/notification-settings - Invalid request body: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateNotificationSettings(r.Context(), tenantSlug, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/%s/notification-settings - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, tenants.ErrAccessDenied):
			h.logger.Warn("PUT /tenants/%s/notification-settings - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /tenants/%s/notification-settings - Failed to update settings: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/%s/notification-settings - Settings updated by user=%d", tenantSlug, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
