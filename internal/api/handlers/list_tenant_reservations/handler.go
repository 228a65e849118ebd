package list_tenant_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidLimit   = "取得件数の指定が正しくありません"
	msgUnauthorized   = "認証情報が見つかりません"
	msgAccessDenied   = "この店舗の予約を閲覧する権限がありません"
	msgTenantNotFound = "店舗が見つかりません"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantSlug}/reservations?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /tenants/%s/reservations - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /tenants/%s/reservations - Invalid limit=%q", tenantSlug, rawLimit)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListByTenant(r.Context(), tenantSlug, actor, limit)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/%s/reservations - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /tenants/%s/reservations - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /tenants/%s/reservations - Failed to list reservations: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
