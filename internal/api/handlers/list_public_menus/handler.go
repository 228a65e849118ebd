package list_public_menus

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus"
)

const (
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

// Handle GET /api/v1/tenants/{tenantSlug}/menus
// Публичная витрина: только активные пункты меню
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	result, err := h.service.ListPublic(r.Context(), tenantSlug)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/%s/menus - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /tenants/%s/menus - Failed to list menus: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
