package get_reservation_counts

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
	msgInvalidPeriod  = "年月の指定が正しくありません"
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

// Handle GET /api/v1/tenants/{tenantSlug}/reservation-counts?year=YYYY&month=M
// Агрегат для календаря владельца: количество броней по датам месяца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /tenants/%s/reservation-counts - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	year, errYear := strconv.Atoi(query.Get("year"))
	month, errMonth := strconv.Atoi(query.Get("month"))
	if errYear != nil || errMonth != nil {
		h.logger.Warn("GET /tenants/%s/reservation-counts - Invalid period: year=%q, month=%q",
			tenantSlug, query.Get("year"), query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.MonthlyCounts(r.Context(), tenantSlug, actor, year, month)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /tenants/%s/reservation-counts - Invalid input: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reservations.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/%s/reservation-counts - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /tenants/%s/reservation-counts - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /tenants/%s/reservation-counts - Failed to get counts: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
