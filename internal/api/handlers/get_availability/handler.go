package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

const (
	msgTenantNotFound = "店舗が見つかりません"
	msgInvalidDate    = "日付の形式が正しくありません(YYYY-MM-DD)"
	msgInvalidDays    = "取得日数の指定が正しくありません"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantSlug}/availability?date=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]
	query := r.URL.Query()

	days := 0
	if rawDays := query.Get("days"); rawDays != "" {
		parsed, err := strconv.Atoi(rawDays)
		if err != nil {
			h.logger.Warn("GET /tenants/%s/availability - Invalid days=%q", tenantSlug, rawDays)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	req := &getAvailability.Request{
		TenantSlug: tenantSlug,
		StartDate:  query.Get("date"),
		Days:       days,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/%s/availability - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDateFormat):
			h.logger.Warn("GET /tenants/%s/availability - Invalid date: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tenants/%s/availability - Invalid input: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /tenants/%s/availability - Failed to get availability: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/%s/availability - Returned %d days", tenantSlug, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
