package create_owner_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "リクエストの内容が正しくありません"
	msgUnauthorized       = "認証情報が見つかりません"
	msgAccessDenied       = "この店舗を管理する権限がありません"
	msgTenantNotFound     = "店舗が見つかりません"
	msgMissingFields      = "必須項目が入力されていません"
	msgInvalidDate        = "日付の形式が正しくありません(YYYY-MM-DD)"
	msgInvalidTime        = "時間の形式が正しくありません(HH:MM)"
	msgTenantClosed       = "選択された日は定休日です"
	msgInvalidTimeSlot    = "選択された時間は予約枠と一致しません"
	msgDateInPast         = "過去の日付は予約できません"
	msgSlotTaken          = "この時間枠は既に予約されています"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantSlug}/owner/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /tenants/%s/owner/reservations - No actor in context", tenantSlug)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateOwnerReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/%s/owner/reservations - Invalid request body: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantSlug, actor))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTenantNotFound):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Tenant not found", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createReservation.ErrAccessDenied):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Access denied for user=%d", tenantSlug, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createReservation.ErrMissingFields):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Missing fields: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrInvalidDateFormat):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Invalid date: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTimeFormat):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Invalid time: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createReservation.ErrTenantClosed):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Tenant closed", tenantSlug)
			handlers.RespondBadRequest(w, msgTenantClosed)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Invalid time slot", tenantSlug)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Date in past", tenantSlug)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /tenants/%s/owner/reservations - Slot taken", tenantSlug)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /tenants/%s/owner/reservations - Failed to create reservation: %v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/%s/owner/reservations - Reservation created: id=%d, user=%d",
		tenantSlug, result.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
