package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "リクエストの内容が正しくありません"
	msgTenantNotFound     = "店舗が見つかりません"
	msgMissingFields      = "必須項目が入力されていません"
	msgFieldTooLong       = "入力された文字数が上限を超えています"
	msgInvalidDate        = "日付の形式が正しくありません(YYYY-MM-DD)"
	msgInvalidTime        = "時間の形式が正しくありません(HH:MM)"
	msgTenantClosed       = "選択された日は定休日です"
	msgInvalidTimeSlot    = "選択された時間は予約枠と一致しません"
	msgDateInPast         = "過去の日付は予約できません"
	msgTooLateToBook      = "この時間枠の受付は締め切られました"
	msgMenuNotFound       = "選択されたメニューが見つかりません"
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

// Handle POST /api/v1/tenants/{tenantSlug}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/%s/reservations - Invalid request body: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantSlug))
	if err != nil {
		h.respondError(w, tenantSlug, err)
		return
	}

	h.logger.Info("POST /tenants/%s/reservations - Reservation created: id=%d", tenantSlug, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, tenantSlug string, err error) {
	switch {
	case errors.Is(err, createReservation.ErrTenantNotFound):
		h.logger.Warn("POST /tenants/%s/reservations - Tenant not found", tenantSlug)
		handlers.RespondNotFound(w, msgTenantNotFound)

	case errors.Is(err, createReservation.ErrMissingFields):
		h.logger.Warn("POST /tenants/%s/reservations - Missing fields: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgMissingFields)

	case errors.Is(err, createReservation.ErrFieldTooLong):
		h.logger.Warn("POST /tenants/%s/reservations - Field too long: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgFieldTooLong)

	case errors.Is(err, createReservation.ErrInvalidDateFormat):
		h.logger.Warn("POST /tenants/%s/reservations - Invalid date: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, createReservation.ErrInvalidTimeFormat):
		h.logger.Warn("POST /tenants/%s/reservations - Invalid time: %v", tenantSlug, err)
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, createReservation.ErrTenantClosed):
		h.logger.Warn("POST /tenants/%s/reservations - Tenant closed", tenantSlug)
		handlers.RespondBadRequest(w, msgTenantClosed)

	case errors.Is(err, createReservation.ErrInvalidTimeSlot):
		h.logger.Warn("POST /tenants/%s/reservations - Invalid time slot", tenantSlug)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)

	case errors.Is(err, createReservation.ErrDateInPast):
		h.logger.Warn("POST /tenants/%s/reservations - Date in past", tenantSlug)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, createReservation.ErrTooLateToBook):
		h.logger.Warn("POST /tenants/%s/reservations - Too late to book", tenantSlug)
		handlers.RespondBadRequest(w, msgTooLateToBook)

	case errors.Is(err, createReservation.ErrMenuNotFound):
		h.logger.Warn("POST /tenants/%s/reservations - Menu not found", tenantSlug)
		handlers.RespondBadRequest(w, msgMenuNotFound)

	case errors.Is(err, createReservation.ErrSlotTaken):
		h.logger.Warn("POST /tenants/%s/reservations - Slot taken", tenantSlug)
		handlers.RespondConflict(w, msgSlotTaken)

	default:
		h.logger.Error("POST /tenants/%s/reservations - Failed to create reservation: %v", tenantSlug, err)
		handlers.RespondInternalError(w)
	}
}
