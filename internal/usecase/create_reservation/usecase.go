package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
)

// UseCase use case создания брони
// Пайплайн: RECEIVED -> VALIDATED -> CONFLICT_CHECKED -> COMMITTED / REJECTED
// Гейты идут строго по порядку, первый проваленный определяет причину отказа;
// внутренних ретраев нет
type UseCase struct {
	reservationRepo ReservationRepository
	tenantRepo      TenantRepository
	menuRepo        MenuRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tenantRepo TenantRepository,
	menuRepo MenuRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tenantRepo:      tenantRepo,
		menuRepo:        menuRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: tenant=%s, date=%s, time=%s, source=%s",
		req.TenantSlug, req.Date, req.TimeSlot, req.Source)

	if !req.Source.Valid() {
		uc.logger.Warn("CreateReservation: invalid source=%s", req.Source)
		return nil, ErrInvalidSource
	}

	// Тенант нужен до гейтов: расписание определяет валидность слота
	tenant, err := uc.tenantRepo.GetBySlug(ctx, strings.TrimSpace(req.TenantSlug))
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("CreateReservation: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// Владельческие источники требуют актора с правами на тенанта
	if req.Source.RequiresActor() {
		if req.Actor == nil || !req.Actor.CanManageTenant(tenant) {
			uc.logger.Warn("CreateReservation: access denied for source=%s, tenant=%d", req.Source, tenant.ID)
			return nil, ErrAccessDenied
		}
	}

	input, err := uc.validate(req, tenant)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed for tenant=%d: %v", tenant.ID, err)
		return nil, err
	}

	// Гейт 7: меню должно быть активным пунктом того же тенанта
	// Клиентский путь жестко отклоняет, владельческие молча отбрасывают
	resolvedMenuID, err := uc.resolveMenu(ctx, req, tenant)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		TenantID:      tenant.ID,
		MenuID:        resolvedMenuID,
		CustomerName:  input.customerName,
		CustomerPhone: input.customerPhone,
		CustomerEmail: input.customerEmail,
		Date:          input.date,
		TimeSlot:      input.timeSlot,
	}

	// Гейт 8: единственный атомарный INSERT, конфликт за слот решает
	// unique index в хранилище. Предварительной проверки занятости нет
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot taken, tenant=%d, date=%s, time=%s",
				tenant.ID, req.Date, req.TimeSlot)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, tenant=%d", created.ID, tenant.ID)

	// Уведомления строго после фиксации брони и строго best-effort:
	// блокировки слотов и NoNotify их не порождают
	if req.Source.Notifies() && !req.NoNotify {
		uc.notifier.DispatchAsync(tenant, created)
	}

	return &Response{
		ID:            created.ID,
		TenantID:      created.TenantID,
		MenuID:        created.MenuID,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		CustomerEmail: created.CustomerEmail,
		Date:          created.Date.Format(domain.DateFormat),
		TimeSlot:      created.TimeSlot.String(),
		CreatedAt:     created.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// validate прогоняет гейты 1-6 и возвращает нормализованные поля
func (uc *UseCase) validate(req *Request, tenant *domain.Tenant) (*normalizedInput, error) {
	// Гейт 1: обязательные поля
	if err := validateRequiredFields(req); err != nil {
		return nil, err
	}

	// Гейт 2: ограничения длины согласно уровню доверия
	name, phone, err := normalizeFields(req)
	if err != nil {
		return nil, err
	}

	// Гейт 3: разбор даты и времени, нечитаемый формат отклоняется отдельно
	date, timeSlot, err := parseDateTime(req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Гейт 4: рабочий день
	if !tenant.Schedule.IsOpenDay(date) {
		return nil, ErrTenantClosed
	}

	// Гейт 5: время из сетки слотов, дата не в прошлом
	if !tenant.Schedule.IsValidSlotTime(timeSlot) {
		return nil, ErrInvalidTimeSlot
	}
	if isDateInPast(date, now) {
		return nil, ErrDateInPast
	}

	// Гейт 6: порог advance_hours действует только на клиентском пути,
	// владелец закрывает и ближайшие слоты
	if !req.Source.BypassesLeadTime() {
		if !tenant.Schedule.IsBookable(date, timeSlot, now) {
			return nil, ErrTooLateToBook
		}
	}

	var email *string
	if req.CustomerEmail != nil {
		trimmed := strings.TrimSpace(*req.CustomerEmail)
		if trimmed != "" {
			email = &trimmed
		}
	}

	return &normalizedInput{
		customerName:  name,
		customerPhone: phone,
		customerEmail: email,
		date:          date,
		timeSlot:      timeSlot,
	}, nil
}

// resolveMenu проверяет выбранное меню против тенанта
func (uc *UseCase) resolveMenu(ctx context.Context, req *Request, tenant *domain.Tenant) (*int64, error) {
	if req.MenuID == nil {
		return nil, nil
	}

	menu, err := uc.menuRepo.GetByID(ctx, *req.MenuID)
	if err != nil && !errors.Is(err, menuRepo.ErrMenuNotFound) {
		uc.logger.Error("CreateReservation: failed to get menu id=%d: %v", *req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
	}

	valid := err == nil && menu.TenantID == tenant.ID && menu.IsActive

	if valid {
		return req.MenuID, nil
	}

	// Легаси-поведение владельческих путей: нераспознанное меню
	// молча отбрасывается, бронь создается без него
	if req.Source.DropsUnknownMenu() {
		uc.logger.Warn("CreateReservation: dropping unresolved menu id=%d for tenant=%d", *req.MenuID, tenant.ID)
		return nil, nil
	}

	uc.logger.Warn("CreateReservation: menu id=%d not found for tenant=%d", *req.MenuID, tenant.ID)
	return nil, ErrMenuNotFound
}
