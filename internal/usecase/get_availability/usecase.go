package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
)

// UseCase use case календаря доступности слотов
type UseCase struct {
	reservationRepo ReservationRepository
	tenantRepo      TenantRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tenantRepo TenantRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tenantRepo:      tenantRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: tenant=%s, start=%s, days=%d", req.TenantSlug, req.StartDate, req.Days)

	now := uc.timeProvider.Now()

	startDate, days, err := uc.resolveRange(req, now)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid request for tenant=%s: %v", req.TenantSlug, err)
		return nil, err
	}

	tenant, err := uc.tenantRepo.GetBySlug(ctx, strings.TrimSpace(req.TenantSlug))
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailability: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailability: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	// Один bulk-запрос на весь диапазон: снимок занятости консистентен
	// в рамках ответа
	endDate := startDate.AddDate(0, 0, days-1)
	reservations, err := uc.reservationRepo.ListByTenantAndDateRange(ctx, tenant.ID, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations for tenant=%d: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	calendar := buildCalendar(tenant, startDate, days, reservations, now)

	resp := &Response{
		TenantSlug: tenant.Slug,
		Days:       make([]Day, 0, len(calendar)),
	}
	for _, day := range calendar {
		resp.Days = append(resp.Days, fromDomainDay(day))
	}

	uc.logger.Info("GetAvailability: built calendar for tenant=%d, %d days, %d reservations",
		tenant.ID, days, len(reservations))

	return resp, nil
}

// resolveRange разбирает стартовую дату и зажимает количество дней в границы
func (uc *UseCase) resolveRange(req *Request, now time.Time) (time.Time, int, error) {
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if raw := strings.TrimSpace(req.StartDate); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
		}
		startDate = parsed
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultAvailabilityDays
	}
	if days < 1 {
		return time.Time{}, 0, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}
	if days > domain.MaxAvailabilityDays {
		days = domain.MaxAvailabilityDays
	}

	return startDate, days, nil
}
