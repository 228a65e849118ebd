package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для управления бронями владельцем
// Создание броней живет в usecase-слое: там сходятся валидация,
// конфликт за слот и уведомления
type Service struct {
	reservationRepo ReservationRepository
	tenantRepo      TenantRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	tenantRepo TenantRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tenantRepo:      tenantRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID с данными меню
// Доступно только владельцу тенанта брони
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actor.UserID)

	detail, err := s.getReservationChecked(ctx, id, actor, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservationDetail(detail), nil
}

// Delete удаляет бронь (отмена)
// Слот мгновенно возвращается в выдачу доступности
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, actor.UserID)

	if _, err := s.getReservationChecked(ctx, id, actor, "Delete"); err != nil {
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// ListByTenant получает брони тенанта (новые первыми)
// limit <= 0 означает без ограничения
func (s *Service) ListByTenant(ctx context.Context, tenantSlug string, actor domain.Actor, limit int) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByTenant: fetching reservations for tenant slug=%s by user=%d, limit=%d", tenantSlug, actor.UserID, limit)

	tenant, err := s.getTenantBySlugChecked(ctx, tenantSlug, actor, "ListByTenant")
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.ListByTenant(ctx, tenant.ID, limit)
	if err != nil {
		s.logger.Error("ListByTenant: repository error for tenant=%d: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: ListByTenant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByTenant: successfully fetched %d reservations for tenant=%d", len(reservations), tenant.ID)
	return models.FromDomainReservationList(reservations), nil
}

// MonthlyCounts возвращает количество броней по датам месяца
// Используется календарем владельца для подсветки загруженности
func (s *Service) MonthlyCounts(ctx context.Context, tenantSlug string, actor domain.Actor, year, month int) (*models.MonthlyCountsResponse, error) {
	s.logger.Info("MonthlyCounts: fetching counts for tenant slug=%s, %d-%02d by user=%d", tenantSlug, year, month, actor.UserID)

	if month < 1 || month > 12 {
		s.logger.Warn("MonthlyCounts: invalid month=%d for tenant slug=%s", month, tenantSlug)
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if year < 2000 || year > 2200 {
		s.logger.Warn("MonthlyCounts: invalid year=%d for tenant slug=%s", year, tenantSlug)
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}

	tenant, err := s.getTenantBySlugChecked(ctx, tenantSlug, actor, "MonthlyCounts")
	if err != nil {
		return nil, err
	}

	counts, err := s.reservationRepo.CountByTenantAndMonth(ctx, tenant.ID, year, time.Month(month))
	if err != nil {
		s.logger.Error("MonthlyCounts: repository error for tenant=%d: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: MonthlyCounts - repository error: %v", ErrInternal, err)
	}

	return &models.MonthlyCountsResponse{
		Year:   year,
		Month:  month,
		Counts: counts,
	}, nil
}

// Вспомогательные методы

// getReservationChecked получает бронь и проверяет права актора на ее тенанта
func (s *Service) getReservationChecked(ctx context.Context, id int64, actor domain.Actor, op string) (*domain.ReservationDetail, error) {
	detail, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if _, err := s.getTenantChecked(ctx, detail.TenantID, actor, op); err != nil {
		return nil, err
	}

	return detail, nil
}

// getTenantChecked получает тенанта по ID и проверяет права доступа актора
func (s *Service) getTenantChecked(ctx context.Context, tenantID int64, actor domain.Actor, op string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("%s: tenant=%d not found", op, tenantID)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("%s: repository error for tenant=%d: %v", op, tenantID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return s.checkAccess(tenant, actor, op)
}

// getTenantBySlugChecked получает тенанта по slug и проверяет права доступа актора
func (s *Service) getTenantBySlugChecked(ctx context.Context, tenantSlug string, actor domain.Actor, op string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("%s: tenant slug=%s not found", op, tenantSlug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("%s: repository error for tenant slug=%s: %v", op, tenantSlug, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return s.checkAccess(tenant, actor, op)
}

func (s *Service) checkAccess(tenant *domain.Tenant, actor domain.Actor, op string) (*domain.Tenant, error) {
	if !actor.CanManageTenant(tenant) {
		s.logger.Warn("%s: access denied for user=%d to tenant=%d", op, actor.UserID, tenant.ID)
		return nil, ErrAccessDenied
	}
	return tenant, nil
}
