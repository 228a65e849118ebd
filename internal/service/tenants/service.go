package tenants

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-ReservationService/internal/service/tenants/models"
)

// Service сервис для работы с конфигурацией тенантов
type Service struct {
	tenantRepo TenantRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса тенантов
func NewService(
	tenantRepo TenantRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetConfig получает конфигурацию тенанта
// Доступно только владельцу тенанта
func (s *Service) GetConfig(ctx context.Context, tenantSlug string, actor domain.Actor) (*models.TenantConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for tenant slug=%s by user=%d", tenantSlug, actor.UserID)

	tenant, err := s.getTenantChecked(ctx, tenantSlug, actor, "GetConfig")
	if err != nil {
		return nil, err
	}

	return models.FromDomainTenant(tenant), nil
}

// UpdateSchedule обновляет расписание тенанта
// Конфигурация валидируется целиком до записи и применяется атомарно:
// уже созданные брони не трогаем, даже если перестают попадать в сетку
func (s *Service) UpdateSchedule(ctx context.Context, tenantSlug string, actor domain.Actor, req *models.UpdateScheduleRequest) (*models.TenantConfigResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for tenant slug=%s by user=%d", tenantSlug, actor.UserID)

	cfg, err := req.ToDomainConfig()
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid time format for tenant slug=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("UpdateSchedule: invalid config for tenant slug=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	var updated *domain.Tenant
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		tenant, err := s.getTenantChecked(ctx, tenantSlug, actor, "UpdateSchedule")
		if err != nil {
			return err
		}

		if err := s.tenantRepo.UpdateSchedule(ctx, tenant.ID, cfg); err != nil {
			return fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
		}

		tenant.Schedule = *cfg
		updated = tenant
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrTenantNotFound) && !errors.Is(err, ErrAccessDenied) {
			s.logger.Error("UpdateSchedule: transaction failed for tenant slug=%s: %v", tenantSlug, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for tenant=%d", updated.ID)
	return models.FromDomainTenant(updated), nil
}

// UpdateNotificationSettings обновляет настройки уведомлений тенанта
func (s *Service) UpdateNotificationSettings(ctx context.Context, tenantSlug string, actor domain.Actor, req *models.UpdateNotificationSettingsRequest) (*models.TenantConfigResponse, error) {
	s.logger.Info("UpdateNotificationSettings: updating settings for tenant slug=%s by user=%d", tenantSlug, actor.UserID)

	tenant, err := s.getTenantChecked(ctx, tenantSlug, actor, "UpdateNotificationSettings")
	if err != nil {
		return nil, err
	}

	settings := req.ToDomainSettings()
	if err := s.tenantRepo.UpdateNotificationSettings(ctx, tenant.ID, settings); err != nil {
		s.logger.Error("UpdateNotificationSettings: repository error for tenant=%d: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: UpdateNotificationSettings - repository error: %v", ErrInternal, err)
	}

	tenant.Notifications = *settings

	s.logger.Info("UpdateNotificationSettings: successfully updated settings for tenant=%d", tenant.ID)
	return models.FromDomainTenant(tenant), nil
}

// getTenantChecked получает тенанта по slug и проверяет права доступа актора
func (s *Service) getTenantChecked(ctx context.Context, tenantSlug string, actor domain.Actor, op string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("%s: tenant slug=%s not found", op, tenantSlug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("%s: repository error for tenant slug=%s: %v", op, tenantSlug, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !actor.CanManageTenant(tenant) {
		s.logger.Warn("%s: access denied for user=%d to tenant=%d", op, actor.UserID, tenant.ID)
		return nil, ErrAccessDenied
	}

	return tenant, nil
}
