package menus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
)

// Service сервис для работы с меню услуг
type Service struct {
	menuRepo   MenuRepository
	tenantRepo TenantRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(
	menuRepo MenuRepository,
	tenantRepo TenantRepository,
	logger Logger,
) *Service {
	return &Service{
		menuRepo:   menuRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// ListPublic получает активные пункты меню тенанта по slug
// Публичная витрина для страницы бронирования
func (s *Service) ListPublic(ctx context.Context, tenantSlug string) (*models.MenuListResponse, error) {
	s.logger.Info("ListPublic: fetching active menus for tenant slug=%s", tenantSlug)

	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("ListPublic: tenant slug=%s not found", tenantSlug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("ListPublic: repository error for tenant slug=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	menus, err := s.menuRepo.ListByTenant(ctx, tenant.ID, true)
	if err != nil {
		s.logger.Error("ListPublic: repository error for tenant=%d: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMenuList(menus), nil
}

// List получает все пункты меню тенанта, включая неактивные
// Доступно только владельцу тенанта
func (s *Service) List(ctx context.Context, tenantSlug string, actor domain.Actor) (*models.MenuListResponse, error) {
	s.logger.Info("List: fetching menus for tenant slug=%s by user=%d", tenantSlug, actor.UserID)

	tenant, err := s.getTenantBySlugChecked(ctx, tenantSlug, actor, "List")
	if err != nil {
		return nil, err
	}

	menus, err := s.menuRepo.ListByTenant(ctx, tenant.ID, false)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", tenant.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMenuList(menus), nil
}

// Create создает пункт меню тенанта
func (s *Service) Create(ctx context.Context, tenantSlug string, actor domain.Actor, req *models.CreateMenuRequest) (*models.MenuResponse, error) {
	s.logger.Info("Create: creating menu for tenant slug=%s by user=%d", tenantSlug, actor.UserID)

	tenant, err := s.getTenantBySlugChecked(ctx, tenantSlug, actor, "Create")
	if err != nil {
		return nil, err
	}
	tenantID := tenant.ID

	name := strings.TrimSpace(req.Name)
	if err := validateMenuName(name); err != nil {
		s.logger.Warn("Create: invalid menu name for tenant=%d: %v", tenantID, err)
		return nil, err
	}
	if err := validatePrice(req.Price); err != nil {
		s.logger.Warn("Create: invalid price for tenant=%d: %v", tenantID, err)
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	menu := &domain.Menu{
		TenantID:    tenantID,
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    isActive,
	}

	created, err := s.menuRepo.Create(ctx, menu)
	if err != nil {
		if errors.Is(err, menuRepo.ErrDuplicateName) {
			s.logger.Warn("Create: duplicate menu name=%s for tenant=%d", name, tenantID)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created menu id=%d for tenant=%d", created.ID, tenantID)
	return models.FromDomainMenu(created), nil
}

// Update обновляет пункт меню
// nil-поля запроса остаются без изменений
func (s *Service) Update(ctx context.Context, menuID int64, actor domain.Actor, req *models.UpdateMenuRequest) (*models.MenuResponse, error) {
	s.logger.Info("Update: updating menu id=%d by user=%d", menuID, actor.UserID)

	menu, err := s.getMenuChecked(ctx, menuID, actor, "Update")
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateMenuName(name); err != nil {
			s.logger.Warn("Update: invalid menu name for menu id=%d: %v", menuID, err)
			return nil, err
		}
		menu.Name = name
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Price != nil {
		if err := validatePrice(req.Price); err != nil {
			s.logger.Warn("Update: invalid price for menu id=%d: %v", menuID, err)
			return nil, err
		}
		menu.Price = req.Price
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		if errors.Is(err, menuRepo.ErrDuplicateName) {
			s.logger.Warn("Update: duplicate menu name=%s for tenant=%d", menu.Name, menu.TenantID)
			return nil, ErrDuplicateName
		}
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("Update: repository error for menu id=%d: %v", menuID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated menu id=%d", menuID)
	return models.FromDomainMenu(menu), nil
}

// Delete удаляет пункт меню
// Существующие брони с этим меню сохраняются: FK обнуляет menu_id
func (s *Service) Delete(ctx context.Context, menuID int64, actor domain.Actor) error {
	s.logger.Info("Delete: deleting menu id=%d by user=%d", menuID, actor.UserID)

	if _, err := s.getMenuChecked(ctx, menuID, actor, "Delete"); err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, menuID); err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			return ErrMenuNotFound
		}
		s.logger.Error("Delete: repository error for menu id=%d: %v", menuID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted menu id=%d", menuID)
	return nil
}

// Вспомогательные методы

// getMenuChecked получает пункт меню и проверяет права актора на его тенанта
func (s *Service) getMenuChecked(ctx context.Context, menuID int64, actor domain.Actor, op string) (*domain.Menu, error) {
	menu, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			s.logger.Warn("%s: menu id=%d not found", op, menuID)
			return nil, ErrMenuNotFound
		}
		s.logger.Error("%s: repository error for menu id=%d: %v", op, menuID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if _, err := s.getTenantChecked(ctx, menu.TenantID, actor, op); err != nil {
		return nil, err
	}

	return menu, nil
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

func (s *Service) checkAccess(tenant *domain.Tenant, actor domain.Actor, op string) (*domain.Tenant, error) {
	if !actor.CanManageTenant(tenant) {
		s.logger.Warn("%s: access denied for user=%d to tenant=%d", op, actor.UserID, tenant.ID)
		return nil, ErrAccessDenied
	}
	return tenant, nil
}

// validateMenuName проверяет имя пункта меню
func validateMenuName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: menu name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxMenuNameLength {
		return fmt.Errorf("%w: menu name exceeds %d characters", ErrInvalidInput, domain.MaxMenuNameLength)
	}
	return nil
}

// validatePrice проверяет цену пункта меню
func validatePrice(price *float64) error {
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
