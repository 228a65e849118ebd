package menus

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-ReservationService/internal/service/menus/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubMenuRepo struct {
	menu       *domain.Menu
	list       []*domain.Menu
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	gotActive  bool
	gotCreated *domain.Menu
	gotUpdated *domain.Menu
	deletedID  int64
}

func (s *stubMenuRepo) Create(_ context.Context, m *domain.Menu) (*domain.Menu, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	m.ID = 5
	s.gotCreated = m
	return m, nil
}

func (s *stubMenuRepo) GetByID(_ context.Context, _ int64) (*domain.Menu, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.menu, nil
}

func (s *stubMenuRepo) ListByTenant(_ context.Context, _ int64, onlyActive bool) ([]*domain.Menu, error) {
	s.gotActive = onlyActive
	return s.list, nil
}

func (s *stubMenuRepo) Update(_ context.Context, m *domain.Menu) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.gotUpdated = m
	return nil
}

func (s *stubMenuRepo) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = id
	return nil
}

type stubTenantRepo struct {
	tenant *domain.Tenant
	err    error
}

func (s *stubTenantRepo) GetByID(_ context.Context, _ int64) (*domain.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tenant, nil
}

func (s *stubTenantRepo) GetBySlug(_ context.Context, _ string) (*domain.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tenant, nil
}

var (
	owner    = domain.Actor{UserID: 42, Role: domain.RoleOwner}
	stranger = domain.Actor{UserID: 7, Role: domain.RoleOwner}
)

func testTenant() *domain.Tenant {
	return &domain.Tenant{ID: 1, Slug: "hair-tanaka", OwnerID: 42}
}

func TestListPublic_OnlyActive(t *testing.T) {
	repo := &stubMenuRepo{list: []*domain.Menu{{ID: 1, TenantID: 1, Name: "カット", IsActive: true}}}
	svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

	resp, err := svc.ListPublic(context.Background(), "hair-tanaka")

	require.NoError(t, err)
	assert.True(t, repo.gotActive, "public listing must request active menus only")
	require.Len(t, resp.Menus, 1)
	assert.Equal(t, "カット", resp.Menus[0].Name)
}

func TestList_IncludesInactiveForOwner(t *testing.T) {
	repo := &stubMenuRepo{}
	svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

	_, err := svc.List(context.Background(), "hair-tanaka", owner)

	require.NoError(t, err)
	assert.False(t, repo.gotActive)
}

func TestList_AccessDenied(t *testing.T) {
	svc := NewService(&stubMenuRepo{}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

	_, err := svc.List(context.Background(), "hair-tanaka", stranger)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate(t *testing.T) {
	t.Run("active by default", func(t *testing.T) {
		repo := &stubMenuRepo{}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		resp, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{
			Name:  "  カット  ",
			Price: ptr.Ptr(4500.0),
		})

		require.NoError(t, err)
		assert.Equal(t, "カット", resp.Name, "name must be trimmed")
		assert.True(t, repo.gotCreated.IsActive)
	})

	t.Run("price is optional", func(t *testing.T) {
		repo := &stubMenuRepo{}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		resp, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{Name: "カット"})

		require.NoError(t, err)
		assert.Nil(t, repo.gotCreated.Price)
		assert.Nil(t, resp.Price)
	})

	t.Run("explicit inactive", func(t *testing.T) {
		repo := &stubMenuRepo{}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{
			Name:     "カラー",
			IsActive: ptr.Ptr(false),
		})

		require.NoError(t, err)
		assert.False(t, repo.gotCreated.IsActive)
	})

	t.Run("empty name", func(t *testing.T) {
		svc := NewService(&stubMenuRepo{}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{Name: "   "})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("name too long", func(t *testing.T) {
		svc := NewService(&stubMenuRepo{}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{
			Name: strings.Repeat("あ", domain.MaxMenuNameLength+1),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		svc := NewService(&stubMenuRepo{}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{
			Name:  "カット",
			Price: ptr.Ptr(-1.0),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := &stubMenuRepo{createErr: menuRepo.ErrDuplicateName}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Create(context.Background(), "hair-tanaka", owner, &models.CreateMenuRequest{Name: "カット"})

		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("tenant not found", func(t *testing.T) {
		svc := NewService(&stubMenuRepo{}, &stubTenantRepo{err: tenantRepo.ErrTenantNotFound}, nopLogger{})

		_, err := svc.Create(context.Background(), "missing", owner, &models.CreateMenuRequest{Name: "カット"})

		assert.ErrorIs(t, err, ErrTenantNotFound)
	})
}

func TestUpdate(t *testing.T) {
	existing := func() *domain.Menu {
		return &domain.Menu{ID: 5, TenantID: 1, Name: "カット", Price: ptr.Ptr(4500.0), IsActive: true}
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := &stubMenuRepo{menu: existing()}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		resp, err := svc.Update(context.Background(), 5, owner, &models.UpdateMenuRequest{
			Price: ptr.Ptr(5000.0),
		})

		require.NoError(t, err)
		assert.Equal(t, "カット", resp.Name)
		assert.Equal(t, 5000.0, *resp.Price)
		assert.True(t, resp.IsActive)
	})

	t.Run("deactivate", func(t *testing.T) {
		repo := &stubMenuRepo{menu: existing()}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		resp, err := svc.Update(context.Background(), 5, owner, &models.UpdateMenuRequest{
			IsActive: ptr.Ptr(false),
		})

		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("menu not found", func(t *testing.T) {
		repo := &stubMenuRepo{getErr: menuRepo.ErrMenuNotFound}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Update(context.Background(), 99, owner, &models.UpdateMenuRequest{})

		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("access denied for foreign owner", func(t *testing.T) {
		repo := &stubMenuRepo{menu: existing()}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.Update(context.Background(), 5, stranger, &models.UpdateMenuRequest{})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes own menu", func(t *testing.T) {
		repo := &stubMenuRepo{menu: &domain.Menu{ID: 5, TenantID: 1}}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		err := svc.Delete(context.Background(), 5, owner)

		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.deletedID)
	})

	t.Run("access denied", func(t *testing.T) {
		repo := &stubMenuRepo{menu: &domain.Menu{ID: 5, TenantID: 1}}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		err := svc.Delete(context.Background(), 5, stranger)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, repo.deletedID)
	})
}
