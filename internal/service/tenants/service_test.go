package tenants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-ReservationService/internal/service/tenants/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTenantRepo struct {
	tenant      *domain.Tenant
	err         error
	gotSchedule *domain.ScheduleConfig
	gotSettings *domain.NotificationSettings
}

func (s *stubTenantRepo) GetBySlug(_ context.Context, _ string) (*domain.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tenant, nil
}

func (s *stubTenantRepo) UpdateSchedule(_ context.Context, _ int64, cfg *domain.ScheduleConfig) error {
	s.gotSchedule = cfg
	return nil
}

func (s *stubTenantRepo) UpdateNotificationSettings(_ context.Context, _ int64, settings *domain.NotificationSettings) error {
	s.gotSettings = settings
	return nil
}

// passthroughTxManager выполняет колбэк без транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var owner = domain.Actor{UserID: 42, Role: domain.RoleOwner}

func testTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:      1,
		Name:    "田中ヘアサロン",
		Slug:    "hair-tanaka",
		OwnerID: 42,
		Schedule: domain.ScheduleConfig{
			OpenTime:            "09:00",
			CloseTime:           "18:00",
			SlotDurationMinutes: 60,
			AdvanceHours:        4,
			OpenDays:            [domain.DaysPerWeek]bool{true, true, true, true, true, false, false},
		},
	}
}

func validScheduleRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		OpenTime:            "10:00",
		CloseTime:           "19:00",
		SlotDurationMinutes: 30,
		AdvanceHours:        2,
		OpenDays:            [7]bool{true, true, true, true, true, true, false},
	}
}

func TestGetConfig(t *testing.T) {
	svc := NewService(&stubTenantRepo{tenant: testTenant()}, passthroughTxManager{}, nopLogger{})

	resp, err := svc.GetConfig(context.Background(), "hair-tanaka", owner)

	require.NoError(t, err)
	assert.Equal(t, "hair-tanaka", resp.Slug)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
}

func TestGetConfig_AccessDenied(t *testing.T) {
	svc := NewService(&stubTenantRepo{tenant: testTenant()}, passthroughTxManager{}, nopLogger{})

	_, err := svc.GetConfig(context.Background(), "hair-tanaka", domain.Actor{UserID: 7, Role: domain.RoleOwner})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetConfig_TenantNotFound(t *testing.T) {
	svc := NewService(&stubTenantRepo{err: tenantRepo.ErrTenantNotFound}, passthroughTxManager{}, nopLogger{})

	_, err := svc.GetConfig(context.Background(), "missing", owner)

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		repo := &stubTenantRepo{tenant: testTenant()}
		svc := NewService(repo, passthroughTxManager{}, nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), "hair-tanaka", owner, validScheduleRequest())

		require.NoError(t, err)
		require.NotNil(t, repo.gotSchedule)
		assert.Equal(t, 30, repo.gotSchedule.SlotDurationMinutes)
		assert.Equal(t, "10:00", resp.OpenTime)
		assert.True(t, resp.OpenDays[5], "saturday enabled")
	})

	t.Run("unparseable time is invalid schedule", func(t *testing.T) {
		repo := &stubTenantRepo{tenant: testTenant()}
		svc := NewService(repo, passthroughTxManager{}, nopLogger{})

		req := validScheduleRequest()
		req.OpenTime = "10am"

		_, err := svc.UpdateSchedule(context.Background(), "hair-tanaka", owner, req)

		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Nil(t, repo.gotSchedule, "invalid config must not reach storage")
	})

	t.Run("validation failure keeps old config", func(t *testing.T) {
		repo := &stubTenantRepo{tenant: testTenant()}
		svc := NewService(repo, passthroughTxManager{}, nopLogger{})

		req := validScheduleRequest()
		req.OpenDays = [7]bool{}

		_, err := svc.UpdateSchedule(context.Background(), "hair-tanaka", owner, req)

		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Nil(t, repo.gotSchedule)
	})

	t.Run("developer can update any tenant", func(t *testing.T) {
		repo := &stubTenantRepo{tenant: testTenant()}
		svc := NewService(repo, passthroughTxManager{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), "hair-tanaka",
			domain.Actor{UserID: 7, Role: domain.RoleDeveloper}, validScheduleRequest())

		assert.NoError(t, err)
	})
}

func TestUpdateNotificationSettings(t *testing.T) {
	repo := &stubTenantRepo{tenant: testTenant()}
	svc := NewService(repo, passthroughTxManager{}, nopLogger{})

	resp, err := svc.UpdateNotificationSettings(context.Background(), "hair-tanaka", owner,
		&models.UpdateNotificationSettingsRequest{
			NotificationEmail: ptr.Ptr("notify@example.jp"),
			CustomerSubject:   "予約確認",
		})

	require.NoError(t, err)
	require.NotNil(t, repo.gotSettings)
	assert.Equal(t, "notify@example.jp", *repo.gotSettings.NotificationEmail)
	assert.Equal(t, "予約確認", resp.CustomerSubject)
}
