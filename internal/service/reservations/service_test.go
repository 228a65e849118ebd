package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubReservationRepo struct {
	detail    *domain.ReservationDetail
	list      []*domain.Reservation
	counts    map[string]int
	getErr    error
	deleteErr error
	deletedID int64
	gotLimit  int
	gotYear   int
	gotMonth  time.Month
}

func (s *stubReservationRepo) GetByID(_ context.Context, _ int64) (*domain.ReservationDetail, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.detail, nil
}

func (s *stubReservationRepo) ListByTenant(_ context.Context, _ int64, limit int) ([]*domain.Reservation, error) {
	s.gotLimit = limit
	return s.list, nil
}

func (s *stubReservationRepo) CountByTenantAndMonth(_ context.Context, _ int64, year int, month time.Month) (map[string]int, error) {
	s.gotYear = year
	s.gotMonth = month
	return s.counts, nil
}

func (s *stubReservationRepo) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = id
	return nil
}

type stubTenantRepo struct {
	tenant *domain.Tenant
}

func (s *stubTenantRepo) GetByID(_ context.Context, _ int64) (*domain.Tenant, error) {
	return s.tenant, nil
}

func (s *stubTenantRepo) GetBySlug(_ context.Context, _ string) (*domain.Tenant, error) {
	return s.tenant, nil
}

var (
	owner    = domain.Actor{UserID: 42, Role: domain.RoleOwner}
	stranger = domain.Actor{UserID: 7, Role: domain.RoleOwner}
)

func testTenant() *domain.Tenant {
	return &domain.Tenant{ID: 1, Slug: "hair-tanaka", OwnerID: 42}
}

func testDetail() *domain.ReservationDetail {
	return &domain.ReservationDetail{
		Reservation: domain.Reservation{
			ID:            101,
			TenantID:      1,
			MenuID:        ptr.Ptr(int64(5)),
			CustomerName:  "山田太郎",
			CustomerPhone: "+819012345678",
			Date:          time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			TimeSlot:      "10:00",
		},
		MenuName:  ptr.Ptr("カット"),
		MenuPrice: ptr.Ptr(4500.0),
	}
}

func TestGetByID(t *testing.T) {
	t.Run("owner reads own reservation", func(t *testing.T) {
		svc := NewService(&stubReservationRepo{detail: testDetail()}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 101, owner)

		require.NoError(t, err)
		assert.Equal(t, int64(101), resp.ID)
		assert.Equal(t, "2026-09-16", resp.Date)
		assert.Equal(t, "10:00", resp.TimeSlot)
		require.NotNil(t, resp.MenuName)
		assert.Equal(t, "カット", *resp.MenuName)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&stubReservationRepo{getErr: reservationRepo.ErrReservationNotFound}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 999, owner)

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("foreign owner denied", func(t *testing.T) {
		svc := NewService(&stubReservationRepo{detail: testDetail()}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 101, stranger)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner cancels reservation", func(t *testing.T) {
		repo := &stubReservationRepo{detail: testDetail()}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		err := svc.Delete(context.Background(), 101, owner)

		require.NoError(t, err)
		assert.Equal(t, int64(101), repo.deletedID)
	})

	t.Run("access check before delete", func(t *testing.T) {
		repo := &stubReservationRepo{detail: testDetail()}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		err := svc.Delete(context.Background(), 101, stranger)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, repo.deletedID)
	})
}

func TestListByTenant(t *testing.T) {
	repo := &stubReservationRepo{list: []*domain.Reservation{
		{ID: 2, TenantID: 1, TimeSlot: "11:00", Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)},
		{ID: 1, TenantID: 1, TimeSlot: "10:00", Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

	resp, err := svc.ListByTenant(context.Background(), "hair-tanaka", owner, 50)

	require.NoError(t, err)
	assert.Equal(t, 50, repo.gotLimit)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
}

func TestMonthlyCounts(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		repo := &stubReservationRepo{counts: map[string]int{"2026-09-16": 3, "2026-09-17": 1}}
		svc := NewService(repo, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		resp, err := svc.MonthlyCounts(context.Background(), "hair-tanaka", owner, 2026, 9)

		require.NoError(t, err)
		assert.Equal(t, 2026, resp.Year)
		assert.Equal(t, 9, resp.Month)
		assert.Equal(t, 3, resp.Counts["2026-09-16"])
		assert.Equal(t, time.September, repo.gotMonth)
	})

	t.Run("month out of range", func(t *testing.T) {
		svc := NewService(&stubReservationRepo{}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.MonthlyCounts(context.Background(), "hair-tanaka", owner, 2026, 13)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("year out of range", func(t *testing.T) {
		svc := NewService(&stubReservationRepo{}, &stubTenantRepo{tenant: testTenant()}, nopLogger{})

		_, err := svc.MonthlyCounts(context.Background(), "hair-tanaka", owner, 1999, 9)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
