package create_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	tenantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubReservationRepo struct {
	created *domain.Reservation
	err     error
}

func (s *stubReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	res.ID = 101
	res.CreatedAt = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	s.created = res
	return res, nil
}

type stubTenantRepo struct {
	tenant *domain.Tenant
	err    error
}

func (s *stubTenantRepo) GetBySlug(_ context.Context, _ string) (*domain.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tenant, nil
}

type stubMenuRepo struct {
	menu *domain.Menu
	err  error
}

func (s *stubMenuRepo) GetByID(_ context.Context, _ int64) (*domain.Menu, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.menu, nil
}

type spyNotifier struct {
	calls int
}

func (s *spyNotifier) DispatchAsync(_ *domain.Tenant, _ *domain.Reservation) {
	s.calls++
}

// testTenant: вторник 2026-09-15 рабочий, 09:00-17:00, слоты по 60 минут, порог 4 часа
func testTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:      1,
		Slug:    "hair-tanaka",
		OwnerID: 42,
		Schedule: domain.ScheduleConfig{
			OpenTime:            "09:00",
			CloseTime:           "17:00",
			SlotDurationMinutes: 60,
			AdvanceHours:        4,
			OpenDays:            [domain.DaysPerWeek]bool{true, true, true, true, true, false, false},
		},
	}
}

type fixture struct {
	uc       *UseCase
	resRepo  *stubReservationRepo
	notifier *spyNotifier
}

func newFixture(tenant *domain.Tenant, menu *domain.Menu, menuErr error) *fixture {
	resRepo := &stubReservationRepo{}
	notifier := &spyNotifier{}
	uc := NewUseCase(
		resRepo,
		&stubTenantRepo{tenant: tenant},
		&stubMenuRepo{menu: menu, err: menuErr},
		notifier,
		nopLogger{},
	)
	// 2026-09-15 10:00 UTC, вторник
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)}
	return &fixture{uc: uc, resRepo: resRepo, notifier: notifier}
}

func customerRequest() *Request {
	return &Request{
		TenantSlug:    "hair-tanaka",
		CustomerName:  "山田太郎",
		CustomerPhone: "+819012345678",
		Date:          "2026-09-16",
		TimeSlot:      "10:00",
		Source:        domain.SourceCustomer,
	}
}

func TestExecute_CustomerHappyPath(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)

	resp, err := f.uc.Execute(context.Background(), customerRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-09-16", resp.Date)
	assert.Equal(t, "10:00", resp.TimeSlot)
	assert.Equal(t, 1, f.notifier.calls)
}

func TestExecute_InvalidSource(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Source = domain.BookingSource("admin")

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestExecute_TenantNotFound(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	uc := NewUseCase(f.resRepo, &stubTenantRepo{err: tenantRepo.ErrTenantNotFound}, &stubMenuRepo{}, f.notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), customerRequest())

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_GateOrder(t *testing.T) {
	// Первый проваленный гейт определяет ошибку
	tests := []struct {
		name    string
		modify  func(*Request)
		wantErr error
	}{
		{
			name:    "missing name",
			modify:  func(r *Request) { r.CustomerName = "   " },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing phone",
			modify:  func(r *Request) { r.CustomerPhone = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "name too long rejected for customer",
			modify:  func(r *Request) { r.CustomerName = strings.Repeat("あ", domain.MaxCustomerNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unparseable date",
			modify:  func(r *Request) { r.Date = "16/09/2026" },
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "unparseable time",
			modify:  func(r *Request) { r.TimeSlot = "10am" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "closed day",
			modify:  func(r *Request) { r.Date = "2026-09-19" }, // суббота
			wantErr: ErrTenantClosed,
		},
		{
			name:    "off-grid time",
			modify:  func(r *Request) { r.TimeSlot = "10:30" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "date in past",
			modify:  func(r *Request) { r.Date = "2026-09-14" },
			wantErr: ErrDateInPast,
		},
		{
			name: "inside lead time window",
			modify: func(r *Request) {
				r.Date = "2026-09-15"
				r.TimeSlot = "13:00" // now=10:00, порог 4 часа
			},
			wantErr: ErrTooLateToBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(testTenant(), nil, nil)
			req := customerRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.notifier.calls, "rejected booking must not notify")
		})
	}
}

func TestExecute_LeadTimeBoundary(t *testing.T) {
	// Слот ровно на границе now + advance_hours проходит
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Date = "2026-09-15"
	req.TimeSlot = "14:00"

	_, err := f.uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_OwnerBypassesLeadTime(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Source = domain.SourceOwner
	req.Actor = &domain.Actor{UserID: 42, Role: domain.RoleOwner}
	req.Date = "2026-09-15"
	req.TimeSlot = "11:00" // внутри порога клиента

	_, err := f.uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_OwnerTruncatesLongFields(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Source = domain.SourceOwner
	req.Actor = &domain.Actor{UserID: 42, Role: domain.RoleOwner}
	req.CustomerName = strings.Repeat("あ", domain.MaxCustomerNameLength+50)

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, []rune(f.resRepo.created.CustomerName), domain.MaxCustomerNameLength)
}

func TestExecute_OwnerSourceRequiresActor(t *testing.T) {
	tests := []struct {
		name  string
		actor *domain.Actor
	}{
		{name: "no actor", actor: nil},
		{name: "customer actor", actor: &domain.Actor{UserID: 42, Role: domain.RoleCustomer}},
		{name: "owner of another tenant", actor: &domain.Actor{UserID: 7, Role: domain.RoleOwner}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(testTenant(), nil, nil)
			req := customerRequest()
			req.Source = domain.SourceOwner
			req.Actor = tt.actor

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestExecute_DeveloperActsOnAnyTenant(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Source = domain.SourceBlock
	req.Actor = &domain.Actor{UserID: 7, Role: domain.RoleDeveloper}

	_, err := f.uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_MenuGate(t *testing.T) {
	activeMenu := &domain.Menu{ID: 5, TenantID: 1, Name: "カット", IsActive: true}
	foreignMenu := &domain.Menu{ID: 5, TenantID: 2, Name: "カット", IsActive: true}
	inactiveMenu := &domain.Menu{ID: 5, TenantID: 1, Name: "カット", IsActive: false}

	t.Run("customer with valid menu", func(t *testing.T) {
		f := newFixture(testTenant(), activeMenu, nil)
		req := customerRequest()
		req.MenuID = ptr.Ptr(int64(5))

		_, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, f.resRepo.created.MenuID)
		assert.Equal(t, int64(5), *f.resRepo.created.MenuID)
	})

	t.Run("customer with unknown menu is rejected", func(t *testing.T) {
		f := newFixture(testTenant(), nil, menuRepo.ErrMenuNotFound)
		req := customerRequest()
		req.MenuID = ptr.Ptr(int64(99))

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("customer with foreign tenant menu is rejected", func(t *testing.T) {
		f := newFixture(testTenant(), foreignMenu, nil)
		req := customerRequest()
		req.MenuID = ptr.Ptr(int64(5))

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("customer with inactive menu is rejected", func(t *testing.T) {
		f := newFixture(testTenant(), inactiveMenu, nil)
		req := customerRequest()
		req.MenuID = ptr.Ptr(int64(5))

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("owner with unknown menu drops it silently", func(t *testing.T) {
		f := newFixture(testTenant(), nil, menuRepo.ErrMenuNotFound)
		req := customerRequest()
		req.Source = domain.SourceOwner
		req.Actor = &domain.Actor{UserID: 42, Role: domain.RoleOwner}
		req.MenuID = ptr.Ptr(int64(99))

		_, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, f.resRepo.created.MenuID)
	})
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	f.resRepo.err = reservationRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), customerRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, f.notifier.calls)
}

func TestExecute_BlockDoesNotNotify(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Source = domain.SourceBlock
	req.Actor = &domain.Actor{UserID: 42, Role: domain.RoleOwner}

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Zero(t, f.notifier.calls)
}

func TestExecute_NoNotifySuppressesNotifications(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.Source = domain.SourceOwner
	req.Actor = &domain.Actor{UserID: 42, Role: domain.RoleOwner}
	req.NoNotify = true

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Zero(t, f.notifier.calls)
}

func TestExecute_EmailNormalization(t *testing.T) {
	f := newFixture(testTenant(), nil, nil)
	req := customerRequest()
	req.CustomerEmail = ptr.Ptr("  taro@example.jp  ")

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, f.resRepo.created.CustomerEmail)
	assert.Equal(t, "taro@example.jp", *f.resRepo.created.CustomerEmail)

	t.Run("blank email becomes nil", func(t *testing.T) {
		f := newFixture(testTenant(), nil, nil)
		req := customerRequest()
		req.CustomerEmail = ptr.Ptr("   ")

		_, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Nil(t, f.resRepo.created.CustomerEmail)
	})
}
