package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/emailgateway"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/smsgateway"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type spyLogger struct {
	nopLogger
	warns []string
}

func (s *spyLogger) Warn(format string, _ ...interface{}) {
	s.warns = append(s.warns, format)
}

type spyEmailSender struct {
	sent []*emailgateway.SendRequest
	err  error
}

func (s *spyEmailSender) Send(_ context.Context, req *emailgateway.SendRequest) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, req)
	return nil
}

type spySMSSender struct {
	sent []*smsgateway.SendRequest
	err  error
}

func (s *spySMSSender) Send(_ context.Context, req *smsgateway.SendRequest) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, req)
	return nil
}

func testOptions() Options {
	return Options{
		Enabled:         true,
		DispatchTimeout: 5 * time.Second,
		SenderEmail:     "noreply@reservations.example.jp",
		SenderPhone:     "+815000000000",
	}
}

func testTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:         1,
		Name:       "田中ヘアサロン",
		OwnerEmail: "owner@example.jp",
	}
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            101,
		TenantID:      1,
		CustomerName:  "山田太郎",
		CustomerPhone: "+819012345678",
		CustomerEmail: ptr.Ptr("taro@example.jp"),
		Date:          time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "10:00",
	}
}

func TestDispatch_Disabled(t *testing.T) {
	email := &spyEmailSender{}
	sms := &spySMSSender{}
	opts := testOptions()
	opts.Enabled = false
	svc := NewService(email, sms, opts, nopLogger{})

	result := svc.Dispatch(context.Background(), testTenant(), testReservation())

	assert.False(t, result.CustomerSent)
	assert.False(t, result.OwnerSent)
	assert.Empty(t, email.sent)
	assert.Empty(t, sms.sent)
}

func TestDispatch_BothChannelsViaEmail(t *testing.T) {
	email := &spyEmailSender{}
	sms := &spySMSSender{}
	svc := NewService(email, sms, testOptions(), nopLogger{})

	result := svc.Dispatch(context.Background(), testTenant(), testReservation())

	assert.True(t, result.CustomerSent)
	assert.True(t, result.OwnerSent)
	require.Len(t, email.sent, 2)
	assert.Empty(t, sms.sent)

	assert.Equal(t, "taro@example.jp", email.sent[0].To)
	assert.Equal(t, "owner@example.jp", email.sent[1].To)
	assert.Equal(t, "noreply@reservations.example.jp", email.sent[0].From)
}

func TestDispatch_CustomerFallsBackToSMS(t *testing.T) {
	email := &spyEmailSender{}
	sms := &spySMSSender{}
	svc := NewService(email, sms, testOptions(), nopLogger{})

	res := testReservation()
	res.CustomerEmail = nil

	result := svc.Dispatch(context.Background(), testTenant(), res)

	assert.True(t, result.CustomerSent)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+819012345678", sms.sent[0].To)
	assert.Equal(t, "+815000000000", sms.sent[0].From)
	// Владелец по-прежнему получает email
	require.Len(t, email.sent, 1)
	assert.Equal(t, "owner@example.jp", email.sent[0].To)
}

func TestDispatch_OwnerFallsBackToSMS(t *testing.T) {
	email := &spyEmailSender{}
	sms := &spySMSSender{}
	svc := NewService(email, sms, testOptions(), nopLogger{})

	tenant := testTenant()
	tenant.OwnerEmail = ""
	tenant.OwnerPhone = ptr.Ptr("+818011112222")
	res := testReservation()
	res.CustomerEmail = nil
	res.CustomerPhone = ""

	result := svc.Dispatch(context.Background(), tenant, res)

	// У клиента нет ни одного канала: не отправлено, но и не ошибка
	assert.False(t, result.CustomerSent)
	assert.NoError(t, result.CustomerErr)
	assert.True(t, result.OwnerSent)
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+818011112222", sms.sent[0].To)
}

func TestDispatch_ChannelsAreIndependent(t *testing.T) {
	// Провал клиентского канала не мешает владельческому
	email := &spyEmailSender{err: errors.New("gateway down")}
	sms := &spySMSSender{}
	svc := NewService(email, sms, testOptions(), nopLogger{})

	tenant := testTenant()
	tenant.OwnerEmail = ""
	tenant.OwnerPhone = ptr.Ptr("+818011112222")

	result := svc.Dispatch(context.Background(), tenant, testReservation())

	assert.False(t, result.CustomerSent)
	assert.Error(t, result.CustomerErr)
	assert.True(t, result.OwnerSent)
	assert.NoError(t, result.OwnerErr)
}

func TestDispatch_NotificationEmailOverride(t *testing.T) {
	email := &spyEmailSender{}
	sms := &spySMSSender{}
	svc := NewService(email, sms, testOptions(), nopLogger{})

	tenant := testTenant()
	tenant.Notifications.NotificationEmail = ptr.Ptr("notify@example.jp")

	result := svc.Dispatch(context.Background(), tenant, testReservation())

	assert.True(t, result.OwnerSent)
	require.Len(t, email.sent, 2)
	assert.Equal(t, "notify@example.jp", email.sent[1].To)
}

func TestRenderTemplate(t *testing.T) {
	tenant := testTenant()
	res := testReservation()

	t.Run("all placeholders", func(t *testing.T) {
		log := &spyLogger{}
		got := renderTemplate(log, "{store_name}/{customer_name}/{datetime}/{phone}/{email}", tenant, res)
		assert.Equal(t, "田中ヘアサロン/山田太郎/2026-09-16 10:00/+819012345678/taro@example.jp", got)
		assert.Empty(t, log.warns)
	})

	t.Run("nil email renders empty", func(t *testing.T) {
		noEmail := testReservation()
		noEmail.CustomerEmail = nil
		got := renderTemplate(nopLogger{}, "{email}", tenant, noEmail)
		assert.Equal(t, "", got)
	})

	t.Run("unknown placeholder left as is and logged", func(t *testing.T) {
		log := &spyLogger{}
		got := renderTemplate(log, "{unknown} {customer_name}", tenant, res)
		assert.Equal(t, "{unknown} 山田太郎", got)
		require.Len(t, log.warns, 1)
	})
}

func TestCustomerTemplates(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		subject, message := customerTemplates(testTenant())
		assert.Equal(t, defaultCustomerSubject, subject)
		assert.Equal(t, defaultCustomerMessage, message)
	})

	t.Run("tenant overrides", func(t *testing.T) {
		tenant := testTenant()
		tenant.Notifications.CustomerSubject = "予約確認"
		tenant.Notifications.CustomerMessage = "{customer_name}様、お待ちしております"

		subject, message := customerTemplates(tenant)
		assert.Equal(t, "予約確認", subject)
		assert.Equal(t, "{customer_name}様、お待ちしております", message)
	})
}
