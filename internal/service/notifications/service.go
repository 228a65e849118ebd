package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/emailgateway"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/smsgateway"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// Options настройки сервиса уведомлений
type Options struct {
	Enabled         bool
	DispatchTimeout time.Duration
	SenderEmail     string
	SenderPhone     string
}

// Result итог отправки по двум каналам
// Каналы независимы: провал одного не отменяет второй
type Result struct {
	CustomerSent bool
	OwnerSent    bool
	CustomerErr  error
	OwnerErr     error
}

// Service сервис отправки уведомлений о новых бронях
// Отправка строго best-effort: бронь уже создана, любой исход
// уведомлений только логируется и никогда не влияет на ответ клиенту
type Service struct {
	emailClient EmailSender
	smsClient   SMSSender
	opts        Options
	logger      Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	emailClient EmailSender,
	smsClient SMSSender,
	opts Options,
	logger Logger,
) *Service {
	return &Service{
		emailClient: emailClient,
		smsClient:   smsClient,
		opts:        opts,
		logger:      logger,
	}
}

// Dispatch отправляет уведомления клиенту и владельцу о созданной брони
func (s *Service) Dispatch(ctx context.Context, tenant *domain.Tenant, res *domain.Reservation) Result {
	if !s.opts.Enabled {
		s.logger.Info("Dispatch: notifications disabled, skipping for reservation id=%d", res.ID)
		return Result{}
	}

	var result Result
	result.CustomerSent, result.CustomerErr = s.notifyCustomer(ctx, tenant, res)
	result.OwnerSent, result.OwnerErr = s.notifyOwner(ctx, tenant, res)

	// Исход пары каналов логируется всегда, все четыре комбинации различимы
	s.logger.Info("Dispatch: reservation id=%d, customer_sent=%t, owner_sent=%t",
		res.ID, result.CustomerSent, result.OwnerSent)

	return result
}

// DispatchAsync отправляет уведомления в фоне, не блокируя ответ на бронирование
// Контекст запроса не используется: отправка переживает завершение HTTP-запроса
func (s *Service) DispatchAsync(tenant *domain.Tenant, res *domain.Reservation) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.DispatchTimeout)
		defer cancel()

		s.Dispatch(ctx, tenant, res)
	}()
}

// notifyCustomer отправляет подтверждение клиенту
// Канал: email при наличии адреса, иначе SMS на телефон
func (s *Service) notifyCustomer(ctx context.Context, tenant *domain.Tenant, res *domain.Reservation) (bool, error) {
	subject, message := customerTemplates(tenant)
	subject = renderTemplate(s.logger, subject, tenant, res)
	message = renderTemplate(s.logger, message, tenant, res)

	email := ptr.Deref(res.CustomerEmail, "")
	if email != "" {
		err := s.emailClient.Send(ctx, &emailgateway.SendRequest{
			From:    s.opts.SenderEmail,
			To:      email,
			Subject: subject,
			Body:    message,
		})
		if err != nil {
			s.logger.Error("notifyCustomer: email failed for reservation id=%d: %v", res.ID, err)
			return false, err
		}
		return true, nil
	}

	if res.CustomerPhone != "" {
		err := s.smsClient.Send(ctx, &smsgateway.SendRequest{
			From: s.opts.SenderPhone,
			To:   res.CustomerPhone,
			Text: message,
		})
		if err != nil {
			s.logger.Error("notifyCustomer: sms failed for reservation id=%d: %v", res.ID, err)
			return false, err
		}
		return true, nil
	}

	s.logger.Warn("notifyCustomer: no contact channel for reservation id=%d", res.ID)
	return false, nil
}

// notifyOwner отправляет уведомление владельцу тенанта
func (s *Service) notifyOwner(ctx context.Context, tenant *domain.Tenant, res *domain.Reservation) (bool, error) {
	subject, message := ownerTemplates(tenant)
	subject = renderTemplate(s.logger, subject, tenant, res)
	message = renderTemplate(s.logger, message, tenant, res)

	if email := tenant.OwnerNotificationEmail(); email != "" {
		err := s.emailClient.Send(ctx, &emailgateway.SendRequest{
			From:    s.opts.SenderEmail,
			To:      email,
			Subject: subject,
			Body:    message,
		})
		if err != nil {
			s.logger.Error("notifyOwner: email failed for reservation id=%d, tenant=%d: %v", res.ID, tenant.ID, err)
			return false, err
		}
		return true, nil
	}

	if phone := ptr.Deref(tenant.OwnerPhone, ""); phone != "" {
		err := s.smsClient.Send(ctx, &smsgateway.SendRequest{
			From: s.opts.SenderPhone,
			To:   phone,
			Text: message,
		})
		if err != nil {
			s.logger.Error("notifyOwner: sms failed for reservation id=%d, tenant=%d: %v", res.ID, tenant.ID, err)
			return false, err
		}
		return true, nil
	}

	s.logger.Warn("notifyOwner: no contact channel for tenant=%d", tenant.ID)
	return false, nil
}
