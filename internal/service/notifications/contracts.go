package notifications

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/integrations/emailgateway"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/smsgateway"
)

// EmailSender интерфейс клиента email-шлюза
type EmailSender interface {
	Send(ctx context.Context, req *emailgateway.SendRequest) error
}

// SMSSender интерфейс клиента SMS-шлюза
type SMSSender interface {
	Send(ctx context.Context, req *smsgateway.SendRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
