package notifications

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// placeholderPattern ловит токены вида {name}, оставшиеся после подстановки
var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// Шаблоны по умолчанию, когда тенант не настроил свои
// Плейсхолдеры: {store_name}, {customer_name}, {datetime}, {phone}, {email}
const (
	defaultCustomerSubject = "ご予約を受け付けました"
	defaultCustomerMessage = "{customer_name}様\n" +
		"{store_name}のご予約を受け付けました。\n" +
		"日時: {datetime}\n" +
		"ご来店を心よりお待ちしております。"

	defaultOwnerSubject = "新しい予約が入りました"
	defaultOwnerMessage = "{store_name}に新しい予約が入りました。\n" +
		"お客様: {customer_name}\n" +
		"日時: {datetime}\n" +
		"電話番号: {phone}\n" +
		"メール: {email}"
)

// renderTemplate подставляет значения брони в шаблон
// Подстановка best-effort: неизвестные плейсхолдеры остаются как есть
// и логируются, кривой шаблон не должен ронять отправку
func renderTemplate(logger Logger, tmpl string, tenant *domain.Tenant, res *domain.Reservation) string {
	datetime := res.Date.Format(domain.DateFormat) + " " + res.TimeSlot.String()

	replacer := strings.NewReplacer(
		"{store_name}", tenant.Name,
		"{customer_name}", res.CustomerName,
		"{datetime}", datetime,
		"{phone}", res.CustomerPhone,
		"{email}", ptr.Deref(res.CustomerEmail, ""),
	)

	rendered := replacer.Replace(tmpl)

	if leftover := placeholderPattern.FindAllString(rendered, -1); len(leftover) > 0 {
		logger.Warn("renderTemplate: unknown placeholders %v in template for tenant=%d", leftover, tenant.ID)
	}

	return rendered
}

// customerTemplates возвращает тему и текст для клиента
// Пустой шаблон тенанта означает "использовать стандартный"
func customerTemplates(tenant *domain.Tenant) (subject, message string) {
	subject = tenant.Notifications.CustomerSubject
	if subject == "" {
		subject = defaultCustomerSubject
	}
	message = tenant.Notifications.CustomerMessage
	if message == "" {
		message = defaultCustomerMessage
	}
	return subject, message
}

// ownerTemplates возвращает тему и текст для владельца
func ownerTemplates(tenant *domain.Tenant) (subject, message string) {
	subject = tenant.Notifications.OwnerSubject
	if subject == "" {
		subject = defaultOwnerSubject
	}
	message = tenant.Notifications.OwnerMessage
	if message == "" {
		message = defaultOwnerMessage
	}
	return subject, message
}
