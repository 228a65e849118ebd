package models

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания тенанта
type UpdateScheduleRequest struct {
	OpenTime            string  `json:"openTime"`  // "09:00"
	CloseTime           string  `json:"closeTime"` // "18:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	AdvanceHours        int     `json:"advanceHours"`
	OpenDays            [7]bool `json:"openDays"` // понедельник первым
}

// ToDomainConfig конвертирует request в доменную конфигурацию
func (r *UpdateScheduleRequest) ToDomainConfig() (*domain.ScheduleConfig, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleConfig{
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		AdvanceHours:        r.AdvanceHours,
		OpenDays:            r.OpenDays,
	}, nil
}

// UpdateNotificationSettingsRequest запрос на обновление настроек уведомлений
type UpdateNotificationSettingsRequest struct {
	NotificationEmail *string `json:"notificationEmail,omitempty"`
	CustomerSubject   string  `json:"customerSubject"`
	CustomerMessage   string  `json:"customerMessage"`
	OwnerSubject      string  `json:"ownerSubject"`
	OwnerMessage      string  `json:"ownerMessage"`
}

// ToDomainSettings конвертирует request в доменные настройки
func (r *UpdateNotificationSettingsRequest) ToDomainSettings() *domain.NotificationSettings {
	return &domain.NotificationSettings{
		NotificationEmail: r.NotificationEmail,
		CustomerSubject:   r.CustomerSubject,
		CustomerMessage:   r.CustomerMessage,
		OwnerSubject:      r.OwnerSubject,
		OwnerMessage:      r.OwnerMessage,
	}
}

// Response модели

// TenantConfigResponse ответ с конфигурацией тенанта
type TenantConfigResponse struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Slug                string  `json:"slug"`
	OpenTime            string  `json:"openTime"`
	CloseTime           string  `json:"closeTime"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	AdvanceHours        int     `json:"advanceHours"`
	OpenDays            [7]bool `json:"openDays"`
	NotificationEmail   *string `json:"notificationEmail,omitempty"`
	CustomerSubject     string  `json:"customerSubject"`
	CustomerMessage     string  `json:"customerMessage"`
	OwnerSubject        string  `json:"ownerSubject"`
	OwnerMessage        string  `json:"ownerMessage"`
}

// FromDomainTenant конвертирует доменного тенанта в response
func FromDomainTenant(t *domain.Tenant) *TenantConfigResponse {
	return &TenantConfigResponse{
		ID:                  t.ID,
		Name:                t.Name,
		Slug:                t.Slug,
		OpenTime:            t.Schedule.OpenTime.String(),
		CloseTime:           t.Schedule.CloseTime.String(),
		SlotDurationMinutes: t.Schedule.SlotDurationMinutes,
		AdvanceHours:        t.Schedule.AdvanceHours,
		OpenDays:            t.Schedule.OpenDays,
		NotificationEmail:   t.Notifications.NotificationEmail,
		CustomerSubject:     t.Notifications.CustomerSubject,
		CustomerMessage:     t.Notifications.CustomerMessage,
		OwnerSubject:        t.Notifications.OwnerSubject,
		OwnerMessage:        t.Notifications.OwnerMessage,
	}
}
