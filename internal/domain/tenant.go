package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var (
	// ErrInvalidScheduleConfig возвращается при нарушении инвариантов расписания
	// Конфигурация валидируется целиком: частично-валидное состояние не сохраняется
	ErrInvalidScheduleConfig = errors.New("domain: invalid schedule config")
)

// ScheduleConfig настройки предоставления слотов тенанта
// Дни недели индексируются с понедельника: OpenDays[0] = понедельник ... OpenDays[6] = воскресенье
type ScheduleConfig struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	AdvanceHours        int
	OpenDays            [DaysPerWeek]bool
}

// Validate проверяет весь набор инвариантов конфигурации расписания
func (c *ScheduleConfig) Validate() error {
	if err := c.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidScheduleConfig, err)
	}
	if err := c.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidScheduleConfig, err)
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return fmt.Errorf("%w: open time must be strictly before close time", ErrInvalidScheduleConfig)
	}
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidScheduleConfig, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if c.AdvanceHours < MinAdvanceHours || c.AdvanceHours > MaxAdvanceHours {
		return fmt.Errorf("%w: advance hours must be between %d and %d",
			ErrInvalidScheduleConfig, MinAdvanceHours, MaxAdvanceHours)
	}

	hasOpenDay := false
	for _, open := range c.OpenDays {
		if open {
			hasOpenDay = true
			break
		}
	}
	if !hasOpenDay {
		return fmt.Errorf("%w: at least one open day is required", ErrInvalidScheduleConfig)
	}

	return nil
}

// NotificationSettings настраиваемые тенантом шаблоны уведомлений
type NotificationSettings struct {
	NotificationEmail *string // переопределение адреса для уведомлений владельцу
	CustomerSubject   string
	CustomerMessage   string
	OwnerSubject      string
	OwnerMessage      string
}

// Tenant бизнес-аккаунт (магазин/салон) со своим расписанием, меню и бронями
type Tenant struct {
	ID      int64
	Name    string
	Slug    string
	OwnerID int64

	// Контакты владельца для канала уведомлений
	OwnerEmail string
	OwnerPhone *string

	Schedule      ScheduleConfig
	Notifications NotificationSettings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerNotificationEmail возвращает адрес для уведомлений владельцу:
// переопределение из настроек либо email владельца
func (t *Tenant) OwnerNotificationEmail() string {
	if t.Notifications.NotificationEmail != nil && *t.Notifications.NotificationEmail != "" {
		return *t.Notifications.NotificationEmail
	}
	return t.OwnerEmail
}
