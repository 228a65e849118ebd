package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// WeekdayIndex возвращает индекс дня недели в конвенции понедельник=0 ... воскресенье=6
// Единственное место преобразования time.Weekday (воскресенье=0) в нашу конвенцию
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % DaysPerWeek
}

// DaySlots генерирует упорядоченную сетку слотов на день
// Слоты идут от времени открытия с шагом SlotDurationMinutes; слот, который
// не помещается целиком до закрытия, не выдается (неполный хвост пропадает)
// Сравнение в минутах от начала суток: AddMinutes переходит через полночь
// по модулю суток, и сравнение строк "HH:MM" на таком конце слота врет
func (c *ScheduleConfig) DaySlots() []types.TimeString {
	slots := make([]types.TimeString, 0)

	openMin, err := c.OpenTime.MinutesSinceMidnight()
	if err != nil {
		return slots
	}
	closeMin, err := c.CloseTime.MinutesSinceMidnight()
	if err != nil {
		return slots
	}

	for start := openMin; start+c.SlotDurationMinutes <= closeMin; start += c.SlotDurationMinutes {
		slot, err := c.OpenTime.AddMinutes(start - openMin)
		if err != nil {
			return slots
		}
		slots = append(slots, slot)
	}

	return slots
}

// IsOpenDay возвращает true, если тенант работает в день недели указанной даты
func (c *ScheduleConfig) IsOpenDay(date time.Time) bool {
	return c.OpenDays[WeekdayIndex(date)]
}

// IsBookable возвращает true, если слот (date, t) доступен для самостоятельного
// бронирования в момент now: день открыт И начало слота не раньше now + AdvanceHours
// Проверяется по настоящему времени в момент вызова, результат не кэшируется
func (c *ScheduleConfig) IsBookable(date time.Time, t types.TimeString, now time.Time) bool {
	if !c.IsOpenDay(date) {
		return false
	}

	slotStart, err := t.At(date)
	if err != nil {
		return false
	}

	cutoff := now.Add(time.Duration(c.AdvanceHours) * time.Hour)
	return !slotStart.Before(cutoff)
}

// IsValidSlotTime возвращает true, если t совпадает с одним из слотов дневной сетки
func (c *ScheduleConfig) IsValidSlotTime(t types.TimeString) bool {
	for _, slot := range c.DaySlots() {
		if slot == t {
			return true
		}
	}
	return false
}
