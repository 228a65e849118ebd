package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SlotStatus статус слота в календаре доступности
type SlotStatus string

const (
	// SlotStatusClosed день не является рабочим
	SlotStatusClosed SlotStatus = "closed"
	// SlotStatusPastCutoff день рабочий, но слот уже не проходит порог advance_hours
	SlotStatusPastCutoff SlotStatus = "past_cutoff"
	// SlotStatusBooked слот занят существующей бронью
	SlotStatusBooked SlotStatus = "booked"
	// SlotStatusOpen слот свободен и доступен для бронирования
	SlotStatusOpen SlotStatus = "open"
)

// DaySlot слот с вычисленным статусом
type DaySlot struct {
	Time   types.TimeString
	Status SlotStatus
}

// IsBookable возвращает true только для открытого слота
func (s *DaySlot) IsBookable() bool {
	return s.Status == SlotStatusOpen
}

// DayAvailability календарь одного дня: упорядоченная сетка слотов со статусами
type DayAvailability struct {
	Date  time.Time
	Open  bool // рабочий ли день
	Slots []DaySlot
}
