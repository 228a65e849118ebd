package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// buildCalendar строит календарь доступности по дням из снимка броней
// Статусы вычисляются в памяти, занятость берется из одного bulk-запроса.
// Приоритет статусов: closed > booked > past_cutoff > open - занятый слот
// показывается занятым, даже если он уже не проходит порог advance_hours
func buildCalendar(
	tenant *domain.Tenant,
	startDate time.Time,
	days int,
	reservations []*domain.Reservation,
	now time.Time,
) []*domain.DayAvailability {
	booked := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		booked[r.SlotKey()] = struct{}{}
	}

	grid := tenant.Schedule.DaySlots()
	calendar := make([]*domain.DayAvailability, 0, days)

	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i)
		day := &domain.DayAvailability{
			Date: date,
			Open: tenant.Schedule.IsOpenDay(date),
		}

		day.Slots = make([]domain.DaySlot, 0, len(grid))
		for _, t := range grid {
			slot := domain.DaySlot{Time: t}

			switch {
			case !day.Open:
				slot.Status = domain.SlotStatusClosed
			case isBooked(booked, date, t):
				slot.Status = domain.SlotStatusBooked
			case !tenant.Schedule.IsBookable(date, t, now):
				slot.Status = domain.SlotStatusPastCutoff
			default:
				slot.Status = domain.SlotStatusOpen
			}

			day.Slots = append(day.Slots, slot)
		}

		calendar = append(calendar, day)
	}

	return calendar
}

func isBooked(booked map[string]struct{}, date time.Time, t types.TimeString) bool {
	key := date.Format(domain.DateFormat) + "_" + t.String()
	_, ok := booked[key]
	return ok
}
