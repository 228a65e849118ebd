package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Reservation бронь одного слота (tenant, date, time_slot)
// Тройка уникальна на уровне хранилища; запись никогда не обновляется,
// изменение брони = удаление + создание новой
type Reservation struct {
	ID            int64
	TenantID      int64
	MenuID        *int64 // NULL, если меню не выбрано или удалено
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Date          time.Time
	TimeSlot      types.TimeString
	CreatedAt     time.Time
}

// SlotKey возвращает ключ слота "YYYY-MM-DD_HH:MM" для индексации по дням
func (r *Reservation) SlotKey() string {
	return r.Date.Format(DateFormat) + "_" + r.TimeSlot.String()
}

// ReservationDetail бронь с присоединенными данными меню (для детальной выдачи)
type ReservationDetail struct {
	Reservation
	MenuName  *string
	MenuPrice *float64
}
