package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// weekdayConfig: понедельник-пятница 09:00-17:00, слоты по 60 минут, порог 4 часа
func weekdayConfig() ScheduleConfig {
	return ScheduleConfig{
		OpenTime:            "09:00",
		CloseTime:           "17:00",
		SlotDurationMinutes: 60,
		AdvanceHours:        4,
		OpenDays:            [DaysPerWeek]bool{true, true, true, true, true, false, false},
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2026-09-14 - понедельник
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	for i := 0; i < DaysPerWeek; i++ {
		assert.Equal(t, i, WeekdayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestScheduleConfig_DaySlots(t *testing.T) {
	t.Run("full day grid", func(t *testing.T) {
		cfg := weekdayConfig()

		slots := cfg.DaySlots()

		require.Len(t, slots, 8)
		assert.Equal(t, types.TimeString("09:00"), slots[0])
		assert.Equal(t, types.TimeString("16:00"), slots[7])
	})

	t.Run("partial tail slot is dropped", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.CloseTime = "17:30"

		slots := cfg.DaySlots()

		// 17:00-18:00 не помещается до 17:30
		require.Len(t, slots, 8)
		assert.Equal(t, types.TimeString("16:00"), slots[7])
	})

	t.Run("slot ending exactly at close is included", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.OpenTime = "09:00"
		cfg.CloseTime = "10:00"

		slots := cfg.DaySlots()

		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("09:00"), slots[0])
	})

	t.Run("thirty minute slots", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.SlotDurationMinutes = 30

		slots := cfg.DaySlots()

		require.Len(t, slots, 16)
		assert.Equal(t, types.TimeString("09:30"), slots[1])
		assert.Equal(t, types.TimeString("16:30"), slots[15])
	})

	t.Run("slot wrapping past midnight is dropped", func(t *testing.T) {
		// 21:00 + 240 минут = 01:00 следующих суток, слот не влезает до 22:00
		cfg := weekdayConfig()
		cfg.OpenTime = "21:00"
		cfg.CloseTime = "22:00"
		cfg.SlotDurationMinutes = 240

		slots := cfg.DaySlots()

		assert.Empty(t, slots)
		assert.False(t, cfg.IsValidSlotTime("21:00"))
	})

	t.Run("late evening grid stays within close", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.OpenTime = "22:00"
		cfg.CloseTime = "23:30"
		cfg.SlotDurationMinutes = 60

		slots := cfg.DaySlots()

		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("22:00"), slots[0])
	})
}

func TestScheduleConfig_IsOpenDay(t *testing.T) {
	cfg := weekdayConfig()
	// Только среда
	cfg.OpenDays = [DaysPerWeek]bool{false, false, true, false, false, false, false}

	wednesday := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	thursday := wednesday.AddDate(0, 0, 1)
	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	assert.True(t, cfg.IsOpenDay(wednesday))
	assert.False(t, cfg.IsOpenDay(thursday))
	assert.False(t, cfg.IsOpenDay(sunday))
}

func TestScheduleConfig_IsBookable(t *testing.T) {
	cfg := weekdayConfig()
	// 2026-09-15 - вторник
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("slot exactly at cutoff is bookable", func(t *testing.T) {
		// 14:00 при now=10:00 и пороге 4 часа: граница включается
		now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
		assert.True(t, cfg.IsBookable(date, "14:00", now))
	})

	t.Run("one minute past cutoff is not bookable", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 10, 1, 0, 0, time.UTC)
		assert.False(t, cfg.IsBookable(date, "14:00", now))
	})

	t.Run("slot well in the future is bookable", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
		assert.True(t, cfg.IsBookable(date.AddDate(0, 0, 1), "09:00", now))
	})

	t.Run("closed day is never bookable", func(t *testing.T) {
		saturday := time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)
		now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
		assert.False(t, cfg.IsBookable(saturday, "09:00", now))
	})

	t.Run("zero advance hours allows current slot", func(t *testing.T) {
		noLead := cfg
		noLead.AdvanceHours = 0
		now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
		assert.True(t, noLead.IsBookable(date, "14:00", now))
		assert.False(t, noLead.IsBookable(date, "13:00", now))
	})
}

func TestScheduleConfig_IsValidSlotTime(t *testing.T) {
	cfg := weekdayConfig()

	assert.True(t, cfg.IsValidSlotTime("09:00"))
	assert.True(t, cfg.IsValidSlotTime("16:00"))
	assert.False(t, cfg.IsValidSlotTime("09:30")) // мимо сетки
	assert.False(t, cfg.IsValidSlotTime("17:00")) // после закрытия
	assert.False(t, cfg.IsValidSlotTime("08:00")) // до открытия
}

func TestScheduleConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ScheduleConfig)
		ok     bool
	}{
		{name: "valid config", modify: func(c *ScheduleConfig) {}, ok: true},
		{name: "open equals close", modify: func(c *ScheduleConfig) { c.CloseTime = c.OpenTime }},
		{name: "open after close", modify: func(c *ScheduleConfig) { c.OpenTime = "18:00" }},
		{name: "bad open time format", modify: func(c *ScheduleConfig) { c.OpenTime = "9am" }},
		{name: "slot duration too short", modify: func(c *ScheduleConfig) { c.SlotDurationMinutes = 10 }},
		{name: "slot duration too long", modify: func(c *ScheduleConfig) { c.SlotDurationMinutes = 241 }},
		{name: "negative advance hours", modify: func(c *ScheduleConfig) { c.AdvanceHours = -1 }},
		{name: "advance hours above week", modify: func(c *ScheduleConfig) { c.AdvanceHours = 169 }},
		{name: "no open days", modify: func(c *ScheduleConfig) { c.OpenDays = [DaysPerWeek]bool{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weekdayConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
			}
		})
	}
}
