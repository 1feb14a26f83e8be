package config

import (
	"os"
	"strconv"
)

const (
	workStartHourEnv   = "SCHEDULE_WORK_START_HOUR"
	workEndHourEnv     = "SCHEDULE_WORK_END_HOUR"
	slotMinutesEnv     = "SCHEDULE_SLOT_MINUTES"
	horizonDaysEnv     = "SCHEDULE_HORIZON_DAYS"
	suggestionCountEnv = "SCHEDULE_SUGGESTION_COUNT"

	defaultWorkStartHour   = 9
	defaultWorkEndHour     = 18
	defaultSlotMinutes     = 30
	defaultHorizonDays     = 7
	defaultSuggestionCount = 5
)

// SchedulerConfig bounds the slot search: candidate slots fall inside
// [WorkStartHour, WorkEndHour) on each of the HorizonDays days ahead,
// stepped at SlotMinutes granularity.
type SchedulerConfig struct {
	WorkStartHour   int
	WorkEndHour     int
	SlotMinutes     int
	HorizonDays     int
	SuggestionCount int
}

func LoadSchedulerConfig() (*SchedulerConfig, error) {
	cfg := &SchedulerConfig{
		WorkStartHour:   intFromEnv(workStartHourEnv, defaultWorkStartHour),
		WorkEndHour:     intFromEnv(workEndHourEnv, defaultWorkEndHour),
		SlotMinutes:     intFromEnv(slotMinutesEnv, defaultSlotMinutes),
		HorizonDays:     intFromEnv(horizonDaysEnv, defaultHorizonDays),
		SuggestionCount: intFromEnv(suggestionCountEnv, defaultSuggestionCount),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.WorkStartHour < 0 || c.WorkEndHour > 24 || c.WorkStartHour >= c.WorkEndHour {
		return ErrInvalidWorkingHours
	}
	if c.SlotMinutes <= 0 || c.SlotMinutes > (c.WorkEndHour-c.WorkStartHour)*60 {
		return ErrInvalidSlotMinutes
	}
	if c.HorizonDays <= 0 {
		return ErrInvalidHorizonDays
	}
	if c.SuggestionCount <= 0 {
		return ErrInvalidSuggestionCount
	}
	return nil
}

func intFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
