package config

import "errors"

var (
	ErrRedisAddrMissing       = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB         = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidWorkingHours    = errors.New("working hours must satisfy 0 <= start < end <= 24")
	ErrInvalidSlotMinutes     = errors.New("slot minutes must be positive and fit inside working hours")
	ErrInvalidHorizonDays     = errors.New("horizon days must be positive")
	ErrInvalidSuggestionCount = errors.New("suggestion count must be positive")
)
