package domain

import (
	"time"
)

// RecurrenceType identifies one of the supported repeat pattern families.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceWeekday RecurrenceType = "weekday"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
	RecurrenceCustom  RecurrenceType = "custom"
)

func (t RecurrenceType) String() string {
	return string(t)
}

// RecurrencePattern describes how a recurring task repeats. It is an
// immutable value owned by the task carrying it; spawned occurrences
// receive a copy, never a shared reference.
//
// The optional fields only apply when Type is RecurrenceCustom, and at
// most one of the sub-pattern groups should be set: Weekdays, or
// Ordinal+OrdinalWeekday, or MonthDay. When none is set, a custom
// pattern repeats every Interval days.
type RecurrencePattern struct {
	Type     RecurrenceType `json:"type"`
	Interval int            `json:"interval,omitempty"`

	Weekdays       []time.Weekday `json:"weekdays,omitempty"`
	Ordinal        int            `json:"ordinal,omitempty"`
	OrdinalWeekday *time.Weekday  `json:"ordinal_weekday,omitempty"`
	MonthDay       int            `json:"month_day,omitempty"`
}

// EffectiveInterval returns the repeat interval, defaulting to 1.
func (p RecurrencePattern) EffectiveInterval() int {
	if p.Interval < 1 {
		return 1
	}
	return p.Interval
}

// Clone returns a deep copy of the pattern.
func (p RecurrencePattern) Clone() RecurrencePattern {
	clone := p
	if p.Weekdays != nil {
		clone.Weekdays = append([]time.Weekday(nil), p.Weekdays...)
	}
	if p.OrdinalWeekday != nil {
		wd := *p.OrdinalWeekday
		clone.OrdinalWeekday = &wd
	}
	return clone
}
