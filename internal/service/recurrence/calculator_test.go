package recurrence

import (
	"testing"
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekdayPtr(d time.Weekday) *time.Weekday {
	return &d
}

func TestCalculator_NextOccurrence_Daily(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		current  time.Time
		interval int
		want     time.Time
	}{
		{"default interval", date(2026, 3, 2), 0, date(2026, 3, 3)},
		{"every three days", date(2026, 3, 2), 3, date(2026, 3, 5)},
		{"crosses month boundary", date(2026, 3, 31), 1, date(2026, 4, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calc.NextOccurrence(tt.current, domain.RecurrencePattern{
				Type:     domain.RecurrenceDaily,
				Interval: tt.interval,
			})
			if !ok {
				t.Fatal("NextOccurrence() ok = false, want true")
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculator_NextOccurrence_Weekly(t *testing.T) {
	calc := NewCalculator()

	got, ok := calc.NextOccurrence(date(2026, 3, 2), domain.RecurrencePattern{
		Type:     domain.RecurrenceWeekly,
		Interval: 2,
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 3, 16); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Weekday_SkipsWeekend(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name    string
		current time.Time
		want    time.Time
	}{
		// 2026-03-06 is a Friday; the next workday is Monday.
		{"friday to monday", date(2026, 3, 6), date(2026, 3, 9)},
		{"monday to tuesday", date(2026, 3, 2), date(2026, 3, 3)},
		{"saturday to monday", date(2026, 3, 7), date(2026, 3, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calc.NextOccurrence(tt.current, domain.RecurrencePattern{
				Type: domain.RecurrenceWeekday,
				// Interval is ignored for workday repetition.
				Interval: 3,
			})
			if !ok {
				t.Fatal("NextOccurrence() ok = false, want true")
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculator_NextOccurrence_Monthly_ClampsToShortMonth(t *testing.T) {
	calc := NewCalculator()

	got, ok := calc.NextOccurrence(date(2026, 1, 31), domain.RecurrencePattern{
		Type: domain.RecurrenceMonthly,
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 2, 28); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Monthly_KeepsDayWhenValid(t *testing.T) {
	calc := NewCalculator()

	got, ok := calc.NextOccurrence(date(2026, 3, 15), domain.RecurrencePattern{
		Type:     domain.RecurrenceMonthly,
		Interval: 2,
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 5, 15); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Yearly_LeapDay(t *testing.T) {
	calc := NewCalculator()

	got, ok := calc.NextOccurrence(date(2024, 2, 29), domain.RecurrencePattern{
		Type: domain.RecurrenceYearly,
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2025, 2, 28); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Custom_WeekdaySet(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		current  time.Time
		weekdays []time.Weekday
		want     time.Time
	}{
		// 2026-03-02 is a Monday.
		{
			"advances to next listed day",
			date(2026, 3, 2),
			[]time.Weekday{time.Monday, time.Wednesday},
			date(2026, 3, 4),
		},
		{
			"wraps to first listed day of next week",
			date(2026, 3, 4),
			[]time.Weekday{time.Monday, time.Wednesday},
			date(2026, 3, 9),
		},
		{
			"unsorted input behaves the same",
			date(2026, 3, 4),
			[]time.Weekday{time.Wednesday, time.Monday},
			date(2026, 3, 9),
		},
		{
			"single weekday repeats weekly",
			date(2026, 3, 3),
			[]time.Weekday{time.Tuesday},
			date(2026, 3, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calc.NextOccurrence(tt.current, domain.RecurrencePattern{
				Type:     domain.RecurrenceCustom,
				Weekdays: tt.weekdays,
			})
			if !ok {
				t.Fatal("NextOccurrence() ok = false, want true")
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculator_NextOccurrence_Custom_OrdinalWeekday(t *testing.T) {
	calc := NewCalculator()

	// Third Tuesday of March 2026 is the 17th.
	got, ok := calc.NextOccurrence(date(2026, 2, 17), domain.RecurrencePattern{
		Type:           domain.RecurrenceCustom,
		Ordinal:        3,
		OrdinalWeekday: weekdayPtr(time.Tuesday),
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 3, 17); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Custom_OrdinalBeyondMonth(t *testing.T) {
	calc := NewCalculator()

	// March 2026 has five Mondays; a sixth falls back to the last one.
	got, ok := calc.NextOccurrence(date(2026, 2, 2), domain.RecurrencePattern{
		Type:           domain.RecurrenceCustom,
		Ordinal:        6,
		OrdinalWeekday: weekdayPtr(time.Monday),
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 3, 30); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Custom_MonthDay(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		current  time.Time
		monthDay int
		want     time.Time
	}{
		{"fixed day next month", date(2026, 3, 15), 15, date(2026, 4, 15)},
		{"clamped in short month", date(2026, 1, 31), 31, date(2026, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calc.NextOccurrence(tt.current, domain.RecurrencePattern{
				Type:     domain.RecurrenceCustom,
				MonthDay: tt.monthDay,
			})
			if !ok {
				t.Fatal("NextOccurrence() ok = false, want true")
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculator_NextOccurrence_Custom_IntervalDaysFallback(t *testing.T) {
	calc := NewCalculator()

	got, ok := calc.NextOccurrence(date(2026, 3, 2), domain.RecurrencePattern{
		Type:     domain.RecurrenceCustom,
		Interval: 10,
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 3, 12); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_Custom_WeekdaySetTakesPrecedence(t *testing.T) {
	calc := NewCalculator()

	// Weekday set wins over the ordinal and month day fields.
	got, ok := calc.NextOccurrence(date(2026, 3, 2), domain.RecurrencePattern{
		Type:           domain.RecurrenceCustom,
		Weekdays:       []time.Weekday{time.Friday},
		Ordinal:        2,
		OrdinalWeekday: weekdayPtr(time.Tuesday),
		MonthDay:       20,
	})
	if !ok {
		t.Fatal("NextOccurrence() ok = false, want true")
	}
	if want := date(2026, 3, 6); !got.Equal(want) {
		t.Errorf("NextOccurrence() = %v, want %v", got, want)
	}
}

func TestCalculator_NextOccurrence_UnknownType(t *testing.T) {
	calc := NewCalculator()

	_, ok := calc.NextOccurrence(date(2026, 3, 2), domain.RecurrencePattern{
		Type: domain.RecurrenceType("fortnightly"),
	})
	if ok {
		t.Error("NextOccurrence() ok = true, want false for unknown type")
	}
}
