package recurrence

import (
	"sort"
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

// Calculator derives the next occurrence date of a repeating task from
// its pattern. It is stateless and safe for concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// NextOccurrence returns the date following current according to the
// pattern. ok is false only when the pattern type is unrecognized;
// callers must then skip spawning rather than treat it as an error.
func (c *Calculator) NextOccurrence(current time.Time, pattern domain.RecurrencePattern) (time.Time, bool) {
	interval := pattern.EffectiveInterval()

	switch pattern.Type {
	case domain.RecurrenceDaily:
		return current.AddDate(0, 0, interval), true
	case domain.RecurrenceWeekly:
		return current.AddDate(0, 0, 7*interval), true
	case domain.RecurrenceWeekday:
		// Interval is ignored for this family; inherited behavior.
		return nextWorkday(current), true
	case domain.RecurrenceMonthly:
		return addMonthsClamped(current, interval), true
	case domain.RecurrenceYearly:
		return addMonthsClamped(current, 12*interval), true
	case domain.RecurrenceCustom:
		return customRuleFor(pattern).next(current, interval), true
	default:
		return time.Time{}, false
	}
}

// nextWorkday advances one day at a time until landing on Monday-Friday.
func nextWorkday(current time.Time) time.Time {
	next := current.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// addMonthsClamped advances by whole months, clamping the day to the
// last valid day of the target month so Jan 31 plus one month lands on
// the end of February instead of rolling into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	anchor := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := daysIn(anchor.Year(), anchor.Month()); day > last {
		day = last
	}

	return time.Date(anchor.Year(), anchor.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day zero of the following month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// customRule is one variant of the custom sub-pattern. Representing the
// variants as a tagged union makes the precedence between them an
// explicit contract instead of a side effect of field-checking order.
type customRule interface {
	next(current time.Time, interval int) time.Time
}

// customRuleFor selects the sub-pattern variant. When several field
// groups are set, precedence is: weekday set, then ordinal weekday,
// then month day, then plain interval days.
func customRuleFor(p domain.RecurrencePattern) customRule {
	switch {
	case len(p.Weekdays) > 0:
		days := append([]time.Weekday(nil), p.Weekdays...)
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
		return weekdaySetRule{days: days}
	case p.Ordinal > 0 && p.OrdinalWeekday != nil:
		return ordinalWeekdayRule{ordinal: p.Ordinal, weekday: *p.OrdinalWeekday}
	case p.MonthDay > 0:
		return monthDayRule{day: p.MonthDay}
	default:
		return intervalDaysRule{}
	}
}

// weekdaySetRule repeats on specific weekdays, e.g. every Monday and
// Wednesday. The interval does not apply to this variant.
type weekdaySetRule struct {
	days []time.Weekday // sorted ascending
}

func (r weekdaySetRule) next(current time.Time, _ int) time.Time {
	cur := current.Weekday()
	for _, d := range r.days {
		if d > cur {
			return current.AddDate(0, 0, int(d-cur))
		}
	}
	// Wrap to the first listed weekday of the following week.
	return current.AddDate(0, 0, 7-int(cur)+int(r.days[0]))
}

// ordinalWeekdayRule repeats on the nth weekday of a month, e.g. the
// third Tuesday.
type ordinalWeekdayRule struct {
	ordinal int
	weekday time.Weekday
}

func (r ordinalWeekdayRule) next(current time.Time, interval int) time.Time {
	first := time.Date(current.Year(), current.Month()+time.Month(interval), 1,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())

	// The scan is bounded by the month length, so an out-of-range
	// ordinal (a "6th Monday") terminates and yields the last matching
	// weekday of the month.
	var lastMatch time.Time
	count := 0
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != r.weekday {
			continue
		}
		count++
		lastMatch = day
		if count == r.ordinal {
			return day
		}
	}
	return lastMatch
}

// monthDayRule repeats on a fixed day of the month, clamped to the
// target month's length so day 31 stays valid in February.
type monthDayRule struct {
	day int
}

func (r monthDayRule) next(current time.Time, interval int) time.Time {
	anchor := time.Date(current.Year(), current.Month()+time.Month(interval), 1,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())

	day := r.day
	if last := daysIn(anchor.Year(), anchor.Month()); day > last {
		day = last
	}

	return time.Date(anchor.Year(), anchor.Month(), day,
		current.Hour(), current.Minute(), current.Second(), current.Nanosecond(), current.Location())
}

// intervalDaysRule is the fallback when a custom pattern names no
// sub-pattern fields: repeat every interval days.
type intervalDaysRule struct{}

func (intervalDaysRule) next(current time.Time, interval int) time.Time {
	return current.AddDate(0, 0, interval)
}
