package schedule

import (
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

// Generator produces candidate slots inside working hours. All date
// math is naive local wall-clock time; timezone handling is out of
// scope for the engine.
type Generator struct {
	workStartHour int
	workEndHour   int
}

func NewGenerator(workStartHour, workEndHour int) *Generator {
	return &Generator{
		workStartHour: workStartHour,
		workEndHour:   workEndHour,
	}
}

// DaySlots returns the working slots of a single day at the given
// granularity: [start, start+step) windows from the working-day start,
// as long as the slot end stays within the working day.
func (g *Generator) DaySlots(day time.Time, slotMinutes int) []domain.TimeSlot {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), g.workStartHour, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), g.workEndHour, 0, 0, 0, day.Location())
	step := time.Duration(slotMinutes) * time.Minute

	var slots []domain.TimeSlot
	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		slots = append(slots, domain.TimeSlot{Start: cur, End: cur.Add(step)})
	}
	return slots
}

// HorizonSlots returns candidate slots from today through horizonDays
// days ahead, inclusive, dropping slots that start at or before now so
// only future slots survive for today.
func (g *Generator) HorizonSlots(now time.Time, horizonDays, slotMinutes int) []domain.TimeSlot {
	slotsPerDay := (g.workEndHour - g.workStartHour) * 60 / slotMinutes
	slots := make([]domain.TimeSlot, 0, (horizonDays+1)*slotsPerDay)

	for offset := 0; offset <= horizonDays; offset++ {
		day := now.AddDate(0, 0, offset)
		for _, slot := range g.DaySlots(day, slotMinutes) {
			if slot.Start.After(now) {
				slots = append(slots, slot)
			}
		}
	}
	return slots
}
