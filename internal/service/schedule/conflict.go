package schedule

import (
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

// Filter keeps the candidate slots a task of a given duration can
// actually occupy without colliding with existing busy intervals.
type Filter struct {
	workEndHour int
}

func NewFilter(workEndHour int) *Filter {
	return &Filter{workEndHour: workEndHour}
}

// AvailableSlots returns, in chronological order, the candidates whose
// proposed occupation [start, start+required) fits before the end of
// the working day and touches no busy interval. A proposed slot may run
// past the candidate's own end into following slots; only the working
// day bounds it. Overlap is half-open: touching endpoints are fine.
func (f *Filter) AvailableSlots(
	candidates []domain.TimeSlot,
	busy []domain.BusyInterval,
	required time.Duration,
) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(candidates))

	for _, candidate := range candidates {
		proposedEnd := candidate.Start.Add(required)
		if proposedEnd.After(f.workEnd(candidate.Start)) {
			continue
		}

		conflict := false
		for _, interval := range busy {
			if interval.Overlaps(candidate.Start, proposedEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, candidate)
		}
	}

	return available
}

func (f *Filter) workEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), f.workEndHour, 0, 0, 0, t.Location())
}
