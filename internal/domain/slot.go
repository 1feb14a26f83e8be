package domain

import (
	"time"
)

// TimeSlot is a candidate time range considered for scheduling,
// independent of any task. Slots are computed on demand and never
// persisted.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// BusyInterval is a time range already consumed by an existing,
// incomplete, dated task.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the interval.
// Intervals are half-open: touching endpoints do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// Suggestion is one ranked scheduling proposal. Suggestions are
// advisory: nothing is reserved on their behalf.
type Suggestion struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Score     int       `json:"score"`
	Reason    string    `json:"reason"`
}
