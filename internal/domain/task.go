package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is the planner's task record as the scheduling engine sees it.
// The engine reads EstimateMinutes, Priority, Deadline and Date; the
// remaining fields are carried so spawned occurrences can copy them.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ListID      uuid.UUID  `json:"list_id"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Date            *time.Time         `json:"date,omitempty"`
	Deadline        *time.Time         `json:"deadline,omitempty"`
	EstimateMinutes *int               `json:"estimate_minutes,omitempty"`
	Recurrence      *RecurrencePattern `json:"recurrence,omitempty"`
	ParentID        *uuid.UUID         `json:"parent_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasEstimate reports whether the task carries a usable time estimate.
func (t *Task) HasEstimate() bool {
	return t.EstimateMinutes != nil && *t.EstimateMinutes > 0
}

// EstimateDuration returns the estimate as a duration, or zero when
// the task has no usable estimate.
func (t *Task) EstimateDuration() time.Duration {
	if !t.HasEstimate() {
		return 0
	}
	return time.Duration(*t.EstimateMinutes) * time.Minute
}

// BusyInterval returns the time range the task occupies on the
// calendar. ok is false for tasks that are completed or lack a
// scheduled date or estimate.
func (t *Task) BusyInterval() (BusyInterval, bool) {
	if t.Completed || t.Date == nil || !t.HasEstimate() {
		return BusyInterval{}, false
	}
	return BusyInterval{
		Start: *t.Date,
		End:   t.Date.Add(t.EstimateDuration()),
	}, true
}

// IsRecurring reports whether completing the task should spawn a next
// occurrence. A pattern without a date has nothing to recur from.
func (t *Task) IsRecurring() bool {
	return t.Recurrence != nil && t.Date != nil
}
