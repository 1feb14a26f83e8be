package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=task_repository.go -destination=task_repository_mock.go -package=domain

// TaskRepository is the external task store the scheduling engine
// collaborates with. The engine never owns persistence; it reads
// scheduled tasks to derive busy intervals and inserts spawned
// occurrences.
type TaskRepository interface {
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)

	// ScheduledIncomplete returns incomplete tasks that have both a
	// date and an estimate, with date in [start, end).
	ScheduledIncomplete(ctx context.Context, start, end time.Time) ([]Task, error)

	InsertTask(ctx context.Context, task *Task) error

	// CopyLabels attaches every label of the source task to the new task.
	CopyLabels(ctx context.Context, sourceID, newID uuid.UUID) error

	// MarkCompleted marks the task completed at the given time and
	// returns the updated record.
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (*Task, error)
}
