package recurrence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lassestilvang/taskplanner/internal/domain"
	"github.com/lassestilvang/taskplanner/internal/observability/metrics"
)

// Spawner materializes the next occurrence of a recurring task when it
// is completed. The task store owns persistence; the spawner only asks
// it to insert the new record and copy label associations.
type Spawner struct {
	calculator       *Calculator
	tasks            domain.TaskRepository
	schedulerMetrics *metrics.SchedulerMetrics
}

func NewSpawner(
	calculator *Calculator,
	tasks domain.TaskRepository,
	schedulerMetrics *metrics.SchedulerMetrics,
) *Spawner {
	return &Spawner{
		calculator:       calculator,
		tasks:            tasks,
		schedulerMetrics: schedulerMetrics,
	}
}

// SpawnNext creates the next occurrence of the completed task. It
// returns (nil, nil) when the task does not recur or the pattern yields
// no next date; skipping silently is expected behavior, not an error.
func (s *Spawner) SpawnNext(ctx context.Context, completed *domain.Task) (*domain.Task, error) {
	if !completed.IsRecurring() {
		slog.DebugContext(ctx, "task is not recurring, skipping occurrence spawn",
			slog.String("task_id", completed.ID.String()),
		)
		return nil, nil
	}

	nextDate, ok := s.calculator.NextOccurrence(*completed.Date, *completed.Recurrence)
	if !ok {
		slog.WarnContext(ctx, "unrecognized recurrence type, skipping occurrence spawn",
			slog.String("task_id", completed.ID.String()),
			slog.String("pattern_type", completed.Recurrence.Type.String()),
		)
		return nil, nil
	}

	pattern := completed.Recurrence.Clone()
	occurrence := &domain.Task{
		ID:          uuid.New(),
		Name:        completed.Name,
		Description: completed.Description,
		ListID:      completed.ListID,
		Priority:    completed.Priority,
		Date:        &nextDate,
		Recurrence:  &pattern,
		ParentID:    &completed.ID,
	}

	if completed.EstimateMinutes != nil {
		estimate := *completed.EstimateMinutes
		occurrence.EstimateMinutes = &estimate
	}

	if completed.Deadline != nil {
		// Keep the deadline the same distance from the occurrence date.
		shifted := completed.Deadline.Add(nextDate.Sub(*completed.Date))
		occurrence.Deadline = &shifted
	}

	if err := s.tasks.InsertTask(ctx, occurrence); err != nil {
		return nil, fmt.Errorf("insert spawned occurrence: %w", err)
	}

	if err := s.tasks.CopyLabels(ctx, completed.ID, occurrence.ID); err != nil {
		// The occurrence exists; losing its labels is not worth undoing it.
		slog.WarnContext(ctx, "failed to copy labels to spawned occurrence",
			slog.String("task_id", completed.ID.String()),
			slog.String("occurrence_id", occurrence.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.schedulerMetrics.RecordOccurrenceSpawned(ctx, completed.Recurrence.Type.String())

	slog.InfoContext(ctx, "spawned next occurrence",
		slog.String("task_id", completed.ID.String()),
		slog.String("occurrence_id", occurrence.ID.String()),
		slog.String("pattern_type", completed.Recurrence.Type.String()),
		slog.Time("next_date", nextDate),
	)

	return occurrence, nil
}
