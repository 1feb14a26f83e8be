package recurrence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

func TestSpawner_SpawnNext_NonRecurringTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockTaskRepository(ctrl)
	spawner := NewSpawner(NewCalculator(), repo, nil)

	taskDate := date(2026, 3, 2)
	task := &domain.Task{
		ID:   uuid.New(),
		Name: "one-off errand",
		Date: &taskDate,
	}

	got, err := spawner.SpawnNext(context.Background(), task)
	if err != nil {
		t.Fatalf("SpawnNext() error = %v, want nil", err)
	}
	if got != nil {
		t.Errorf("SpawnNext() = %v, want nil for non-recurring task", got)
	}
}

func TestSpawner_SpawnNext_RecurringWithoutDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockTaskRepository(ctrl)
	spawner := NewSpawner(NewCalculator(), repo, nil)

	task := &domain.Task{
		ID:         uuid.New(),
		Name:       "floating habit",
		Recurrence: &domain.RecurrencePattern{Type: domain.RecurrenceDaily},
	}

	got, err := spawner.SpawnNext(context.Background(), task)
	if err != nil {
		t.Fatalf("SpawnNext() error = %v, want nil", err)
	}
	if got != nil {
		t.Errorf("SpawnNext() = %v, want nil for task without date", got)
	}
}

func TestSpawner_SpawnNext_CopiesFieldsAndShiftsDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockTaskRepository(ctrl)
	spawner := NewSpawner(NewCalculator(), repo, nil)

	taskDate := date(2026, 3, 2)
	deadline := time.Date(2026, 3, 3, 17, 0, 0, 0, time.UTC)
	estimate := 60
	task := &domain.Task{
		ID:              uuid.New(),
		Name:            "weekly review",
		Description:     "review open projects",
		ListID:          uuid.New(),
		Priority:        domain.PriorityHigh,
		Date:            &taskDate,
		Deadline:        &deadline,
		EstimateMinutes: &estimate,
		Recurrence:      &domain.RecurrencePattern{Type: domain.RecurrenceWeekly},
	}

	var inserted *domain.Task
	repo.EXPECT().InsertTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, occurrence *domain.Task) error {
			inserted = occurrence
			return nil
		},
	)
	repo.EXPECT().CopyLabels(gomock.Any(), task.ID, gomock.Any()).Return(nil)

	got, err := spawner.SpawnNext(context.Background(), task)
	if err != nil {
		t.Fatalf("SpawnNext() error = %v, want nil", err)
	}
	if got == nil {
		t.Fatal("SpawnNext() = nil, want spawned occurrence")
	}
	if got != inserted {
		t.Error("SpawnNext() returned a different task than was inserted")
	}

	if got.ID == task.ID {
		t.Error("occurrence ID = source ID, want a fresh ID")
	}
	if got.Name != task.Name {
		t.Errorf("occurrence Name = %q, want %q", got.Name, task.Name)
	}
	if got.Description != task.Description {
		t.Errorf("occurrence Description = %q, want %q", got.Description, task.Description)
	}
	if got.ListID != task.ListID {
		t.Errorf("occurrence ListID = %q, want %q", got.ListID, task.ListID)
	}
	if got.Priority != task.Priority {
		t.Errorf("occurrence Priority = %q, want %q", got.Priority, task.Priority)
	}
	if got.Completed {
		t.Error("occurrence Completed = true, want false")
	}
	if got.ParentID == nil || *got.ParentID != task.ID {
		t.Errorf("occurrence ParentID = %v, want %v", got.ParentID, task.ID)
	}

	if got.Date == nil || !got.Date.Equal(date(2026, 3, 9)) {
		t.Errorf("occurrence Date = %v, want %v", got.Date, date(2026, 3, 9))
	}

	// Deadline keeps its distance from the occurrence date.
	wantDeadline := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	if got.Deadline == nil || !got.Deadline.Equal(wantDeadline) {
		t.Errorf("occurrence Deadline = %v, want %v", got.Deadline, wantDeadline)
	}

	if got.EstimateMinutes == nil || *got.EstimateMinutes != estimate {
		t.Errorf("occurrence EstimateMinutes = %v, want %d", got.EstimateMinutes, estimate)
	}
	if got.EstimateMinutes == task.EstimateMinutes {
		t.Error("occurrence EstimateMinutes aliases the source pointer")
	}

	if got.Recurrence == nil || got.Recurrence.Type != domain.RecurrenceWeekly {
		t.Errorf("occurrence Recurrence = %v, want weekly pattern", got.Recurrence)
	}
	if got.Recurrence == task.Recurrence {
		t.Error("occurrence Recurrence aliases the source pointer")
	}
}

func TestSpawner_SpawnNext_UnknownPatternSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockTaskRepository(ctrl)
	spawner := NewSpawner(NewCalculator(), repo, nil)

	taskDate := date(2026, 3, 2)
	task := &domain.Task{
		ID:         uuid.New(),
		Date:       &taskDate,
		Recurrence: &domain.RecurrencePattern{Type: domain.RecurrenceType("lunar")},
	}

	got, err := spawner.SpawnNext(context.Background(), task)
	if err != nil {
		t.Fatalf("SpawnNext() error = %v, want nil", err)
	}
	if got != nil {
		t.Errorf("SpawnNext() = %v, want nil for unknown pattern type", got)
	}
}

func TestSpawner_SpawnNext_InsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockTaskRepository(ctrl)
	spawner := NewSpawner(NewCalculator(), repo, nil)

	taskDate := date(2026, 3, 2)
	task := &domain.Task{
		ID:         uuid.New(),
		Date:       &taskDate,
		Recurrence: &domain.RecurrencePattern{Type: domain.RecurrenceDaily},
	}

	insertErr := errors.New("connection reset")
	repo.EXPECT().InsertTask(gomock.Any(), gomock.Any()).Return(insertErr)

	got, err := spawner.SpawnNext(context.Background(), task)
	if err == nil {
		t.Fatal("SpawnNext() error = nil, want insert failure")
	}
	if !errors.Is(err, insertErr) {
		t.Errorf("SpawnNext() error = %v, want wrapped %v", err, insertErr)
	}
	if got != nil {
		t.Errorf("SpawnNext() = %v, want nil on insert failure", got)
	}
}

func TestSpawner_SpawnNext_CopyLabelsFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockTaskRepository(ctrl)
	spawner := NewSpawner(NewCalculator(), repo, nil)

	taskDate := date(2026, 3, 2)
	task := &domain.Task{
		ID:         uuid.New(),
		Date:       &taskDate,
		Recurrence: &domain.RecurrencePattern{Type: domain.RecurrenceDaily},
	}

	repo.EXPECT().InsertTask(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().CopyLabels(gomock.Any(), task.ID, gomock.Any()).Return(errors.New("labels table locked"))

	got, err := spawner.SpawnNext(context.Background(), task)
	if err != nil {
		t.Fatalf("SpawnNext() error = %v, want nil when only label copy fails", err)
	}
	if got == nil {
		t.Fatal("SpawnNext() = nil, want spawned occurrence despite label failure")
	}
}
