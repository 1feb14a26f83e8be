package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

func TestRecordMapping_RoundTrip(t *testing.T) {
	parentID := uuid.New()
	completedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	taskDate := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	estimate := 45
	ordinalDay := time.Tuesday

	task := &domain.Task{
		ID:              uuid.New(),
		Name:            "quarterly planning",
		Description:     "prepare the review doc",
		ListID:          uuid.New(),
		Priority:        domain.PriorityHigh,
		Completed:       true,
		CompletedAt:     &completedAt,
		Date:            &taskDate,
		Deadline:        &deadline,
		EstimateMinutes: &estimate,
		Recurrence: &domain.RecurrencePattern{
			Type:           domain.RecurrenceCustom,
			Interval:       2,
			Ordinal:        3,
			OrdinalWeekday: &ordinalDay,
		},
		ParentID:  &parentID,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	record, err := toRecord(task)
	if err != nil {
		t.Fatalf("toRecord() error = %v, want nil", err)
	}

	got, err := fromRecord(record)
	if err != nil {
		t.Fatalf("fromRecord() error = %v, want nil", err)
	}

	if got.ID != task.ID {
		t.Errorf("ID = %v, want %v", got.ID, task.ID)
	}
	if got.Name != task.Name {
		t.Errorf("Name = %q, want %q", got.Name, task.Name)
	}
	if got.ListID != task.ListID {
		t.Errorf("ListID = %v, want %v", got.ListID, task.ListID)
	}
	if got.Priority != task.Priority {
		t.Errorf("Priority = %q, want %q", got.Priority, task.Priority)
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completedAt)
	}
	if got.Date == nil || !got.Date.Equal(taskDate) {
		t.Errorf("Date = %v, want %v", got.Date, taskDate)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("Deadline = %v, want %v", got.Deadline, deadline)
	}
	if got.EstimateMinutes == nil || *got.EstimateMinutes != estimate {
		t.Errorf("EstimateMinutes = %v, want %d", got.EstimateMinutes, estimate)
	}
	if got.ParentID == nil || *got.ParentID != parentID {
		t.Errorf("ParentID = %v, want %v", got.ParentID, parentID)
	}

	if got.Recurrence == nil {
		t.Fatal("Recurrence = nil, want pattern")
	}
	if got.Recurrence.Type != domain.RecurrenceCustom {
		t.Errorf("Recurrence.Type = %q, want custom", got.Recurrence.Type)
	}
	if got.Recurrence.Interval != 2 {
		t.Errorf("Recurrence.Interval = %d, want 2", got.Recurrence.Interval)
	}
	if got.Recurrence.Ordinal != 3 {
		t.Errorf("Recurrence.Ordinal = %d, want 3", got.Recurrence.Ordinal)
	}
	if got.Recurrence.OrdinalWeekday == nil || *got.Recurrence.OrdinalWeekday != time.Tuesday {
		t.Errorf("Recurrence.OrdinalWeekday = %v, want Tuesday", got.Recurrence.OrdinalWeekday)
	}
}

func TestRecordMapping_MinimalTask(t *testing.T) {
	task := &domain.Task{
		ID:     uuid.New(),
		Name:   "buy milk",
		ListID: uuid.New(),
	}

	record, err := toRecord(task)
	if err != nil {
		t.Fatalf("toRecord() error = %v, want nil", err)
	}
	if record.Recurrence != nil {
		t.Errorf("record.Recurrence = %v, want nil", record.Recurrence)
	}
	if record.ParentID != nil {
		t.Errorf("record.ParentID = %v, want nil", record.ParentID)
	}

	got, err := fromRecord(record)
	if err != nil {
		t.Fatalf("fromRecord() error = %v, want nil", err)
	}
	if got.Recurrence != nil {
		t.Errorf("Recurrence = %v, want nil", got.Recurrence)
	}
	if got.Date != nil {
		t.Errorf("Date = %v, want nil", got.Date)
	}
}

func TestRecordMapping_CorruptIDs(t *testing.T) {
	badParent := "not-a-uuid"
	tests := []struct {
		name   string
		record taskRecord
	}{
		{"bad task id", taskRecord{ID: "garbage", ListID: uuid.New().String()}},
		{"bad list id", taskRecord{ID: uuid.New().String(), ListID: "garbage"}},
		{"bad parent id", taskRecord{ID: uuid.New().String(), ListID: uuid.New().String(), ParentID: &badParent}},
		{"bad recurrence json", taskRecord{ID: uuid.New().String(), ListID: uuid.New().String(), Recurrence: []byte("{")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fromRecord(&tt.record); err == nil {
				t.Error("fromRecord() error = nil, want invalid data error")
			}
		})
	}
}
