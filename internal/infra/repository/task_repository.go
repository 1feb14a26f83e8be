package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

type taskRecord struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Name            string
	Description     string
	ListID          string `gorm:"type:uuid"`
	Priority        string
	Completed       bool `gorm:"index:idx_tasks_schedule"`
	CompletedAt     *time.Time
	Date            *time.Time `gorm:"index:idx_tasks_schedule"`
	Deadline        *time.Time
	EstimateMinutes *int
	Recurrence      []byte  `gorm:"type:jsonb"`
	ParentID        *string `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (taskRecord) TableName() string {
	return "tasks"
}

type taskLabelRecord struct {
	TaskID  string `gorm:"primaryKey;type:uuid"`
	LabelID string `gorm:"primaryKey;type:uuid"`
}

func (taskLabelRecord) TableName() string {
	return "task_labels"
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepository{db: db}
}

// Migrate creates or updates the tables the repository needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&taskRecord{}, &taskLabelRecord{})
}

func (r *taskRepository) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var record taskRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return fromRecord(&record)
}

func (r *taskRepository) ScheduledIncomplete(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	var records []taskRecord
	err := r.db.WithContext(ctx).
		Where("completed = ? AND date IS NOT NULL AND estimate_minutes IS NOT NULL AND date >= ? AND date < ?",
			false, start, end).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query scheduled tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for i := range records {
		task, err := fromRecord(&records[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *taskRepository) InsertTask(ctx context.Context, task *domain.Task) error {
	record, err := toRecord(task)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *taskRepository) CopyLabels(ctx context.Context, sourceID, newID uuid.UUID) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO task_labels (task_id, label_id) SELECT ?, label_id FROM task_labels WHERE task_id = ?",
		newID.String(), sourceID.String(),
	).Error
	if err != nil {
		return fmt.Errorf("copy labels: %w", err)
	}
	return nil
}

func (r *taskRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Task, error) {
	var record taskRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("load task for completion: %w", err)
	}

	if record.Completed {
		return nil, domain.ErrTaskAlreadyCompleted
	}

	record.Completed = true
	record.CompletedAt = &at
	if err := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{"completed": true, "completed_at": at}).Error; err != nil {
		return nil, fmt.Errorf("mark task completed: %w", err)
	}

	return fromRecord(&record)
}

func toRecord(task *domain.Task) (*taskRecord, error) {
	record := &taskRecord{
		ID:              task.ID.String(),
		Name:            task.Name,
		Description:     task.Description,
		ListID:          task.ListID.String(),
		Priority:        task.Priority.String(),
		Completed:       task.Completed,
		CompletedAt:     task.CompletedAt,
		Date:            task.Date,
		Deadline:        task.Deadline,
		EstimateMinutes: task.EstimateMinutes,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}

	if task.ParentID != nil {
		parent := task.ParentID.String()
		record.ParentID = &parent
	}

	if task.Recurrence != nil {
		data, err := json.Marshal(task.Recurrence)
		if err != nil {
			return nil, domain.ErrInvalidTaskData
		}
		record.Recurrence = data
	}

	return record, nil
}

func fromRecord(record *taskRecord) (*domain.Task, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, domain.ErrInvalidTaskData
	}

	listID, err := uuid.Parse(record.ListID)
	if err != nil {
		return nil, domain.ErrInvalidTaskData
	}

	task := &domain.Task{
		ID:              id,
		Name:            record.Name,
		Description:     record.Description,
		ListID:          listID,
		Priority:        domain.Priority(record.Priority),
		Completed:       record.Completed,
		CompletedAt:     record.CompletedAt,
		Date:            record.Date,
		Deadline:        record.Deadline,
		EstimateMinutes: record.EstimateMinutes,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}

	if record.ParentID != nil {
		parent, err := uuid.Parse(*record.ParentID)
		if err != nil {
			return nil, domain.ErrInvalidTaskData
		}
		task.ParentID = &parent
	}

	if len(record.Recurrence) > 0 {
		var pattern domain.RecurrencePattern
		if err := json.Unmarshal(record.Recurrence, &pattern); err != nil {
			return nil, domain.ErrInvalidTaskData
		}
		task.Recurrence = &pattern
	}

	return task, nil
}
