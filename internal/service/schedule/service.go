package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lassestilvang/taskplanner/internal/config"
	"github.com/lassestilvang/taskplanner/internal/domain"
	"github.com/lassestilvang/taskplanner/internal/observability/metrics"
	"github.com/lassestilvang/taskplanner/internal/service/scoring"
)

// TaskSource supplies the scheduled tasks occupying the search window.
// It is the engine's only view of the task store; a caching decorator
// can stand in for the repository here.
type TaskSource interface {
	ScheduledIncomplete(ctx context.Context, start, end time.Time) ([]domain.Task, error)
}

// Service composes slot generation, conflict filtering and scoring into
// ranked suggestions. Suggestions are advisory: two concurrent requests
// may recommend the same slot since nothing is reserved.
type Service struct {
	tasks            TaskSource
	generator        *Generator
	filter           *Filter
	scorer           scoring.Strategy
	schedulerMetrics *metrics.SchedulerMetrics

	horizonDays  int
	slotMinutes  int
	defaultCount int
}

func NewService(
	tasks TaskSource,
	generator *Generator,
	filter *Filter,
	scorer scoring.Strategy,
	schedulerMetrics *metrics.SchedulerMetrics,
	cfg *config.SchedulerConfig,
) *Service {
	return &Service{
		tasks:            tasks,
		generator:        generator,
		filter:           filter,
		scorer:           scorer,
		schedulerMetrics: schedulerMetrics,
		horizonDays:      cfg.HorizonDays,
		slotMinutes:      cfg.SlotMinutes,
		defaultCount:     cfg.SuggestionCount,
	}
}

// SuggestSlots returns up to count ranked suggestions for the task,
// searching from now through the horizon. A task without a usable
// estimate yields an empty list, not an error; a failing task store
// read is propagated as a fault.
func (s *Service) SuggestSlots(ctx context.Context, task *domain.Task, count int, now time.Time) (*Response, error) {
	if count <= 0 {
		count = s.defaultCount
	}

	if !task.HasEstimate() {
		slog.DebugContext(ctx, "task has no usable estimate, nothing to suggest",
			slog.String("task_id", task.ID.String()),
		)
		return &Response{Suggestions: []domain.Suggestion{}}, nil
	}
	required := task.EstimateDuration()

	windowStart := startOfDay(now)
	windowEnd := windowStart.AddDate(0, 0, s.horizonDays+1)

	started := time.Now()
	scheduled, err := s.tasks.ScheduledIncomplete(ctx, windowStart, windowEnd)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch scheduled tasks for busy intervals",
			slog.String("task_id", task.ID.String()),
			slog.Time("window_start", windowStart),
			slog.Time("window_end", windowEnd),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetch busy window: %w", err)
	}

	busy := busyIntervals(scheduled, task.ID)
	candidates := s.generator.HorizonSlots(now, s.horizonDays, s.slotMinutes)
	available := s.filter.AvailableSlots(candidates, busy, required)

	slog.DebugContext(ctx, "filtered candidate slots",
		slog.Int("candidates", len(candidates)),
		slog.Int("busy_intervals", len(busy)),
		slog.Int("available", len(available)),
	)

	suggestions := make([]domain.Suggestion, 0, len(available))
	for _, slot := range available {
		score, reason := s.scorer.Score(slot, task, now)
		suggestions = append(suggestions, domain.Suggestion{
			StartTime: slot.Start,
			EndTime:   slot.Start.Add(required),
			Score:     score,
			Reason:    reason,
		})
	}

	// Stable sort keeps chronological order among equal scores.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > count {
		suggestions = suggestions[:count]
	}

	s.schedulerMetrics.RecordSuggestRequest(ctx, len(suggestions), len(busy), time.Since(started))

	slog.InfoContext(ctx, "slot suggestions computed",
		slog.String("task_id", task.ID.String()),
		slog.Int("suggestion_count", len(suggestions)),
		slog.Int("busy_intervals", len(busy)),
	)

	return &Response{
		Suggestions:    suggestions,
		CandidateCount: len(candidates),
		AvailableCount: len(available),
		BusyCount:      len(busy),
	}, nil
}

// busyIntervals derives the occupied ranges from scheduled tasks,
// skipping the task being scheduled so it never conflicts with itself.
func busyIntervals(tasks []domain.Task, exclude uuid.UUID) []domain.BusyInterval {
	intervals := make([]domain.BusyInterval, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == exclude {
			continue
		}
		if interval, ok := t.BusyInterval(); ok {
			intervals = append(intervals, interval)
		}
	}
	return intervals
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
