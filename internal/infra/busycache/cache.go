package busycache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lassestilvang/taskplanner/internal/domain"
	"github.com/lassestilvang/taskplanner/internal/service/schedule"
)

const (
	busyWindowKeyPrefix = "schedule:busywindow:"
	keyTimeLayout       = "2006-01-02-15-04"

	// Short TTL: busy windows change whenever a task is scheduled, so
	// cached entries only smooth over bursts of suggestion requests.
	busyWindowTTL = time.Minute
)

// taskEntry is the cached scheduling projection of a task: just the
// fields the scheduler reads to build busy intervals.
type taskEntry struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	EstimateMinutes int       `json:"estimate_minutes"`
}

var _ schedule.TaskSource = (*Cache)(nil)

// Cache is a read-through Redis cache in front of the task store's
// busy-window query. Cache failures degrade to the underlying source;
// they never fail a suggestion request.
type Cache struct {
	source schedule.TaskSource
	client *redis.Client
}

func New(source schedule.TaskSource, client *redis.Client) *Cache {
	return &Cache{
		source: source,
		client: client,
	}
}

func (c *Cache) ScheduledIncomplete(ctx context.Context, start, end time.Time) ([]domain.Task, error) {
	key := windowKey(start, end)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if tasks, ok := decodeEntries(ctx, data); ok {
			slog.DebugContext(ctx, "busy window served from cache",
				slog.String("key", key),
				slog.Int("task_count", len(tasks)),
			)
			return tasks, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "busy window cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	tasks, err := c.source.ScheduledIncomplete(ctx, start, end)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, tasks)
	return tasks, nil
}

func (c *Cache) store(ctx context.Context, key string, tasks []domain.Task) {
	entries := make([]taskEntry, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == nil || !t.HasEstimate() {
			continue
		}
		entries = append(entries, taskEntry{
			ID:              t.ID.String(),
			Date:            *t.Date,
			EstimateMinutes: *t.EstimateMinutes,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode busy window for cache",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := c.client.Set(ctx, key, data, busyWindowTTL).Err(); err != nil {
		slog.WarnContext(ctx, "busy window cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func decodeEntries(ctx context.Context, data []byte) ([]domain.Task, bool) {
	var entries []taskEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.WarnContext(ctx, "corrupt busy window cache entry, falling back to store",
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	tasks := make([]domain.Task, 0, len(entries))
	for _, e := range entries {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			continue
		}
		date := e.Date
		estimate := e.EstimateMinutes
		tasks = append(tasks, domain.Task{
			ID:              id,
			Date:            &date,
			EstimateMinutes: &estimate,
		})
	}
	return tasks, true
}

func windowKey(start, end time.Time) string {
	return busyWindowKeyPrefix + start.Format(keyTimeLayout) + ":" + end.Format(keyTimeLayout)
}
