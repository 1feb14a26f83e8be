package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulerMeterName = "scheduler.service"
)

type SchedulerMetrics struct {
	suggestRequests      metric.Int64Counter
	suggestionsReturned  metric.Int64Counter
	emptySuggestions     metric.Int64Counter
	suggestDuration      metric.Float64Histogram
	occurrencesSpawned   metric.Int64Counter
	busyIntervalsFetched metric.Int64Counter
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	suggestRequests, err := meter.Int64Counter(
		"scheduler_suggest_requests_total",
		metric.WithDescription("Total number of slot suggestion requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	suggestionsReturned, err := meter.Int64Counter(
		"scheduler_suggestions_total",
		metric.WithDescription("Total number of suggestions returned"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return nil, err
	}

	emptySuggestions, err := meter.Int64Counter(
		"scheduler_empty_suggestions_total",
		metric.WithDescription("Suggestion requests that yielded no feasible slot"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	suggestDuration, err := meter.Float64Histogram(
		"scheduler_suggest_duration_seconds",
		metric.WithDescription("Time spent computing slot suggestions"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	occurrencesSpawned, err := meter.Int64Counter(
		"scheduler_occurrences_spawned_total",
		metric.WithDescription("Next occurrences spawned for completed recurring tasks"),
		metric.WithUnit("{occurrence}"),
	)
	if err != nil {
		return nil, err
	}

	busyIntervalsFetched, err := meter.Int64Counter(
		"scheduler_busy_intervals_total",
		metric.WithDescription("Busy intervals considered during suggestion requests"),
		metric.WithUnit("{interval}"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		suggestRequests:      suggestRequests,
		suggestionsReturned:  suggestionsReturned,
		emptySuggestions:     emptySuggestions,
		suggestDuration:      suggestDuration,
		occurrencesSpawned:   occurrencesSpawned,
		busyIntervalsFetched: busyIntervalsFetched,
	}, nil
}

func (m *SchedulerMetrics) RecordSuggestRequest(ctx context.Context, suggestionCount, busyCount int, duration time.Duration) {
	if m == nil {
		return
	}
	m.suggestRequests.Add(ctx, 1)
	m.suggestionsReturned.Add(ctx, int64(suggestionCount))
	m.busyIntervalsFetched.Add(ctx, int64(busyCount))
	m.suggestDuration.Record(ctx, duration.Seconds())
	if suggestionCount == 0 {
		m.emptySuggestions.Add(ctx, 1)
	}
}

func (m *SchedulerMetrics) RecordOccurrenceSpawned(ctx context.Context, patternType string) {
	if m == nil {
		return
	}
	m.occurrencesSpawned.Add(ctx, 1,
		metric.WithAttributes(attribute.String("pattern_type", patternType)),
	)
}
