package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/lassestilvang/taskplanner/internal/service/schedule"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

func StartSuggestSpan(ctx context.Context, taskID string, count int) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.suggest_slots",
		trace.WithAttributes(
			attribute.String("task_id", taskID),
			attribute.Int("requested_count", count),
		),
	)
}

func RecordSuggestResult(span trace.Span, suggestionCount int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.Int("suggestion_count", suggestionCount))
	span.SetStatus(codes.Ok, "")
}

func StartSpawnSpan(ctx context.Context, taskID, patternType string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.spawn_occurrence",
		trace.WithAttributes(
			attribute.String("task_id", taskID),
			attribute.String("pattern_type", patternType),
		),
	)
}

func RecordSpawnResult(span trace.Span, spawned bool, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.Bool("spawned", spawned))
	span.SetStatus(codes.Ok, "")
}
