package suggestrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

// NewRecorder builds the suggestion result recorder. Missing InfluxDB
// credentials degrade to the noop recorder so the scheduler keeps
// working without an analytics backend.
func NewRecorder(ctx context.Context, cfg *Config) (domain.SuggestionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "suggestion result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, suggestion result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "suggestion result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
	}, nil
}

func (r *influxDBRecorder) RecordSuggestions(ctx context.Context, record domain.SuggestionRecord) error {
	point := influxdb2.NewPoint(
		"suggestion_batch",
		map[string]string{
			"task_id": record.TaskID,
		},
		map[string]any{
			"candidate_count":  record.CandidateCount,
			"available_count":  record.AvailableCount,
			"suggestion_count": record.SuggestionCount,
			"top_score":        record.TopScore,
			"duration_ms":      record.Duration.Milliseconds(),
			"requested_unix":   record.RequestedAt.Unix(),
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write suggestion result to InfluxDB",
			slog.String("task_id", record.TaskID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
