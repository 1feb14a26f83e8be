package suggestrecorder

import (
	"context"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

type noopRecorder struct{}

// NewNoopRecorder returns a recorder that drops every record. Used when
// suggestion result recording is disabled or not configured.
func NewNoopRecorder() domain.SuggestionRecorder {
	return &noopRecorder{}
}

func (r *noopRecorder) RecordSuggestions(_ context.Context, _ domain.SuggestionRecord) error {
	return nil
}

func (r *noopRecorder) Close() error {
	return nil
}
