package domain

import (
	"context"
	"time"
)

// SuggestionRecord summarizes one suggestion request for offline
// analysis of scheduler behavior.
type SuggestionRecord struct {
	TaskID          string
	RequestedAt     time.Time
	CandidateCount  int
	AvailableCount  int
	SuggestionCount int
	TopScore        int
	Duration        time.Duration
}

// SuggestionRecorder records suggestion request outcomes. Recording is
// best effort and must never block or fail a suggestion response.
type SuggestionRecorder interface {
	RecordSuggestions(ctx context.Context, record SuggestionRecord) error
	Close() error
}
