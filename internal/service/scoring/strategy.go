package scoring

import (
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	// defaultReason is returned when no scoring rule fires.
	defaultReason = "Available time slot"

	// defaultEstimate stands in for tasks scored without an estimate.
	defaultEstimate = time.Hour
)

// Strategy scores a candidate slot for a task at a given moment.
// Implementations must be deterministic and side-effect free.
type Strategy interface {
	Score(slot domain.TimeSlot, task *domain.Task, now time.Time) (int, string)
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
