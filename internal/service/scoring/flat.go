package scoring

import (
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

var _ Strategy = (*FlatStrategy)(nil)

// FlatStrategy gives every slot the base score, which turns ranking
// into plain chronological order. Useful when heuristic ranking should
// be switched off without touching the scheduler.
type FlatStrategy struct{}

func NewFlatStrategy() *FlatStrategy {
	return &FlatStrategy{}
}

func (s *FlatStrategy) Score(_ domain.TimeSlot, _ *domain.Task, _ time.Time) (int, string) {
	return baseScore, defaultReason
}
