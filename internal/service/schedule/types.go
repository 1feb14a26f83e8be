package schedule

import (
	"github.com/lassestilvang/taskplanner/internal/domain"
)

// Response carries the ranked suggestions plus the counts recorded for
// observability.
type Response struct {
	Suggestions    []domain.Suggestion
	CandidateCount int
	AvailableCount int
	BusyCount      int
}

// TopScore returns the best score among the suggestions, or zero when
// there are none.
func (r *Response) TopScore() int {
	if len(r.Suggestions) == 0 {
		return 0
	}
	return r.Suggestions[0].Score
}
