package scoring

import (
	"strings"
	"time"

	"github.com/lassestilvang/taskplanner/internal/domain"
)

var _ Strategy = (*HeuristicStrategy)(nil)

// ruleInput is the scoring context shared by every rule.
type ruleInput struct {
	slot     domain.TimeSlot
	priority domain.Priority
	deadline *time.Time
	estimate time.Duration
	now      time.Time
}

// rule is one independent scoring adjustment. Rules fire on their own
// predicate and contribute their delta and label in declaration order,
// which keeps the reason string a direct trace of what applied.
type rule struct {
	delta   int
	label   string
	applies func(in ruleInput) bool
}

// HeuristicStrategy accumulates an ordered list of adjustment rules on
// top of a base score of 50, clamped to [0, 100].
type HeuristicStrategy struct {
	rules []rule
}

func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{rules: defaultRules()}
}

func (s *HeuristicStrategy) Score(slot domain.TimeSlot, task *domain.Task, now time.Time) (int, string) {
	in := ruleInput{
		slot:     slot,
		priority: task.Priority,
		deadline: task.Deadline,
		estimate: task.EstimateDuration(),
		now:      now,
	}
	if in.estimate <= 0 {
		in.estimate = defaultEstimate
	}

	score := baseScore
	var labels []string
	for _, r := range s.rules {
		if r.applies(in) {
			score += r.delta
			labels = append(labels, r.label)
		}
	}

	if len(labels) == 0 {
		return clampScore(score), defaultReason
	}
	return clampScore(score), strings.Join(labels, "; ")
}

func defaultRules() []rule {
	return []rule{
		// Priority and urgency.
		{
			delta: 30,
			label: "Early slot for high priority task",
			applies: func(in ruleInput) bool {
				return in.priority.IsHigh() && startsWithin(in, 24*time.Hour)
			},
		},
		{
			delta: 20,
			label: "Prompt slot for high priority task",
			applies: func(in ruleInput) bool {
				return in.priority.IsHigh() && !startsWithin(in, 24*time.Hour) && startsWithin(in, 48*time.Hour)
			},
		},
		{
			delta: 15,
			label: "Timely slot for medium priority task",
			applies: func(in ruleInput) bool {
				return in.priority.IsMedium() && startsWithin(in, 48*time.Hour)
			},
		},

		// Deadline proximity. The positive brackets are mutually
		// exclusive; only the tightest applicable one fires.
		{
			delta: 25,
			label: "Close to deadline",
			applies: func(in ruleInput) bool {
				h := hoursUntilDeadline(in)
				return h != nil && *h > 0 && *h <= 2*in.estimate.Hours()
			},
		},
		{
			delta: 20,
			label: "Deadline within a day",
			applies: func(in ruleInput) bool {
				h := hoursUntilDeadline(in)
				return h != nil && *h > 0 && *h <= 24 && *h > 2*in.estimate.Hours()
			},
		},
		{
			delta: 10,
			label: "Deadline within two days",
			applies: func(in ruleInput) bool {
				h := hoursUntilDeadline(in)
				return h != nil && *h > 24 && *h <= 48 && *h > 2*in.estimate.Hours()
			},
		},
		{
			delta: -20,
			label: "After deadline",
			applies: func(in ruleInput) bool {
				h := hoursUntilDeadline(in)
				return h != nil && *h < 0
			},
		},

		// Time of day.
		{
			delta: 5,
			label: "Peak focus hours",
			applies: func(in ruleInput) bool {
				hour := in.slot.Start.Hour()
				return hour >= 9 && hour < 12
			},
		},
		{
			delta: -3,
			label: "Late in the day",
			applies: func(in ruleInput) bool {
				return in.slot.Start.Hour() >= 16
			},
		},

		// Recency.
		{
			delta: 5,
			label: "Available today",
			applies: func(in ruleInput) bool {
				return startsWithin(in, 24*time.Hour)
			},
		},
		{
			delta: 3,
			label: "Available tomorrow",
			applies: func(in ruleInput) bool {
				return !startsWithin(in, 24*time.Hour) && startsWithin(in, 48*time.Hour)
			},
		},
	}
}

func startsWithin(in ruleInput, window time.Duration) bool {
	return in.slot.Start.Sub(in.now) < window
}

func hoursUntilDeadline(in ruleInput) *float64 {
	if in.deadline == nil {
		return nil
	}
	h := in.deadline.Sub(in.slot.Start).Hours()
	return &h
}
