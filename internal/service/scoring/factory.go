package scoring

import (
	"log/slog"

	"github.com/lassestilvang/taskplanner/internal/config"
)

// NewStrategy creates a scoring Strategy based on the configuration.
// If cfg is nil, it defaults to the heuristic strategy.
func NewStrategy(cfg *config.ScoringConfig) Strategy {
	if cfg == nil {
		slog.Info("scoring config is nil, using default heuristic scoring")
		return NewHeuristicStrategy()
	}

	switch cfg.Strategy {
	case config.ScoringStrategyFlat:
		slog.Info("using flat slot scoring")
		return NewFlatStrategy()
	case config.ScoringStrategyHeuristic:
		fallthrough
	default:
		slog.Info("using heuristic slot scoring")
		return NewHeuristicStrategy()
	}
}
