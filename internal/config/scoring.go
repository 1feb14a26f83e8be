package config

import (
	"os"
)

const (
	scoringStrategyEnv = "SCORING_STRATEGY"

	defaultScoringStrategy = "heuristic"
)

type ScoringStrategy string

const (
	ScoringStrategyHeuristic ScoringStrategy = "heuristic"
	ScoringStrategyFlat      ScoringStrategy = "flat"
)

type ScoringConfig struct {
	Strategy ScoringStrategy
}

func LoadScoringConfig() *ScoringConfig {
	strategy := ScoringStrategy(os.Getenv(scoringStrategyEnv))
	if strategy == "" {
		strategy = defaultScoringStrategy
	}

	if strategy != ScoringStrategyHeuristic && strategy != ScoringStrategyFlat {
		strategy = defaultScoringStrategy
	}

	return &ScoringConfig{
		Strategy: strategy,
	}
}
