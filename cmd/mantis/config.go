// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/mantis/pkg/types"
)

// engineConfig resolves the engine configuration: defaults, overridden
// by any values present in the viper config file or MANTIS_* env.
func engineConfig() types.EngineConfig {
	cfg := types.DefaultEngineConfig()

	if viper.IsSet("topics.topics") {
		cfg.Topics.Topics = viper.GetInt("topics.topics")
	}
	if viper.IsSet("topics.alpha") {
		cfg.Topics.Alpha = viper.GetFloat64("topics.alpha")
	}
	if viper.IsSet("topics.beta") {
		cfg.Topics.Beta = viper.GetFloat64("topics.beta")
	}
	if viper.IsSet("topics.iterations") {
		cfg.Topics.Iterations = viper.GetInt("topics.iterations")
	}
	if viper.IsSet("topics.seed") {
		cfg.Topics.Seed = viper.GetInt64("topics.seed")
	}
	if viper.IsSet("pennant.half_life_years") {
		cfg.Pennant.HalfLifeYears = viper.GetFloat64("pennant.half_life_years")
	}
	if viper.IsSet("sector.impact_threshold") {
		cfg.Sector.ImpactThreshold = viper.GetFloat64("sector.impact_threshold")
	}
	if viper.IsSet("sector.access_threshold") {
		cfg.Sector.AccessThreshold = viper.GetFloat64("sector.access_threshold")
	}
	if viper.IsSet("ranking.max_results") {
		cfg.Ranking.MaxResults = viper.GetInt("ranking.max_results")
	}

	return cfg
}
