// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TopicModelConfig holds settings for fitting the LDA topic model.
type TopicModelConfig struct {
	// Topics is the fixed number of topics K. Chosen once per corpus;
	// `mantis calibrate` suggests a value for a given corpus size.
	Topics int `json:"topics" yaml:"topics"`

	// Alpha is the symmetric document-topic Dirichlet prior.
	Alpha float64 `json:"alpha" yaml:"alpha"`

	// Beta is the symmetric topic-word Dirichlet prior.
	Beta float64 `json:"beta" yaml:"beta"`

	// Iterations is the number of Gibbs sampling sweeps.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Seed makes fitting reproducible. The sampler never falls back to
	// a global random source.
	Seed int64 `json:"seed" yaml:"seed"`
}

// PennantConfig holds settings for the citation-graph access-ease score.
type PennantConfig struct {
	// HalfLifeYears is the citation recency half-life: a citation from
	// a paper published h years ago contributes 0.5^(h/HalfLifeYears)
	// to the weighted in-degree. Zero or negative disables decay so
	// every citation counts 1.
	HalfLifeYears float64 `json:"half_life_years" yaml:"half_life_years"`
}

// SectorConfig holds the fixed thresholds that partition the
// (cognitive-impact, access-ease) plane into the three sectors. These
// are calibrated per corpus through configuration, never per query.
type SectorConfig struct {
	// ImpactThreshold is the x-axis cutoff between predecessor papers
	// (below) and successor/peer papers (at or above).
	ImpactThreshold float64 `json:"impact_threshold" yaml:"impact_threshold"`

	// AccessThreshold is the y-axis cutoff between successor papers
	// (below) and peer papers (at or above).
	AccessThreshold float64 `json:"access_threshold" yaml:"access_threshold"`
}

// RankingConfig holds settings for the ranking stage.
type RankingConfig struct {
	// MaxResults caps the returned result list. Zero means unlimited.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// EngineConfig groups the configuration for all engine stages.
type EngineConfig struct {
	Topics  TopicModelConfig `json:"topics" yaml:"topics"`
	Pennant PennantConfig    `json:"pennant" yaml:"pennant"`
	Sector  SectorConfig     `json:"sector" yaml:"sector"`
	Ranking RankingConfig    `json:"ranking" yaml:"ranking"`
}

// DefaultEngineConfig returns the engine defaults. Topic count suits a
// small-to-medium corpus; large corpora should run `mantis calibrate`.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Topics: TopicModelConfig{
			Topics:     20,
			Alpha:      0.1,
			Beta:       0.01,
			Iterations: 200,
			Seed:       42,
		},
		Pennant: PennantConfig{
			HalfLifeYears: 0,
		},
		Sector: SectorConfig{
			ImpactThreshold: 0.5,
			AccessThreshold: 0.5,
		},
		Ranking: RankingConfig{
			MaxResults: 20,
		},
	}
}
