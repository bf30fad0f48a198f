// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the MANTIS engine:
// corpus records, topic distributions, scored search results, and the
// configuration blocks the engine stages consume.
package types

import (
	"fmt"
	"math"
)

// TopicVector is a probability distribution over the K topics of a
// fitted model. Weights are non-negative and sum to 1.
type TopicVector []float64

// UniformTopicVector returns the uniform distribution over k topics.
// It is the degenerate vector used for empty or out-of-vocabulary
// queries so downstream scoring never divides by zero.
func UniformTopicVector(k int) TopicVector {
	if k <= 0 {
		return nil
	}
	v := make(TopicVector, k)
	for i := range v {
		v[i] = 1.0 / float64(k)
	}
	return v
}

// Validate reports whether the vector is a valid probability
// distribution: non-empty, all weights >= 0, summing to 1 within
// floating tolerance.
func (v TopicVector) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("topic vector is empty")
	}
	sum := 0.0
	for i, w := range v {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("topic %d has invalid weight %v", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("topic weights sum to %v, want 1", sum)
	}
	return nil
}

// Dominant returns the index of the highest-weighted topic. Ties break
// toward the lower index so the result is deterministic.
func (v TopicVector) Dominant() int {
	best := -1
	bestW := math.Inf(-1)
	for i, w := range v {
		if w > bestW {
			best, bestW = i, w
		}
	}
	return best
}

// Clone returns an independent copy of the vector.
func (v TopicVector) Clone() TopicVector {
	if v == nil {
		return nil
	}
	out := make(TopicVector, len(v))
	copy(out, v)
	return out
}

// Sector classifies a result paper relative to the query: Successor
// papers are topically close but not yet widely cited, Peers are close
// and well cited, Predecessors are foundational work further from the
// query's topical frontier.
type Sector string

const (
	SectorSuccessor   Sector = "successor"
	SectorPeer        Sector = "peer"
	SectorPredecessor Sector = "predecessor"
)

// Coordinates is a result's position in the (cognitive-impact,
// access-ease) plane. Both axes are in [0,1]; scaling to pixels is a
// presentation concern.
type Coordinates struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ScoredResult is one ranked paper returned by a search. Results are
// derived per query and never persisted.
type ScoredResult struct {
	Paper Paper `json:"paper" yaml:"paper"`

	// LDAScore is the topic-model relevance of the paper to the query,
	// in [0,1].
	LDAScore float64 `json:"lda_score" yaml:"lda_score"`

	// PennantScore is the citation-derived access-ease score, in [0,1].
	PennantScore float64 `json:"pennant_score" yaml:"pennant_score"`

	// IntegratedScore is the balance-weighted combination the results
	// are ordered by.
	IntegratedScore float64 `json:"integrated_score" yaml:"integrated_score"`

	Sector      Sector      `json:"sector" yaml:"sector"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
}
