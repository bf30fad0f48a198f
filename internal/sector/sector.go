// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sector places ranked papers in the (cognitive-impact,
// access-ease) plane and assigns each a relational sector: Successor,
// Peer, or Predecessor.
package sector

import (
	"github.com/pdiddy/mantis/internal/topics"
	"github.com/pdiddy/mantis/pkg/types"
)

// Classifier partitions the plane with the fixed thresholds from
// configuration. Classification is a pure function of (x, y) and the
// thresholds: identical inputs always yield the same sector.
type Classifier struct {
	cfg types.SectorConfig
}

// NewClassifier returns a classifier using the given thresholds.
func NewClassifier(cfg types.SectorConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify assigns the sector for a point:
//
//	Successor:   impact ≥ threshold, access below threshold — topically
//	             close to the query frontier, not yet widely cited.
//	Peer:        high on both axes — established and central.
//	Predecessor: impact below threshold — foundational or distal work.
//
// The three regions are mutually exclusive and cover the whole plane.
func (cl *Classifier) Classify(coords types.Coordinates) types.Sector {
	if coords.X < cl.cfg.ImpactThreshold {
		return types.SectorPredecessor
	}
	if coords.Y < cl.cfg.AccessThreshold {
		return types.SectorSuccessor
	}
	return types.SectorPeer
}

// Coordinates computes a result's plot position relative to the query
// centroid. x is the cognitive-impact measure: the mean of the query
// similarity score and the Jensen-Shannon closeness of the paper's
// topic vector to the centroid, so it rises monotonically as a paper
// moves toward the query's topical frontier. y is the Pennant
// access-ease score. Both axes are in [0,1].
func Coordinates(res types.ScoredResult, paperVec, centroid types.TopicVector) types.Coordinates {
	closeness := 1 - topics.JensenShannon(paperVec, centroid)
	return types.Coordinates{
		X: (res.LDAScore + closeness) / 2,
		Y: res.PennantScore,
	}
}
