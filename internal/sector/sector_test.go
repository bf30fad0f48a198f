// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sector

import (
	"testing"

	"github.com/pdiddy/mantis/pkg/types"
)

func TestClassify(t *testing.T) {
	cl := NewClassifier(types.SectorConfig{ImpactThreshold: 0.5, AccessThreshold: 0.5})

	tests := []struct {
		name string
		x, y float64
		want types.Sector
	}{
		{"low impact, low access", 0.1, 0.1, types.SectorPredecessor},
		{"low impact, high access", 0.1, 0.9, types.SectorPredecessor},
		{"high impact, low access", 0.9, 0.1, types.SectorSuccessor},
		{"high impact, high access", 0.9, 0.9, types.SectorPeer},
		{"impact exactly at threshold", 0.5, 0.9, types.SectorPeer},
		{"access exactly at threshold", 0.9, 0.5, types.SectorPeer},
		{"both at threshold", 0.5, 0.5, types.SectorPeer},
		{"just under impact threshold", 0.4999, 0.9, types.SectorPredecessor},
		{"just under access threshold", 0.9, 0.4999, types.SectorSuccessor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cl.Classify(types.Coordinates{X: tt.x, Y: tt.y})
			if got != tt.want {
				t.Errorf("Classify(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	cl := NewClassifier(types.SectorConfig{ImpactThreshold: 0.3, AccessThreshold: 0.7})
	coords := types.Coordinates{X: 0.6, Y: 0.2}

	first := cl.Classify(coords)
	for i := 0; i < 10; i++ {
		if got := cl.Classify(coords); got != first {
			t.Fatalf("classification changed between calls: %s vs %s", first, got)
		}
	}
}

func TestClassifyCoversPlane(t *testing.T) {
	cl := NewClassifier(types.SectorConfig{ImpactThreshold: 0.5, AccessThreshold: 0.5})

	// Every grid point lands in exactly one of the three sectors.
	for xi := 0; xi <= 10; xi++ {
		for yi := 0; yi <= 10; yi++ {
			coords := types.Coordinates{X: float64(xi) / 10, Y: float64(yi) / 10}
			switch cl.Classify(coords) {
			case types.SectorSuccessor, types.SectorPeer, types.SectorPredecessor:
			default:
				t.Fatalf("unknown sector for %+v", coords)
			}
		}
	}
}

func TestCoordinates(t *testing.T) {
	centroid := types.TopicVector{0.5, 0.5}

	res := types.ScoredResult{LDAScore: 1, PennantScore: 0.4}
	coords := Coordinates(res, types.TopicVector{0.5, 0.5}, centroid)

	// Identical vector: JS closeness is 1, so x = (lda + 1) / 2.
	if coords.X != 1 {
		t.Errorf("X = %v, want 1 for identical vectors with full LDA score", coords.X)
	}
	if coords.Y != 0.4 {
		t.Errorf("Y = %v, want the Pennant score", coords.Y)
	}
}

func TestCoordinatesInRange(t *testing.T) {
	centroid := types.TopicVector{0.8, 0.2}
	vecs := []types.TopicVector{
		{1, 0}, {0, 1}, {0.5, 0.5}, {0.8, 0.2},
	}
	for _, vec := range vecs {
		res := types.ScoredResult{LDAScore: 0.7, PennantScore: 0.3}
		coords := Coordinates(res, vec, centroid)
		if coords.X < 0 || coords.X > 1 || coords.Y < 0 || coords.Y > 1 {
			t.Errorf("coords %+v out of unit square for vec %v", coords, vec)
		}
	}
}

func TestCoordinatesMonotoneInCloseness(t *testing.T) {
	centroid := types.TopicVector{1, 0}
	res := types.ScoredResult{LDAScore: 0.5}

	near := Coordinates(res, types.TopicVector{0.9, 0.1}, centroid)
	far := Coordinates(res, types.TopicVector{0.1, 0.9}, centroid)
	if near.X <= far.X {
		t.Errorf("closer vector should land further right: near=%v far=%v", near.X, far.X)
	}
}
