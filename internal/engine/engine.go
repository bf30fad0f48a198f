// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine assembles corpus, topic model, and citation graph
// into an immutable snapshot and serves ranked, sector-classified
// search results from it. The snapshot pointer is swapped atomically
// on reload so in-flight searches keep the data they started with.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pdiddy/mantis/internal/corpus"
	"github.com/pdiddy/mantis/internal/pennant"
	"github.com/pdiddy/mantis/internal/rank"
	"github.com/pdiddy/mantis/internal/sector"
	"github.com/pdiddy/mantis/internal/topics"
	"github.com/pdiddy/mantis/pkg/types"
)

// ErrNotReady is returned by Search before the first successful load.
// Distinct from an empty result list, which is a valid answer.
var ErrNotReady = errors.New("engine not ready: no corpus loaded")

// Snapshot bundles the immutable read-only structures built from one
// corpus load. All fields are safe for concurrent readers.
type Snapshot struct {
	Corpus  *corpus.Corpus
	Model   *topics.Model
	Graph   *pennant.Graph
	BuiltAt time.Time
}

// Engine is the query interface the presentation layer calls. It is
// safe for concurrent Search calls; Load may run concurrently with
// searches and publishes a complete snapshot atomically.
type Engine struct {
	cfg  types.EngineConfig
	snap atomic.Pointer[Snapshot]
}

// New returns an engine with no snapshot loaded.
func New(cfg types.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() types.EngineConfig { return e.cfg }

// Ready reports whether a snapshot has been published.
func (e *Engine) Ready() bool { return e.snap.Load() != nil }

// Snapshot returns the current snapshot, or nil before the first load.
func (e *Engine) Snapshot() *Snapshot { return e.snap.Load() }

// Load fits the topic model and builds the citation graph for the
// corpus, then publishes the new snapshot. On error the previous
// snapshot stays in place, so a failed reload never degrades serving.
func (e *Engine) Load(ctx context.Context, c *corpus.Corpus) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model, err := topics.Fit(c, e.cfg.Topics)
	if err != nil {
		return nil, fmt.Errorf("fitting topic model: %w", err)
	}
	graph := pennant.BuildGraph(c, e.cfg.Pennant)

	snap := &Snapshot{
		Corpus:  c,
		Model:   model,
		Graph:   graph,
		BuiltAt: time.Now(),
	}
	e.snap.Store(snap)
	return snap, nil
}

// Search ranks the corpus against the query and classifies each result
// into its sector. balance=1 ranks purely by topic relevance, 0 purely
// by access ease. Interface-contract violations (bad balance, bad
// filters) are rejected before any scoring; an empty query degrades to
// a neutral topic vector rather than failing.
func (e *Engine) Search(ctx context.Context, queryText string, balance float64, filters rank.Filters) ([]types.ScoredResult, error) {
	snap := e.snap.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	centroid := snap.Model.Infer(queryText)
	results, err := rank.Rank(snap.Corpus, snap.Model, snap.Graph, centroid, balance, filters)
	if err != nil {
		return nil, err
	}

	if max := e.cfg.Ranking.MaxResults; max > 0 && len(results) > max {
		results = results[:max]
	}

	classifier := sector.NewClassifier(e.cfg.Sector)
	for i := range results {
		vec, ok := snap.Model.DocumentVector(results[i].Paper.ID)
		if !ok {
			vec = types.UniformTopicVector(snap.Model.K())
		}
		results[i].Coordinates = sector.Coordinates(results[i], vec, centroid)
		results[i].Sector = classifier.Classify(results[i].Coordinates)
	}

	return results, nil
}
