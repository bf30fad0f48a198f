// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pennant builds the directed citation graph over a corpus and
// derives the Pennant access-ease score per paper from its structure.
package pennant

import (
	"fmt"
	"math"
	"time"

	"github.com/pdiddy/mantis/internal/corpus"
	"github.com/pdiddy/mantis/pkg/types"
)

// Graph is the validated citation graph plus the cached Pennant scores
// for one corpus snapshot. Immutable after BuildGraph; safe for
// concurrent readers.
type Graph struct {
	// out maps citing paper ID to the set of cited paper IDs.
	out map[string]map[string]struct{}
	// in maps cited paper ID to the set of citing paper IDs.
	in map[string]map[string]struct{}

	scores map[string]float64
	report GraphReport
}

// GraphReport aggregates the records dropped during graph construction.
// Drops are data errors, recovered locally and reported, never raised.
type GraphReport struct {
	EdgesKept         int `json:"edges_kept" yaml:"edges_kept"`
	SelfCitations     int `json:"self_citations" yaml:"self_citations"`
	DuplicateEdges    int `json:"duplicate_edges" yaml:"duplicate_edges"`
	UnresolvedRecords int `json:"unresolved_records" yaml:"unresolved_records"`
}

// String formats the report for the load summary line.
func (r GraphReport) String() string {
	return fmt.Sprintf("edges: %d kept, %d self-citations, %d duplicates, %d unresolved dropped",
		r.EdgesKept, r.SelfCitations, r.DuplicateEdges, r.UnresolvedRecords)
}

// BuildGraph constructs the citation graph from the corpus's raw
// records and computes the Pennant scores once. Self-citations,
// duplicate pairs, and records naming a paper absent from the corpus
// are silently dropped and counted in the report.
func BuildGraph(c *corpus.Corpus, cfg types.PennantConfig) *Graph {
	g := &Graph{
		out:    make(map[string]map[string]struct{}),
		in:     make(map[string]map[string]struct{}),
		scores: make(map[string]float64, c.Len()),
	}

	for _, rec := range c.Citations() {
		if rec.CitingID == rec.CitedID {
			g.report.SelfCitations++
			continue
		}
		if !c.Has(rec.CitingID) || !c.Has(rec.CitedID) {
			g.report.UnresolvedRecords++
			continue
		}
		if _, ok := g.out[rec.CitingID][rec.CitedID]; ok {
			g.report.DuplicateEdges++
			continue
		}

		if g.out[rec.CitingID] == nil {
			g.out[rec.CitingID] = make(map[string]struct{})
		}
		if g.in[rec.CitedID] == nil {
			g.in[rec.CitedID] = make(map[string]struct{})
		}
		g.out[rec.CitingID][rec.CitedID] = struct{}{}
		g.in[rec.CitedID][rec.CitingID] = struct{}{}
		g.report.EdgesKept++
	}

	g.computeScores(c, cfg)
	return g
}

// timeNow is the clock for recency weighting. Tests substitute a
// fixed time.
var timeNow = time.Now

// computeScores derives the Pennant score per paper: the
// recency-weighted in-degree, log-damped and normalized by the corpus
// maximum so scores land in [0,1]. Uncited papers keep the floor 0.
func (g *Graph) computeScores(c *corpus.Corpus, cfg types.PennantConfig) {
	now := timeNow()

	weighted := make(map[string]float64, len(g.in))
	maxRaw := 0.0
	for cited, citers := range g.in {
		w := 0.0
		for citer := range citers {
			w += citationWeight(c, citer, now, cfg.HalfLifeYears)
		}
		raw := math.Log1p(w)
		weighted[cited] = raw
		if raw > maxRaw {
			maxRaw = raw
		}
	}

	for _, p := range c.Papers() {
		if maxRaw == 0 {
			g.scores[p.ID] = 0
			continue
		}
		g.scores[p.ID] = weighted[p.ID] / maxRaw
	}
}

// citationWeight is the contribution of one incoming citation: 1 with
// decay disabled, otherwise halved every halfLife years of the citing
// paper's age. Citing papers without a date count as 1.
func citationWeight(c *corpus.Corpus, citerID string, now time.Time, halfLife float64) float64 {
	if halfLife <= 0 {
		return 1
	}
	citer, ok := c.Paper(citerID)
	if !ok || citer.Date.IsZero() {
		return 1
	}
	ageYears := now.Sub(citer.Date).Hours() / (24 * 365.25)
	if ageYears < 0 {
		ageYears = 0
	}
	return math.Pow(0.5, ageYears/halfLife)
}

// Score returns the cached Pennant score for a paper, in [0,1]. Papers
// absent from the citation data (or the corpus) get the floor 0, never
// an error.
func (g *Graph) Score(paperID string) float64 {
	return g.scores[paperID]
}

// InDegree returns the deduplicated citation count for a paper.
func (g *Graph) InDegree(paperID string) int {
	return len(g.in[paperID])
}

// OutDegree returns the number of distinct papers a paper cites.
func (g *Graph) OutDegree(paperID string) int {
	return len(g.out[paperID])
}

// EdgeCount returns the number of kept edges.
func (g *Graph) EdgeCount() int {
	return g.report.EdgesKept
}

// HasEdge reports whether the deduplicated graph contains the directed
// edge citing → cited.
func (g *Graph) HasEdge(citingID, citedID string) bool {
	_, ok := g.out[citingID][citedID]
	return ok
}

// Report returns the construction drop counts.
func (g *Graph) Report() GraphReport {
	return g.report
}
