// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads paper metadata and citation records into an
// immutable in-memory snapshot, and persists snapshots to SQLite so
// loading and serving can be separate runs.
package corpus

import (
	"fmt"
	"sort"

	"github.com/pdiddy/mantis/pkg/types"
)

// Corpus is an immutable snapshot of the loaded paper set and its raw
// citation records. A Corpus is safe for concurrent readers; reloading
// builds a new Corpus rather than mutating an existing one.
type Corpus struct {
	papers    []types.Paper
	byID      map[string]int
	citations []types.CitationRecord
}

// New builds a Corpus from papers and citation records. Papers are
// ordered by ID for deterministic iteration; a duplicate paper ID is a
// data error the loaders should have resolved, so New rejects it.
func New(papers []types.Paper, citations []types.CitationRecord) (*Corpus, error) {
	sorted := make([]types.Paper, len(papers))
	copy(sorted, papers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[string]int, len(sorted))
	for i, p := range sorted {
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate paper id %q", p.ID)
		}
		byID[p.ID] = i
	}

	recs := make([]types.CitationRecord, len(citations))
	copy(recs, citations)

	return &Corpus{papers: sorted, byID: byID, citations: recs}, nil
}

// Len returns the number of papers.
func (c *Corpus) Len() int { return len(c.papers) }

// Papers returns the papers ordered by ID. Callers must not modify the
// returned slice.
func (c *Corpus) Papers() []types.Paper { return c.papers }

// Paper returns the paper with the given ID.
func (c *Corpus) Paper(id string) (types.Paper, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.Paper{}, false
	}
	return c.papers[i], true
}

// Has reports whether a paper with the given ID exists.
func (c *Corpus) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Citations returns the raw citation records. Callers must not modify
// the returned slice.
func (c *Corpus) Citations() []types.CitationRecord { return c.citations }

// LoadReport aggregates per-row outcomes from a corpus load. Malformed
// rows are skipped and counted here, never raised (data errors recover
// locally).
type LoadReport struct {
	PapersLoaded     int `json:"papers_loaded" yaml:"papers_loaded"`
	PapersSkipped    int `json:"papers_skipped" yaml:"papers_skipped"`
	CitationsLoaded  int `json:"citations_loaded" yaml:"citations_loaded"`
	CitationsSkipped int `json:"citations_skipped" yaml:"citations_skipped"`
}

// String formats the report for the load summary line.
func (r LoadReport) String() string {
	return fmt.Sprintf("papers: %d loaded, %d skipped; citations: %d loaded, %d skipped",
		r.PapersLoaded, r.PapersSkipped, r.CitationsLoaded, r.CitationsSkipped)
}
