// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank merges topic-model relevance and Pennant access-ease
// into a single tunable ordering over the corpus.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/mantis/internal/corpus"
	"github.com/pdiddy/mantis/internal/pennant"
	"github.com/pdiddy/mantis/internal/topics"
	"github.com/pdiddy/mantis/pkg/types"
)

// Filters restricts the candidate paper set before scoring. Empty
// fields match everything.
type Filters struct {
	// Authors matches papers with at least one author containing any of
	// the given names (case-insensitive substring).
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Subjects matches papers whose subject equals any of the given
	// values (case-insensitive).
	Subjects []string `json:"subjects,omitempty" yaml:"subjects,omitempty"`

	// Topics matches papers whose dominant topic index is in the set.
	Topics []int `json:"topics,omitempty" yaml:"topics,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return len(f.Authors) == 0 && len(f.Subjects) == 0 && len(f.Topics) == 0
}

// Validate rejects filter contents that can never match by
// construction. Topic indices must address the fitted model; metadata
// filters are free-form and validated only for emptiness.
func (f Filters) Validate(topicCount int) error {
	for _, t := range f.Topics {
		if t < 0 || t >= topicCount {
			return fmt.Errorf("topic filter %d out of range [0,%d)", t, topicCount)
		}
	}
	for _, a := range f.Authors {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("author filter must not be blank")
		}
	}
	for _, s := range f.Subjects {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("subject filter must not be blank")
		}
	}
	return nil
}

// ValidateBalance rejects a balance outside [0,1] before any scoring
// work begins.
func ValidateBalance(balance float64) error {
	if balance < 0 || balance > 1 {
		return fmt.Errorf("balance must be in [0,1], got %v", balance)
	}
	return nil
}

// Rank scores every candidate paper against the query centroid and
// returns the ordered result list. balance=1 is pure topic relevance,
// balance=0 is pure access ease. The returned results carry no sector
// or coordinates yet; the caller classifies them against the same
// centroid.
//
// An empty candidate set after filtering yields an empty slice, not an
// error. The ordering is deterministic: integrated score descending,
// ties broken by LDA score descending, then paper ID ascending.
func Rank(c *corpus.Corpus, model *topics.Model, graph *pennant.Graph, centroid types.TopicVector, balance float64, filters Filters) ([]types.ScoredResult, error) {
	if err := ValidateBalance(balance); err != nil {
		return nil, err
	}
	if err := filters.Validate(model.K()); err != nil {
		return nil, err
	}

	results := make([]types.ScoredResult, 0, c.Len())
	for _, p := range c.Papers() {
		vec, ok := model.DocumentVector(p.ID)
		if !ok {
			continue
		}
		if !matches(p, vec, filters) {
			continue
		}

		lda := topics.Similarity(centroid, vec)
		pen := graph.Score(p.ID)
		results = append(results, types.ScoredResult{
			Paper:           p,
			LDAScore:        lda,
			PennantScore:    pen,
			IntegratedScore: balance*lda + (1-balance)*pen,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.IntegratedScore != b.IntegratedScore {
			return a.IntegratedScore > b.IntegratedScore
		}
		if a.LDAScore != b.LDAScore {
			return a.LDAScore > b.LDAScore
		}
		return a.Paper.ID < b.Paper.ID
	})

	return results, nil
}

// matches applies the metadata and topic filters to one paper.
func matches(p types.Paper, vec types.TopicVector, f Filters) bool {
	if len(f.Authors) > 0 && !matchesAuthor(p.Authors, f.Authors) {
		return false
	}
	if len(f.Subjects) > 0 && !matchesSubject(p.Subject, f.Subjects) {
		return false
	}
	if len(f.Topics) > 0 {
		dom := vec.Dominant()
		found := false
		for _, t := range f.Topics {
			if t == dom {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesAuthor(authors, wanted []string) bool {
	for _, a := range authors {
		la := strings.ToLower(a)
		for _, w := range wanted {
			if strings.Contains(la, strings.ToLower(w)) {
				return true
			}
		}
	}
	return false
}

func matchesSubject(subject string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(subject, w) {
			return true
		}
	}
	return false
}
