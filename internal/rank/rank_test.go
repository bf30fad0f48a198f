// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"testing"

	"github.com/pdiddy/mantis/internal/corpus"
	"github.com/pdiddy/mantis/internal/pennant"
	"github.com/pdiddy/mantis/internal/topics"
	"github.com/pdiddy/mantis/pkg/types"
)

type fixture struct {
	corpus *corpus.Corpus
	model  *topics.Model
	graph  *pennant.Graph
}

// newFixture fits a small two-subject corpus: machine-learning papers
// with citations and gardening papers without.
func newFixture(t *testing.T) fixture {
	t.Helper()

	papers := []types.Paper{
		{
			ID: "ml-0", Title: "Deep Nets", Subject: "cs.LG",
			Authors:  []string{"Ada Lovelace", "Grace Hopper"},
			Abstract: "neural networks deep learning neural networks deep learning",
		},
		{
			ID: "ml-1", Title: "More Nets", Subject: "cs.LG",
			Authors:  []string{"Grace Hopper"},
			Abstract: "neural networks deep learning gradient descent training",
		},
		{
			ID: "garden-0", Title: "Soil Science", Subject: "hort.SO",
			Authors:  []string{"Mary Berry"},
			Abstract: "gardening soil plants flowers gardening soil plants flowers",
		},
		{
			ID: "garden-1", Title: "Flower Beds", Subject: "hort.SO",
			Authors:  []string{"Alan Titchmarsh"},
			Abstract: "gardening flowers beds soil pruning gardening flowers soil",
		},
	}
	citations := []types.CitationRecord{
		{CitingID: "ml-1", CitedID: "ml-0"},
		{CitingID: "garden-0", CitedID: "ml-0"},
		{CitingID: "garden-1", CitedID: "ml-1"},
	}

	c, err := corpus.New(papers, citations)
	if err != nil {
		t.Fatal(err)
	}

	cfg := types.TopicModelConfig{Topics: 2, Alpha: 0.1, Beta: 0.01, Iterations: 300, Seed: 7}
	model, err := topics.Fit(c, cfg)
	if err != nil {
		t.Fatal(err)
	}

	return fixture{
		corpus: c,
		model:  model,
		graph:  pennant.BuildGraph(c, types.PennantConfig{}),
	}
}

func TestValidateBalance(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 1} {
		if err := ValidateBalance(ok); err != nil {
			t.Errorf("ValidateBalance(%v) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []float64{-0.01, 1.01, 2} {
		if err := ValidateBalance(bad); err == nil {
			t.Errorf("ValidateBalance(%v) should fail", bad)
		}
	}
}

func TestFiltersValidate(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		wantErr bool
	}{
		{"empty", Filters{}, false},
		{"valid topic", Filters{Topics: []int{0, 1}}, false},
		{"topic too high", Filters{Topics: []int{2}}, true},
		{"negative topic", Filters{Topics: []int{-1}}, true},
		{"blank author", Filters{Authors: []string{"  "}}, true},
		{"blank subject", Filters{Subjects: []string{""}}, true},
		{"valid metadata", Filters{Authors: []string{"Hopper"}, Subjects: []string{"cs.LG"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate(2)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRankRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("deep learning")

	if _, err := Rank(f.corpus, f.model, f.graph, centroid, 1.5, Filters{}); err == nil {
		t.Error("out-of-range balance should fail before scoring")
	}
	if _, err := Rank(f.corpus, f.model, f.graph, centroid, 0.5, Filters{Topics: []int{99}}); err == nil {
		t.Error("out-of-range topic filter should fail before scoring")
	}
}

func TestRankOrderingIsNonIncreasing(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("deep learning")

	for _, balance := range []float64{0, 0.25, 0.5, 0.75, 1} {
		results, err := Rank(f.corpus, f.model, f.graph, centroid, balance, Filters{})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != f.corpus.Len() {
			t.Fatalf("balance %v: got %d results, want %d", balance, len(results), f.corpus.Len())
		}
		for i := 1; i < len(results); i++ {
			if results[i-1].IntegratedScore < results[i].IntegratedScore {
				t.Errorf("balance %v: results out of order at %d", balance, i)
			}
		}
	}
}

func TestRankBalanceExtremes(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("deep learning")

	pureLDA, err := Rank(f.corpus, f.model, f.graph, centroid, 1, Filters{})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range pureLDA {
		if r.IntegratedScore != r.LDAScore {
			t.Errorf("balance=1: result %d integrated %v != lda %v", i, r.IntegratedScore, r.LDAScore)
		}
	}

	purePennant, err := Rank(f.corpus, f.model, f.graph, centroid, 0, Filters{})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range purePennant {
		if r.IntegratedScore != r.PennantScore {
			t.Errorf("balance=0: result %d integrated %v != pennant %v", i, r.IntegratedScore, r.PennantScore)
		}
	}
	// ml-0 holds the corpus citation maximum.
	if purePennant[0].Paper.ID != "ml-0" {
		t.Errorf("balance=0: top result = %s, want ml-0", purePennant[0].Paper.ID)
	}
}

func TestRankScoresStayInRange(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("gardening soil")

	results, err := Rank(f.corpus, f.model, f.graph, centroid, 0.5, Filters{})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		for name, v := range map[string]float64{
			"lda": r.LDAScore, "pennant": r.PennantScore, "integrated": r.IntegratedScore,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s score %v out of [0,1]", r.Paper.ID, name, v)
			}
		}
	}
}

func TestRankAuthorFilter(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("deep learning")

	results, err := Rank(f.corpus, f.model, f.graph, centroid, 0.5, Filters{Authors: []string{"hopper"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (substring match is case-insensitive)", len(results))
	}
	for _, r := range results {
		if r.Paper.ID != "ml-0" && r.Paper.ID != "ml-1" {
			t.Errorf("unexpected paper %s for author filter", r.Paper.ID)
		}
	}
}

func TestRankSubjectFilter(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("deep learning")

	results, err := Rank(f.corpus, f.model, f.graph, centroid, 0.5, Filters{Subjects: []string{"HORT.so"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (subject match is case-insensitive)", len(results))
	}

	// A subject absent from the corpus is a valid filter with no matches.
	empty, err := Rank(f.corpus, f.model, f.graph, centroid, 0.5, Filters{Subjects: []string{"math.AG"}})
	if err != nil {
		t.Fatalf("unknown subject should not be an error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d results for unknown subject, want 0", len(empty))
	}
}

func TestRankTopicFilter(t *testing.T) {
	f := newFixture(t)
	centroid := f.model.Infer("deep learning")

	vec, ok := f.model.DocumentVector("ml-0")
	if !ok {
		t.Fatal("no vector for ml-0")
	}
	dom := vec.Dominant()

	results, err := Rank(f.corpus, f.model, f.graph, centroid, 0.5, Filters{Topics: []int{dom}})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("dominant-topic filter should match at least ml-0")
	}
	for _, r := range results {
		rv, _ := f.model.DocumentVector(r.Paper.ID)
		if rv.Dominant() != dom {
			t.Errorf("paper %s has dominant topic %d, filter wanted %d", r.Paper.ID, rv.Dominant(), dom)
		}
	}
}

func TestFiltersIsEmpty(t *testing.T) {
	if !(Filters{}).IsEmpty() {
		t.Error("zero Filters should be empty")
	}
	if (Filters{Authors: []string{"x"}}).IsEmpty() {
		t.Error("author filter should not be empty")
	}
	if (Filters{Topics: []int{0}}).IsEmpty() {
		t.Error("topic filter should not be empty")
	}
}
