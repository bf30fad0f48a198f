// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"fmt"
	"math"
	"sort"
)

// Topic-count calibration is an offline step: it suggests a K for a
// corpus size before fitting, it is never part of the query hot path.

// CalibrationMethod is one heuristic's suggestion for the topic count.
type CalibrationMethod struct {
	// Name identifies the heuristic (e.g. "sqrt_rule", "griffiths_k10").
	Name string `json:"name" yaml:"name"`

	// Topics is the suggested topic count.
	Topics int `json:"topics" yaml:"topics"`

	// DocsPerTopic is the resulting average document load per topic.
	DocsPerTopic float64 `json:"docs_per_topic" yaml:"docs_per_topic"`

	// Interpretability bands the suggestion by how reviewable the topic
	// set is: "high" (≤100 topics), "medium" (≤300), "low".
	Interpretability string `json:"interpretability" yaml:"interpretability"`

	// Granularity bands how finely topics split the corpus: "high"
	// (≤200 docs/topic), "medium" (≤500), "low".
	Granularity string `json:"granularity" yaml:"granularity"`
}

// Calibration holds every heuristic's suggestion plus the recommended
// subset for a corpus size.
type Calibration struct {
	Documents int                 `json:"documents" yaml:"documents"`
	Methods   []CalibrationMethod `json:"methods" yaml:"methods"`

	// Recommended lists methods inside the workable band (50-400
	// topics, 200-1000 docs per topic), closest to the 400 docs/topic
	// sweet spot first. Empty when no heuristic lands in the band.
	Recommended []CalibrationMethod `json:"recommended" yaml:"recommended"`
}

// Best returns the top recommendation, falling back to the method
// closest to 400 docs/topic when nothing lands in the band.
func (c Calibration) Best() CalibrationMethod {
	if len(c.Recommended) > 0 {
		return c.Recommended[0]
	}
	best := c.Methods[0]
	for _, m := range c.Methods[1:] {
		if math.Abs(m.DocsPerTopic-400) < math.Abs(best.DocsPerTopic-400) {
			best = m
		}
	}
	return best
}

// Calibrate computes the optimal-topic-count heuristics for a corpus
// of numDocuments papers: square-root and logarithmic rules, fixed
// document-per-topic ratios, the Griffiths & Steyvers T = c·ln(M)
// family, a conservative Blei-style cap, large-corpus ratios for 100k+
// documents, and a balanced trade-off between granularity and
// interpretability.
func Calibrate(numDocuments int) (Calibration, error) {
	if numDocuments <= 0 {
		return Calibration{}, fmt.Errorf("document count must be positive, got %d", numDocuments)
	}

	n := float64(numDocuments)
	ln := math.Log(n)

	balanced := int(math.Sqrt(n) * 1.5)
	if balanced < 50 {
		balanced = 50
	}
	if balanced > 500 {
		balanced = 500
	}

	suggestions := []struct {
		name   string
		topics int
	}{
		{"sqrt_rule", int(math.Sqrt(n))},
		{"log_rule", int(math.Log10(n) * 10)},
		{"ratio_50", numDocuments / 50},
		{"ratio_100", numDocuments / 100},
		{"ratio_200", numDocuments / 200},
		{"ratio_500", numDocuments / 500},
		{"ln_rule", int(ln)},
		{"power_rule", int(math.Pow(n, 0.3))},
		{"griffiths_k1", int(1 * ln)},
		{"griffiths_k5", int(5 * ln)},
		{"griffiths_k10", int(10 * ln)},
		{"blei_conservative", min(100, int(math.Sqrt(n)*0.5))},
		{"balanced", balanced},
	}

	if numDocuments >= 100000 {
		suggestions = append(suggestions,
			struct {
				name   string
				topics int
			}{"large_corpus_low", numDocuments / 1000},
			struct {
				name   string
				topics int
			}{"large_corpus_mid", numDocuments / 750},
			struct {
				name   string
				topics int
			}{"large_corpus_high", numDocuments / 500},
		)
	}

	cal := Calibration{Documents: numDocuments}
	for _, s := range suggestions {
		if s.topics < 1 {
			continue
		}
		dpt := n / float64(s.topics)
		cal.Methods = append(cal.Methods, CalibrationMethod{
			Name:             s.name,
			Topics:           s.topics,
			DocsPerTopic:     dpt,
			Interpretability: band(s.topics, 100, 300),
			Granularity:      band(int(dpt), 200, 500),
		})
	}

	sort.Slice(cal.Methods, func(i, j int) bool {
		if cal.Methods[i].Topics != cal.Methods[j].Topics {
			return cal.Methods[i].Topics < cal.Methods[j].Topics
		}
		return cal.Methods[i].Name < cal.Methods[j].Name
	})

	for _, m := range cal.Methods {
		if m.Topics >= 50 && m.Topics <= 400 && m.DocsPerTopic >= 200 && m.DocsPerTopic <= 1000 {
			cal.Recommended = append(cal.Recommended, m)
		}
	}
	sort.SliceStable(cal.Recommended, func(i, j int) bool {
		return math.Abs(cal.Recommended[i].DocsPerTopic-400) < math.Abs(cal.Recommended[j].DocsPerTopic-400)
	})

	return cal, nil
}

// band maps a value to "high"/"medium"/"low" using two upper bounds.
func band(v, high, medium int) string {
	switch {
	case v <= high:
		return "high"
	case v <= medium:
		return "medium"
	default:
		return "low"
	}
}
