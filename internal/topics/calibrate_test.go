// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"math"
	"sort"
	"testing"
)

func TestCalibrateRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Calibrate(n); err == nil {
			t.Errorf("Calibrate(%d) should fail", n)
		}
	}
}

func methodByName(t *testing.T, cal Calibration, name string) CalibrationMethod {
	t.Helper()
	for _, m := range cal.Methods {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("method %q not found", name)
	return CalibrationMethod{}
}

func TestCalibrateLargeCorpus(t *testing.T) {
	cal, err := Calibrate(103576)
	if err != nil {
		t.Fatal(err)
	}

	wantTopics := map[string]int{
		"sqrt_rule":         321,
		"log_rule":          50,
		"ln_rule":           11,
		"power_rule":        31,
		"griffiths_k10":     115,
		"blei_conservative": 100,
		"balanced":          482,
		"large_corpus_low":  103,
		"large_corpus_mid":  138,
		"large_corpus_high": 207,
	}
	for name, want := range wantTopics {
		if got := methodByName(t, cal, name).Topics; got != want {
			t.Errorf("%s: topics = %d, want %d", name, got, want)
		}
	}

	// The workable band keeps suggestions with 50-400 topics and
	// 200-1000 docs per topic, closest to 400 docs/topic first.
	if len(cal.Recommended) == 0 {
		t.Fatal("expected recommendations for a 100k corpus")
	}
	if got := cal.Recommended[0].Name; got != "sqrt_rule" {
		t.Errorf("top recommendation = %s, want sqrt_rule", got)
	}
	if got := cal.Best(); got.Topics != 321 {
		t.Errorf("Best().Topics = %d, want 321", got.Topics)
	}
	for _, m := range cal.Recommended {
		if m.Topics < 50 || m.Topics > 400 {
			t.Errorf("%s: %d topics outside workable band", m.Name, m.Topics)
		}
		if m.DocsPerTopic < 200 || m.DocsPerTopic > 1000 {
			t.Errorf("%s: %.1f docs/topic outside workable band", m.Name, m.DocsPerTopic)
		}
	}
	for i := 1; i < len(cal.Recommended); i++ {
		prev := math.Abs(cal.Recommended[i-1].DocsPerTopic - 400)
		cur := math.Abs(cal.Recommended[i].DocsPerTopic - 400)
		if prev > cur {
			t.Errorf("recommendations not ordered by distance to 400 docs/topic at %d", i)
		}
	}
}

func TestCalibrateSmallCorpusFallback(t *testing.T) {
	cal, err := Calibrate(1000)
	if err != nil {
		t.Fatal(err)
	}

	if len(cal.Recommended) != 0 {
		t.Errorf("1000 docs should yield no in-band recommendation, got %v", cal.Recommended)
	}

	// Fallback picks the method closest to 400 docs/topic.
	best := cal.Best()
	if best.Name != "ratio_500" {
		t.Errorf("Best().Name = %s, want ratio_500", best.Name)
	}

	// No large-corpus ratios below the 100k threshold.
	for _, m := range cal.Methods {
		if m.Name == "large_corpus_low" || m.Name == "large_corpus_mid" || m.Name == "large_corpus_high" {
			t.Errorf("unexpected large-corpus method %s for 1000 docs", m.Name)
		}
	}
}

func TestCalibrateMethodsSorted(t *testing.T) {
	cal, err := Calibrate(50000)
	if err != nil {
		t.Fatal(err)
	}

	sorted := sort.SliceIsSorted(cal.Methods, func(i, j int) bool {
		if cal.Methods[i].Topics != cal.Methods[j].Topics {
			return cal.Methods[i].Topics < cal.Methods[j].Topics
		}
		return cal.Methods[i].Name < cal.Methods[j].Name
	})
	if !sorted {
		t.Error("methods should be sorted by topic count, then name")
	}

	for _, m := range cal.Methods {
		if m.Topics < 1 {
			t.Errorf("%s: non-positive topic count %d", m.Name, m.Topics)
		}
		if m.Interpretability == "" || m.Granularity == "" {
			t.Errorf("%s: missing bands", m.Name)
		}
	}
}
