// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"math"

	"github.com/pdiddy/mantis/pkg/types"
)

// Similarity returns the cosine similarity between two topic
// distributions, clamped to [0,1]. Distributions are non-negative so
// the raw cosine is already in that range; the clamp guards float
// rounding at the boundaries. Higher means closer.
func Similarity(a, b types.TopicVector) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return clamp01(dot / denom)
}

// JensenShannon returns the Jensen-Shannon divergence between two
// topic distributions using base-2 logarithms, so the result is in
// [0,1]: 0 for identical distributions, 1 for disjoint support.
func JensenShannon(a, b types.TopicVector) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}

	div := 0.0
	for i := range a {
		m := (a[i] + b[i]) / 2
		if a[i] > 0 && m > 0 {
			div += a[i] / 2 * math.Log2(a[i]/m)
		}
		if b[i] > 0 && m > 0 {
			div += b[i] / 2 * math.Log2(b[i]/m)
		}
	}
	return clamp01(div)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
