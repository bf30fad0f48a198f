// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topics fits a fixed-K latent Dirichlet allocation model over
// corpus abstracts and projects query text into the same topic space.
// Fitting uses collapsed Gibbs sampling with an explicit seed so runs
// are reproducible; inference is a deterministic fold-in estimate.
package topics

import (
	"fmt"
	"math/rand"

	"github.com/pdiddy/mantis/internal/corpus"
	"github.com/pdiddy/mantis/pkg/types"
)

// Model is a fitted topic model. It is immutable after Fit and safe
// for concurrent readers.
type Model struct {
	k     int
	alpha float64
	beta  float64

	vocab map[string]int
	// phi[k][w] is p(word w | topic k).
	phi [][]float64

	docVectors map[string]types.TopicVector
}

// Fit trains a K-topic model over the corpus abstracts. K is fixed for
// the lifetime of the snapshot; refitting requires a corpus reload.
func Fit(c *corpus.Corpus, cfg types.TopicModelConfig) (*Model, error) {
	if cfg.Topics <= 0 {
		return nil, fmt.Errorf("topic count must be positive, got %d", cfg.Topics)
	}
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("iteration count must be positive, got %d", cfg.Iterations)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}

	papers := c.Papers()

	// Tokenize abstracts and build the vocabulary in first-seen order.
	// Corpus order is deterministic (sorted by ID), so token IDs are too.
	vocab := make(map[string]int)
	docs := make([][]int, len(papers))
	for d, p := range papers {
		tokens := Tokenize(p.Abstract)
		ids := make([]int, 0, len(tokens))
		for _, tok := range tokens {
			id, ok := vocab[tok]
			if !ok {
				id = len(vocab)
				vocab[tok] = id
			}
			ids = append(ids, id)
		}
		docs[d] = ids
	}

	m := &Model{
		k:          cfg.Topics,
		alpha:      cfg.Alpha,
		beta:       cfg.Beta,
		vocab:      vocab,
		docVectors: make(map[string]types.TopicVector, len(papers)),
	}

	vocabSize := len(vocab)
	if vocabSize == 0 {
		// Every abstract reduced to stopwords. Degenerate but not an
		// error: all documents get the uniform vector.
		m.phi = make([][]float64, cfg.Topics)
		for k := range m.phi {
			m.phi[k] = []float64{}
		}
		for _, p := range papers {
			m.docVectors[p.ID] = types.UniformTopicVector(cfg.Topics)
		}
		return m, nil
	}

	docTopic, topicWord, topicTotal := m.sample(docs, vocabSize, cfg)

	// Topic-word distribution phi from final counts.
	m.phi = make([][]float64, cfg.Topics)
	for k := 0; k < cfg.Topics; k++ {
		row := make([]float64, vocabSize)
		denom := float64(topicTotal[k]) + float64(vocabSize)*cfg.Beta
		for w := 0; w < vocabSize; w++ {
			row[w] = (float64(topicWord[k][w]) + cfg.Beta) / denom
		}
		m.phi[k] = row
	}

	// Per-document topic distributions theta.
	for d, p := range papers {
		n := len(docs[d])
		if n == 0 {
			m.docVectors[p.ID] = types.UniformTopicVector(cfg.Topics)
			continue
		}
		v := make(types.TopicVector, cfg.Topics)
		denom := float64(n) + float64(cfg.Topics)*cfg.Alpha
		for k := 0; k < cfg.Topics; k++ {
			v[k] = (float64(docTopic[d][k]) + cfg.Alpha) / denom
		}
		m.docVectors[p.ID] = v
	}

	return m, nil
}

// sample runs collapsed Gibbs sampling and returns the final count
// matrices. All randomness comes from the seeded source.
func (m *Model) sample(docs [][]int, vocabSize int, cfg types.TopicModelConfig) (docTopic [][]int, topicWord [][]int, topicTotal []int) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	docTopic = make([][]int, len(docs))
	topicWord = make([][]int, cfg.Topics)
	topicTotal = make([]int, cfg.Topics)
	for k := range topicWord {
		topicWord[k] = make([]int, vocabSize)
	}

	// Random initial topic assignment per token.
	assign := make([][]int, len(docs))
	for d, doc := range docs {
		docTopic[d] = make([]int, cfg.Topics)
		assign[d] = make([]int, len(doc))
		for i, w := range doc {
			k := rng.Intn(cfg.Topics)
			assign[d][i] = k
			docTopic[d][k]++
			topicWord[k][w]++
			topicTotal[k]++
		}
	}

	weights := make([]float64, cfg.Topics)
	vBeta := float64(vocabSize) * cfg.Beta

	for it := 0; it < cfg.Iterations; it++ {
		for d, doc := range docs {
			for i, w := range doc {
				old := assign[d][i]
				docTopic[d][old]--
				topicWord[old][w]--
				topicTotal[old]--

				total := 0.0
				for k := 0; k < cfg.Topics; k++ {
					wt := (float64(docTopic[d][k]) + cfg.Alpha) *
						(float64(topicWord[k][w]) + cfg.Beta) /
						(float64(topicTotal[k]) + vBeta)
					weights[k] = wt
					total += wt
				}

				target := rng.Float64() * total
				next := cfg.Topics - 1
				acc := 0.0
				for k := 0; k < cfg.Topics; k++ {
					acc += weights[k]
					if target < acc {
						next = k
						break
					}
				}

				assign[d][i] = next
				docTopic[d][next]++
				topicWord[next][w]++
				topicTotal[next]++
			}
		}
	}

	return docTopic, topicWord, topicTotal
}

// K returns the fixed topic count.
func (m *Model) K() int { return m.k }

// VocabularySize returns the number of distinct indexed terms.
func (m *Model) VocabularySize() int { return len(m.vocab) }

// DocumentVector returns the fitted topic distribution for a paper.
func (m *Model) DocumentVector(paperID string) (types.TopicVector, bool) {
	v, ok := m.docVectors[paperID]
	return v, ok
}

// Infer projects arbitrary text into the fitted topic space without
// retraining. Each in-vocabulary token contributes its posterior topic
// responsibility p(k|w) ∝ phi[k][w]; the smoothed average is a valid
// distribution. Empty or fully out-of-vocabulary text yields the
// uniform vector so downstream ranking never divides by zero.
func (m *Model) Infer(text string) types.TopicVector {
	accum := make([]float64, m.k)
	known := 0

	for _, tok := range Tokenize(text) {
		w, ok := m.vocab[tok]
		if !ok {
			continue
		}
		total := 0.0
		for k := 0; k < m.k; k++ {
			total += m.phi[k][w]
		}
		if total == 0 {
			continue
		}
		for k := 0; k < m.k; k++ {
			accum[k] += m.phi[k][w] / total
		}
		known++
	}

	if known == 0 {
		return types.UniformTopicVector(m.k)
	}

	v := make(types.TopicVector, m.k)
	denom := float64(known) + float64(m.k)*m.alpha
	for k := 0; k < m.k; k++ {
		v[k] = (accum[k] + m.alpha) / denom
	}
	return v
}
