// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"strings"
	"unicode"
)

// minTokenLength drops tokens too short to carry topical signal.
const minTokenLength = 3

// stopwords are excluded from the vocabulary. The list covers common
// English function words plus boilerplate that dominates abstracts.
var stopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "all", "also", "an", "and",
		"any", "are", "as", "at", "based", "be", "because", "been", "before",
		"being", "between", "both", "but", "by", "can", "could", "did", "do",
		"does", "doing", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "here", "how", "however", "if", "in",
		"into", "is", "it", "its", "itself", "may", "more", "most", "new",
		"no", "nor", "not", "of", "off", "on", "once", "only", "or", "other",
		"our", "out", "over", "own", "paper", "propose", "proposed", "results",
		"same", "should", "show", "shows", "so", "some", "study", "such",
		"than", "that", "the", "their", "them", "then", "there", "these",
		"they", "this", "those", "through", "to", "under", "until", "up",
		"use", "used", "using", "very", "was", "we", "were", "what", "when",
		"where", "which", "while", "who", "why", "will", "with", "would",
	} {
		stopwords[w] = true
	}
}

// Tokenize case-folds text, splits on non-letter/digit runs, and drops
// stopwords and short tokens. The same preprocessing serves both
// corpus fitting and query inference so they share a vocabulary.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLength || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
