// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Paper holds the metadata for one paper in the corpus. Papers are
// constructed once at corpus load and never mutated afterwards.
type Paper struct {
	// ID is the corpus-unique paper identifier from the metadata source.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract. Papers without an abstract are
	// rejected at load time; the topic model has nothing to fit on.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Subject is the subject category from the metadata source.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// Date is the publication date. May be zero when the source row
	// carried no parseable date.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// CitationRecord is one raw directed citation pair from the citation
// source: CitingID cites CitedID. Records are validated against the
// corpus when the citation graph is built.
type CitationRecord struct {
	CitingID string `json:"citing_id" yaml:"citing_id"`
	CitedID  string `json:"cited_id" yaml:"cited_id"`
}
