// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/mantis/pkg/types"
)

// Metadata CSV columns: id, title, authors, abstract, subject, date.
// Authors are ";"-separated within the field. A header row is detected
// by its first cell and skipped.
const (
	colID = iota
	colTitle
	colAuthors
	colAbstract
	colSubject
	colDate
	metadataColumns
)

// dateLayouts are the accepted publication date formats, tried in order.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ReadPapers parses the metadata CSV from r. Rows missing an ID or an
// abstract, short rows, and duplicate IDs are skipped with a warning
// written to w and counted in the report; they are never fatal.
func ReadPapers(r io.Reader, w io.Writer) ([]types.Paper, LoadReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		papers []types.Paper
		report LoadReport
		seen   = make(map[string]bool)
	)

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(w, "warning: metadata row %d: %v\n", line, err)
			report.PapersSkipped++
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[colID]), "id") {
			continue
		}
		if len(row) < metadataColumns {
			fmt.Fprintf(w, "warning: metadata row %d: %d columns, want %d\n", line, len(row), metadataColumns)
			report.PapersSkipped++
			continue
		}

		id := strings.TrimSpace(row[colID])
		abstract := strings.TrimSpace(row[colAbstract])
		if id == "" || abstract == "" {
			fmt.Fprintf(w, "warning: metadata row %d: missing id or abstract\n", line)
			report.PapersSkipped++
			continue
		}
		if seen[id] {
			fmt.Fprintf(w, "warning: metadata row %d: duplicate id %q\n", line, id)
			report.PapersSkipped++
			continue
		}
		seen[id] = true

		papers = append(papers, types.Paper{
			ID:       id,
			Title:    strings.TrimSpace(row[colTitle]),
			Authors:  splitAuthors(row[colAuthors]),
			Abstract: abstract,
			Subject:  strings.TrimSpace(row[colSubject]),
			Date:     parseDate(row[colDate]),
		})
		report.PapersLoaded++
	}

	return papers, report, nil
}

// ReadCitations parses the citation-records CSV from r: one
// citing_id,cited_id pair per row. Short or empty rows are skipped
// with a warning. Structural validation against the corpus (unknown
// IDs, self-citations, duplicates) happens at graph build, not here.
func ReadCitations(r io.Reader, w io.Writer) ([]types.CitationRecord, LoadReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		records []types.CitationRecord
		report  LoadReport
	)

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(w, "warning: citation row %d: %v\n", line, err)
			report.CitationsSkipped++
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "citing_id") {
			continue
		}
		if len(row) < 2 {
			fmt.Fprintf(w, "warning: citation row %d: %d columns, want 2\n", line, len(row))
			report.CitationsSkipped++
			continue
		}

		citing := strings.TrimSpace(row[0])
		cited := strings.TrimSpace(row[1])
		if citing == "" || cited == "" {
			fmt.Fprintf(w, "warning: citation row %d: empty paper id\n", line)
			report.CitationsSkipped++
			continue
		}

		records = append(records, types.CitationRecord{CitingID: citing, CitedID: cited})
		report.CitationsLoaded++
	}

	return records, report, nil
}

// splitAuthors splits the ";"-separated author field, dropping empties.
func splitAuthors(field string) []string {
	var authors []string
	for _, a := range strings.Split(field, ";") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// parseDate tries the accepted layouts and returns the zero time when
// none match. A missing date is not a load error; recency weighting
// simply skips the paper.
func parseDate(field string) time.Time {
	field = strings.TrimSpace(field)
	if field == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return t
		}
	}
	return time.Time{}
}
