// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mantis/pkg/types"
)

// Store persists corpus snapshots to a SQLite database so that corpus
// ingestion (`mantis load`) and query serving (`mantis search`) can be
// separate runs.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the corpus database at dbPath, creating
// parent directories and the schema as needed.
func OpenStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT,
			authors TEXT,
			abstract TEXT NOT NULL,
			subject TEXT,
			date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS citations (
			citing_id TEXT NOT NULL,
			cited_id TEXT NOT NULL,
			PRIMARY KEY (citing_id, cited_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_cited ON citations(cited_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save replaces the stored snapshot with the given corpus in a single
// transaction. Citation pairs already deduplicated by the primary key
// are inserted with OR IGNORE so raw duplicate records do not fail the
// save.
func (s *Store) Save(ctx context.Context, c *Corpus) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"papers", "citations"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	paperStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, title, authors, abstract, subject, date)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing paper insert: %w", err)
	}
	defer paperStmt.Close()

	for _, p := range c.Papers() {
		authorsJSON, _ := json.Marshal(p.Authors)
		dateStr := ""
		if !p.Date.IsZero() {
			dateStr = p.Date.Format(time.RFC3339)
		}
		if _, err := paperStmt.ExecContext(ctx,
			p.ID, p.Title, string(authorsJSON), p.Abstract, p.Subject, dateStr,
		); err != nil {
			return fmt.Errorf("inserting paper %s: %w", p.ID, err)
		}
	}

	citeStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO citations (citing_id, cited_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing citation insert: %w", err)
	}
	defer citeStmt.Close()

	for _, rec := range c.Citations() {
		if _, err := citeStmt.ExecContext(ctx, rec.CitingID, rec.CitedID); err != nil {
			return fmt.Errorf("inserting citation %s->%s: %w", rec.CitingID, rec.CitedID, err)
		}
	}

	return tx.Commit()
}

// Load reads the stored snapshot back into an immutable Corpus.
func (s *Store) Load(ctx context.Context) (*Corpus, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, authors, abstract, subject, date FROM papers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var (
			p           types.Paper
			authorsJSON sql.NullString
			dateStr     sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &authorsJSON, &p.Abstract, &p.Subject, &dateStr); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &p.Authors)
		}
		if dateStr.Valid && dateStr.String != "" {
			if t, parseErr := time.Parse(time.RFC3339, dateStr.String); parseErr == nil {
				p.Date = t
			}
		}
		papers = append(papers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading papers: %w", err)
	}

	citeRows, err := s.db.QueryContext(ctx,
		`SELECT citing_id, cited_id FROM citations ORDER BY citing_id, cited_id`)
	if err != nil {
		return nil, fmt.Errorf("querying citations: %w", err)
	}
	defer citeRows.Close()

	var citations []types.CitationRecord
	for citeRows.Next() {
		var rec types.CitationRecord
		if err := citeRows.Scan(&rec.CitingID, &rec.CitedID); err != nil {
			return nil, fmt.Errorf("scanning citation row: %w", err)
		}
		citations = append(citations, rec)
	}
	if err := citeRows.Err(); err != nil {
		return nil, fmt.Errorf("reading citations: %w", err)
	}

	return New(papers, citations)
}

// ExportYAML writes the stored corpus as YAML to path. Used by
// `mantis load --export` for inspection and by external tooling.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	c, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return writeCorpusYAML(c, path)
}
