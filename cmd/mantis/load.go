// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mantis/internal/corpus"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load paper metadata and citation records into the corpus database",
	Long: `Load parses the tabular metadata source (id, title, authors, abstract,
subject, date) and the citation-records source (citing_id, cited_id),
skipping malformed rows with a warning, and persists the corpus to the
SQLite database that 'mantis search' serves from.

Sources may be local file paths or http(s) URLs.`,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	metadataSrc, _ := cmd.Flags().GetString("metadata")
	citationsSrc, _ := cmd.Flags().GetString("citations")
	exportPath, _ := cmd.Flags().GetString("export")
	dbPath, _ := rootCmd.PersistentFlags().GetString("db")

	if metadataSrc == "" {
		return fmt.Errorf("metadata source required: --metadata <path|url>")
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 60 * time.Second}

	metaReader, err := corpus.OpenSource(ctx, client, metadataSrc)
	if err != nil {
		return err
	}
	defer metaReader.Close()

	papers, paperReport, err := corpus.ReadPapers(metaReader, os.Stderr)
	if err != nil {
		return fmt.Errorf("reading metadata: %w", err)
	}

	report := paperReport

	var c *corpus.Corpus
	if citationsSrc != "" {
		citeReader, err := corpus.OpenSource(ctx, client, citationsSrc)
		if err != nil {
			return err
		}
		defer citeReader.Close()

		records, citeReport, err := corpus.ReadCitations(citeReader, os.Stderr)
		if err != nil {
			return fmt.Errorf("reading citations: %w", err)
		}
		report.CitationsLoaded = citeReport.CitationsLoaded
		report.CitationsSkipped = citeReport.CitationsSkipped

		c, err = corpus.New(papers, records)
		if err != nil {
			return err
		}
	} else {
		c, err = corpus.New(papers, nil)
		if err != nil {
			return err
		}
	}

	store, err := corpus.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(ctx, c); err != nil {
		return fmt.Errorf("saving corpus: %w", err)
	}

	if exportPath != "" {
		if err := store.ExportYAML(ctx, exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: export failed: %v\n", err)
		} else {
			fmt.Printf("Exported corpus to %s\n", exportPath)
		}
	}

	fmt.Printf("Loaded corpus into %s (%s)\n", dbPath, report)
	return nil
}

func init() {
	loadCmd.Flags().String("metadata", "", "metadata source: CSV path or URL (id,title,authors,abstract,subject,date)")
	loadCmd.Flags().String("citations", "", "citation-records source: CSV path or URL (citing_id,cited_id)")
	loadCmd.Flags().String("export", "", "also export the loaded corpus as YAML to this path")

	rootCmd.AddCommand(loadCmd)
}
