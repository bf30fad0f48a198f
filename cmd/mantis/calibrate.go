// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mantis/internal/corpus"
	"github.com/pdiddy/mantis/internal/topics"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Suggest an optimal topic count for a corpus size",
	Long: `Calibrate computes topic-count suggestions from several heuristics
(square-root rule, logarithmic rules, fixed document-per-topic ratios,
Griffiths & Steyvers, and a balanced trade-off) and recommends the
candidates inside the workable band of 50-400 topics with 200-1000
documents per topic.

This is an offline step: pick a count, set topics.topics in mantis.yaml,
and reload the corpus. With no --documents flag the loaded corpus size
is used.`,
	RunE: runCalibrate,
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	numDocs, _ := cmd.Flags().GetInt("documents")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if numDocs <= 0 {
		dbPath, _ := rootCmd.PersistentFlags().GetString("db")
		store, err := corpus.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		c, err := store.Load(context.Background())
		if err != nil {
			return fmt.Errorf("loading corpus: %w", err)
		}
		numDocs = c.Len()
	}

	cal, err := topics.Calibrate(numDocs)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cal)
	}

	fmt.Printf("Corpus: %d documents\n\n", cal.Documents)
	fmt.Printf("%-20s  %-8s  %-12s  %-16s  %s\n",
		"Method", "Topics", "Docs/Topic", "Interpretability", "Granularity")
	fmt.Println(strings.Repeat("-", 72))
	for _, m := range cal.Methods {
		fmt.Printf("%-20s  %-8d  %-12.1f  %-16s  %s\n",
			m.Name, m.Topics, m.DocsPerTopic, m.Interpretability, m.Granularity)
	}

	best := cal.Best()
	fmt.Printf("\nRecommended: %d topics (%s, %.1f docs/topic)\n",
		best.Topics, best.Name, best.DocsPerTopic)
	return nil
}

func init() {
	calibrateCmd.Flags().Int("documents", 0, "corpus size (0 = read from the corpus database)")
	calibrateCmd.Flags().Bool("json", false, "output the full calibration as JSON")

	rootCmd.AddCommand(calibrateCmd)
}
