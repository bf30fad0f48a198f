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
	"github.com/pdiddy/mantis/internal/engine"
	"github.com/pdiddy/mantis/internal/rank"
	"github.com/pdiddy/mantis/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank corpus papers against a query and classify them into sectors",
	Long: `Search ranks every paper in the loaded corpus against the query text.
The --balance knob trades topic relevance against citation access-ease:
1.0 ranks purely by LDA similarity, 0.0 purely by Pennant score.

Each result carries the three scores (integrated, LDA, Pennant), its
sector (successor, peer, predecessor), and plot coordinates.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	balance, _ := cmd.Flags().GetFloat64("balance")
	authors, _ := cmd.Flags().GetStringSlice("author")
	subjects, _ := cmd.Flags().GetStringSlice("subject")
	topicFilter, _ := cmd.Flags().GetIntSlice("topic")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	dbPath, _ := rootCmd.PersistentFlags().GetString("db")

	cfg := engineConfig()
	if limit > 0 {
		cfg.Ranking.MaxResults = limit
	}

	store, err := corpus.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	c, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	eng := engine.New(cfg)
	if _, err := eng.Load(ctx, c); err != nil {
		return err
	}

	filters := rank.Filters{
		Authors:  authors,
		Subjects: subjects,
		Topics:   topicFilter,
	}

	results, err := eng.Search(ctx, queryText, balance, filters)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	formatResults(results, os.Stdout)
	return nil
}

// formatResults writes results as a human-readable table.
func formatResults(results []types.ScoredResult, w *os.File) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-6s  %-6s  %-6s  %-12s  %s\n",
		"Rank", "Title", "Score", "LDA", "Penn", "Sector", "Coords")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range results {
		title := r.Paper.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-6.3f  %-6.3f  %-6.3f  %-12s  (%.2f, %.2f)\n",
			i+1, title, r.IntegratedScore, r.LDAScore, r.PennantScore,
			r.Sector, r.Coordinates.X, r.Coordinates.Y)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

func init() {
	searchCmd.Flags().String("query", "", "query text (alternative to positional args)")
	searchCmd.Flags().Float64("balance", 0.5, "relevance vs access-ease balance in [0,1]: 1 = pure LDA, 0 = pure Pennant")
	searchCmd.Flags().StringSlice("author", nil, "filter by author name substring (repeatable)")
	searchCmd.Flags().StringSlice("subject", nil, "filter by subject (repeatable)")
	searchCmd.Flags().IntSlice("topic", nil, "filter by dominant topic index (repeatable)")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = config default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
