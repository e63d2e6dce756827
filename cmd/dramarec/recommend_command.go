package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dramarec/internal/api"
	"dramarec/internal/catalog"
	"dramarec/internal/recommend"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var count int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "recommend <title or keyword...>",
		Short: "Recommend dramas similar to a title or matching a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = cfg.Recommend.DefaultCount
			}
			if count < 1 || count > cfg.Recommend.MaxCount {
				return fmt.Errorf("--count must be between 1 and %d", cfg.Recommend.MaxCount)
			}

			engine, err := ctx.ensureEngine(cmd.Context())
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			result := engine.Recommend(query, count)

			if jsonOut {
				return writeJSON(cmd, api.FromResult(query, result))
			}
			renderResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of recommendations (defaults to recommend.default_count)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func renderResult(cmd *cobra.Command, result recommend.Result) {
	out := cmd.OutOrStdout()
	records := make([]catalog.Record, len(result.Hits))
	var scores []float64
	if result.Outcome == recommend.OutcomeTitleMatch {
		scores = make([]float64, len(result.Hits))
	}
	for i, hit := range result.Hits {
		records[i] = hit.Record
		if scores != nil {
			scores[i] = hit.Score
		}
	}
	renderRecords(out, result.Header, 1, records, scores)
	if result.Suggestion != "" {
		fmt.Fprintf(out, "Did you mean %q?\n", result.Suggestion)
	}
}
