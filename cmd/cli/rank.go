package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"alpaca-ollama/internal/similarity"
	"alpaca-ollama/internal/similarity/usecase"
)

func newRankCommand(root *rootOptions) *cobra.Command {
	var (
		query          string
		maxConcurrency int
	)

	cmd := &cobra.Command{
		Use:   "rank --query TEXT SENTENCE...",
		Short: "Rank sentences by similarity to a query",
		Long: `Embeds the query and every sentence, scores each sentence by dot product
against the query and prints the report as JSON. Sentences that could not be
embedded are reported with "similarity": null.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(root)
			if err != nil {
				return err
			}

			limit := d.cfg.Similarity.MaxConcurrency
			if cmd.Flags().Changed("max-concurrency") {
				limit = maxConcurrency
			}

			uc := usecase.New(d.logger, d.client, limit, nil)
			report, err := uc.Rank(cmd.Context(), similarity.RankInput{
				Query:      query,
				Candidates: args,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Text to compare every sentence against")
	cmd.Flags().IntVar(&maxConcurrency, "max-concurrency", 0, "Cap on in-flight sentence embeddings (0 = no cap)")
	return cmd
}
