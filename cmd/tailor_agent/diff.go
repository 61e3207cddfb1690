package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/diff"
	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show a word-level diff between two resume versions",
	RunE:  runDiff,
}

var (
	diffOriginal string
	diffUpdated  string
)

func init() {
	diffCmd.Flags().StringVar(&diffOriginal, "original", "", "Path to the original resume (required)")
	diffCmd.Flags().StringVar(&diffUpdated, "updated", "", "Path to the updated resume (required)")
	if err := diffCmd.MarkFlagRequired("original"); err != nil {
		panic(fmt.Sprintf("failed to mark original flag as required: %v", err))
	}
	if err := diffCmd.MarkFlagRequired("updated"); err != nil {
		panic(fmt.Sprintf("failed to mark updated flag as required: %v", err))
	}

	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, _ []string) error {
	original, _, err := ingestion.LoadText(diffOriginal)
	if err != nil {
		return fmt.Errorf("failed to load original: %w", err)
	}
	updated, _, err := ingestion.LoadText(diffUpdated)
	if err != nil {
		return fmt.Errorf("failed to load updated: %w", err)
	}

	entries := diff.Words(original, updated)
	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDiffSummary(entries)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"entries": entries,
		"summary": diff.Summary(entries),
	})
}
