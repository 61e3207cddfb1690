package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract categorized keywords from a job description",
	RunE:  runKeywords,
}

var keywordsJob jobFlags

func init() {
	keywordsJob.register(keywordsCmd)
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	job, err := loadJob(ctx, keywordsJob)
	if err != nil {
		return err
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	keywords, err := svc.ExtractKeywords(ctx, job.JobDescription)
	if err != nil {
		return fmt.Errorf("failed to extract keywords: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintJobKeywords(keywords)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), keywords)
}
