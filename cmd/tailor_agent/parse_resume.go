package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured data (contact, skills, experience, education) from a resume",
	RunE:  runParseResume,
}

var parseResumePath string

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumePath, "resume", "r", "", "Path to resume file (required)")
	if err := parseResumeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	doc, _, err := ingestion.LoadDocument(parseResumePath)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	parsed, err := svc.ParseResume(ctx, tailoring.PlainText(*doc))
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), parsed)
}
