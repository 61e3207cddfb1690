package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/jonathan/application-tailor/internal/scoring"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume's keyword coverage of a job description",
	Long:  "Compute the ATS keyword score: the share of the job description's most frequent keywords found in the resume. LaTeX resumes are scored on their plain-text rendering.",
	RunE:  runScore,
}

var (
	scoreResume string
	scoreJob    jobFlags
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (required)")
	scoreJob.register(scoreCmd)
	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	doc, _, err := ingestion.LoadDocument(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	job, err := loadJob(cmd.Context(), scoreJob)
	if err != nil {
		return err
	}

	score := scoring.ScoreFromText(job.JobDescription, tailoring.PlainText(*doc))
	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintAtsScore(score)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), score)
}
