package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/jonathan/application-tailor/internal/sections"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Locate the sections and headline of a resume",
	Long:  "Locate the canonical sections (summary, experience, projects, skills, education, certifications) and the headline of a LaTeX or plain-text resume.",
	RunE:  runSections,
}

var sectionsResume string

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsResume, "resume", "r", "", "Path to resume file (required)")
	if err := sectionsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	doc, _, err := ingestion.LoadDocument(sectionsResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	located := sections.LocateSections(doc.Text, doc.Dialect)
	headline := sections.LocateHeadline(doc.Text, doc.Dialect)

	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSections(located, headline)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"dialect":  doc.Dialect,
		"headline": headline,
		"sections": located,
	})
}
