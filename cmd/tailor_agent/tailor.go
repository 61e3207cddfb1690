package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job and draft the application documents",
	Long: `Run the full tailoring flow: rewrite the headline, summary and skills, select certifications,
score keyword coverage of the tailored resume, diff it against the original and draft a cover letter and email.

Outputs: the tailored resume, cover_letter.txt, email.txt and report.json.`,
	RunE: runTailor,
}

var (
	tailorResume          string
	tailorProfile         string
	tailorOut             string
	tailorMax             int
	tailorSkipApplication bool
	tailorJob             jobFlags
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to resume file (required)")
	tailorCmd.Flags().StringVarP(&tailorProfile, "profile", "p", "", "Path to candidate file (profile and certifications)")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Output directory (defaults to output_dir from config)")
	tailorCmd.Flags().IntVar(&tailorMax, "max-certs", 0, "Maximum certifications to keep (defaults to max_certifications from config)")
	tailorCmd.Flags().BoolVar(&tailorSkipApplication, "skip-application", false, "Skip the cover letter and email")
	tailorJob.register(tailorCmd)
	if err := tailorCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := tailorCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := tailorCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	doc, _, err := ingestion.LoadDocument(tailorResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	job, err := loadJob(ctx, tailorJob)
	if err != nil {
		return err
	}
	profile, certs, err := loadCandidate(tailorProfile)
	if err != nil {
		return err
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := svc.Tailor(ctx, tailoring.TailorRequest{
		Document:          *doc,
		Job:               *job,
		Profile:           profile,
		Certifications:    certs,
		MaxCertifications: firstPositive(tailorMax, cfg.MaxCertifications),
		SkipApplication:   tailorSkipApplication,
	})
	if err != nil {
		return err
	}

	artifacts, err := tailorArtifacts(tailoredName(tailorResume, doc.Dialect), report)
	if err != nil {
		return err
	}
	paths, err := ingestion.WriteOutput(firstNonEmpty(tailorOut, cfg.OutputDir), artifacts)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintOptimization(report.Optimization)
		printer.PrintAtsScore(report.Ats)
		printer.PrintDiffSummary(report.Diff)
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	}
	return nil
}

// tailorArtifacts lays out the files written for one tailoring report
func tailorArtifacts(resumeName string, report *types.TailorReport) (map[string][]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	artifacts := map[string][]byte{
		resumeName:    []byte(report.Optimization.UpdatedText),
		"report.json": data,
	}
	if app := report.Application; app != nil {
		artifacts["cover_letter.txt"] = []byte(app.CoverLetterText)
		artifacts["email.txt"] = []byte(emailText(app.EmailSubject, app.EmailBody))
	}
	return artifacts, nil
}
