package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume, cover letter and email in one completion",
	Long:  "Generate a fully rewritten plain-text resume, a cover letter, an email and a self-reported ATS score from a single completion.",
	RunE:  runGenerate,
}

var (
	generateResume  string
	generateProfile string
	generateOut     string
	generateJob     jobFlags
)

func init() {
	generateCmd.Flags().StringVarP(&generateResume, "resume", "r", "", "Path to resume file (required)")
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Path to candidate file")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output directory (defaults to output_dir from config)")
	generateJob.register(generateCmd)
	if err := generateCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	doc, _, err := ingestion.LoadDocument(generateResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	job, err := loadJob(ctx, generateJob)
	if err != nil {
		return err
	}
	profile, _, err := loadCandidate(generateProfile)
	if err != nil {
		return err
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := svc.GenerateJobDocuments(ctx, profile, tailoring.PlainText(*doc), job)
	if err != nil {
		return fmt.Errorf("failed to generate documents: %w", err)
	}

	report, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	paths, err := ingestion.WriteOutput(firstNonEmpty(generateOut, cfg.OutputDir), map[string][]byte{
		"resume.generated.txt": []byte(result.TailoredText),
		"cover_letter.txt":     []byte(result.CoverLetterText),
		"email.txt":            []byte(emailText(result.EmailSubject, result.EmailBody)),
		"generation.json":      report,
	})
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Self-reported ATS score: %d\n", result.AtsScore)
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	}
	return nil
}

func emailText(subject, body string) string {
	return fmt.Sprintf("Subject: %s\n\n%s\n", subject, body)
}
