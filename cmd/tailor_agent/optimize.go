package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite the headline, summary and skills of a resume for a job",
	Long: `Rewrite only the headline, summary and skills of a LaTeX or plain-text resume for a job.
Experience, projects and education are never modified. With --profile certifications, the
certifications section is replaced by the ones most relevant to the job.`,
	RunE: runOptimize,
}

var (
	optimizeResume  string
	optimizeProfile string
	optimizeOut     string
	optimizeMax     int
	optimizeJob     jobFlags
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResume, "resume", "r", "", "Path to resume file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeProfile, "profile", "p", "", "Path to candidate file (profile and certifications)")
	optimizeCmd.Flags().StringVarP(&optimizeOut, "out", "o", "", "Output directory (defaults to output_dir from config)")
	optimizeCmd.Flags().IntVar(&optimizeMax, "max-certs", 0, "Maximum certifications to keep (defaults to max_certifications from config)")
	optimizeJob.register(optimizeCmd)
	if err := optimizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := optimizeCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := optimizeCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	doc, _, err := ingestion.LoadDocument(optimizeResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	job, err := loadJob(ctx, optimizeJob)
	if err != nil {
		return err
	}
	profile, certs, err := loadCandidate(optimizeProfile)
	if err != nil {
		return err
	}

	svc, closeFn, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := svc.OptimizeResume(ctx, *doc, job, profile, tailoring.OptimizeOptions{
		Certifications:    certs,
		MaxCertifications: firstPositive(optimizeMax, cfg.MaxCertifications),
	})
	if err != nil {
		return fmt.Errorf("failed to optimize resume: %w", err)
	}

	outDir := firstNonEmpty(optimizeOut, cfg.OutputDir)
	paths, err := ingestion.WriteOutput(outDir, map[string][]byte{
		tailoredName(optimizeResume, doc.Dialect): []byte(result.UpdatedText),
	})
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintOptimization(result)
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	}
	return nil
}

// tailoredName names the tailored copy of a resume after the original, keeping
// .tex for LaTeX and using .txt for anything extracted to plain text
func tailoredName(resumePath string, dialect types.Dialect) string {
	base := strings.TrimSuffix(filepath.Base(resumePath), filepath.Ext(resumePath))
	if dialect == types.DialectLaTeX {
		return base + ".tailored.tex"
	}
	return base + ".tailored.txt"
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
