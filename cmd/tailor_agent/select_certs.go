package main

import (
	"fmt"

	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/jonathan/application-tailor/internal/selection"
	"github.com/spf13/cobra"
)

var selectCertsCmd = &cobra.Command{
	Use:   "select-certs",
	Short: "Select the certifications most relevant to a job",
	Long:  "Rank the candidate's certifications by keyword overlap with the job description and keep the top --max. Without any overlap the first --max are kept in file order.",
	RunE:  runSelectCerts,
}

var (
	selectCertsProfile string
	selectCertsMax     int
	selectCertsJob     jobFlags
)

func init() {
	selectCertsCmd.Flags().StringVarP(&selectCertsProfile, "profile", "p", "", "Path to candidate file with certifications (required)")
	selectCertsCmd.Flags().IntVar(&selectCertsMax, "max", selection.DefaultMaxCertifications, "Maximum certifications to keep")
	selectCertsJob.register(selectCertsCmd)
	if err := selectCertsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(selectCertsCmd)
}

func runSelectCerts(cmd *cobra.Command, _ []string) error {
	if selectCertsMax <= 0 {
		return fmt.Errorf("--max must be positive")
	}
	_, certs, err := loadCandidate(selectCertsProfile)
	if err != nil {
		return err
	}
	job, err := loadJob(cmd.Context(), selectCertsJob)
	if err != nil {
		return err
	}

	selected := selection.SelectCertifications(job.JobDescription, certs, selectCertsMax)
	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintCertifications(selected)
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), selected)
}
