// Package main provides the entry point for the application tailor CLI and HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor_agent",
	Short: "Resume and job application tailoring",
	Long: `Tailor a resume (LaTeX or plain text) to a job posting: rewrite the headline, summary and skills,
select relevant certifications, score keyword coverage and draft a cover letter and email.

Configuration is read from --config (JSON or YAML), then the environment, then flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
	provider   string
	model      string
	apiKey     string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config file (.json, .yaml); flags override its values")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "Log format (text or json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print formatted summaries to stdout")
	flags.StringVar(&provider, "provider", "", "Completion provider (gemini, anthropic, openai)")
	flags.StringVar(&model, "model", "", "Model used for every tier")
	flags.StringVar(&apiKey, "api-key", "", "Provider API key (defaults to TAILOR_API_KEY or the provider's key variable)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
