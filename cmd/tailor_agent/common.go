package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/application-tailor/internal/config"
	"github.com/jonathan/application-tailor/internal/experience"
	"github.com/jonathan/application-tailor/internal/ingestion"
	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/observability"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// jobFlags describe the job a command tailors for
type jobFlags struct {
	path         string
	url          string
	company      string
	title        string
	requirements string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "job", "j", "", "Path to job description file (mutually exclusive with --job-url)")
	cmd.Flags().StringVar(&f.url, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	cmd.Flags().StringVar(&f.company, "company", "", "Company name")
	cmd.Flags().StringVar(&f.title, "title", "", "Job title")
	cmd.Flags().StringVar(&f.requirements, "requirements", "", "Additional requirements text")
}

// loadSettings resolves configuration: config file, environment, explicitly set flags, then defaults
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	flags := cmd.Flags()
	for name, f := range map[string]struct {
		dst   *string
		value string
	}{
		"log-level":  {&cfg.LogLevel, logLevel},
		"log-format": {&cfg.LogFormat, logFormat},
		"provider":   {&cfg.Provider, provider},
		"model":      {&cfg.Model, model},
		"api-key":    {&cfg.APIKey, apiKey},
	} {
		if flags.Changed(name) {
			*f.dst = f.value
		}
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if err := merged.ResolveProviderKey(os.LookupEnv); err != nil {
		return nil, err
	}
	return &merged, nil
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	return observability.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}

// newService wires a provider client behind the retrying gateway.
// The returned close function releases the client.
func newService(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*tailoring.Service, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set %s, the provider key variable, or use --api-key)", config.EnvAPIKey)
	}
	llmCfg, err := cfg.LLMConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	gateway := llm.NewGateway(client, logger)
	gateway.MaxRetries = cfg.MaxRetries
	gateway.AttemptTimeout = cfg.AttemptTimeout()
	gateway.BackoffUnit = cfg.BackoffUnit()

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.WithError(err).Warn("failed to close LLM client")
		}
	}
	return tailoring.NewService(gateway, logger), closeFn, nil
}

// loadJob reads the job description from a file or URL and pairs it with the job flags
func loadJob(ctx context.Context, f jobFlags) (*types.JobData, error) {
	if f.path == "" && f.url == "" {
		return nil, fmt.Errorf("either --job or --job-url must be provided")
	}
	if f.path != "" && f.url != "" {
		return nil, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	var description string
	var err error
	if f.path != "" {
		description, _, err = ingestion.LoadText(f.path)
	} else {
		description, _, err = ingestion.FetchJobDescription(ctx, f.url, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job description: %w", err)
	}

	return &types.JobData{
		CompanyName:    strings.TrimSpace(f.company),
		JobTitle:       strings.TrimSpace(f.title),
		JobDescription: description,
		Requirements:   f.requirements,
	}, nil
}

// loadCandidate returns the profile and certifications of a candidate file, or empty values without one
func loadCandidate(path string) (*types.UserProfile, []types.Certification, error) {
	if path == "" {
		return nil, nil, nil
	}
	candidate, err := experience.LoadCandidate(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	return &candidate.Profile, candidate.Certifications, nil
}

// writeJSON prints v as indented JSON
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
