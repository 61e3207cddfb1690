// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultMaxRetries        = 3
	DefaultTimeoutSeconds    = 30
	DefaultBackoffMillis     = 1000
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultMaxCertifications = 4
	DefaultOutputDir         = "out"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume    string `json:"resume,omitempty" yaml:"resume"`         // Path to resume (.tex, .txt, .md, .pdf, .docx)
	Job       string `json:"job,omitempty" yaml:"job"`               // Path to job description file
	JobURL    string `json:"job_url,omitempty" yaml:"job_url"`       // URL to fetch job posting from
	Profile   string `json:"profile,omitempty" yaml:"profile"`       // Path to candidate profile YAML/JSON
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir"` // Directory for tailored outputs

	// Completion provider
	Provider       string `json:"provider,omitempty" yaml:"provider"` // gemini, anthropic or openai
	Model          string `json:"model,omitempty" yaml:"model"`       // Overrides every model tier
	APIKey         string `json:"api_key,omitempty" yaml:"api_key"`
	BaseURL        string `json:"base_url,omitempty" yaml:"base_url"`
	MaxRetries     int    `json:"max_retries,omitempty" yaml:"max_retries"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds"` // Per attempt
	BackoffMillis  int    `json:"backoff_millis,omitempty" yaml:"backoff_millis"`   // Retry backoff unit

	// Server
	Port int `json:"port,omitempty" yaml:"port"`

	// Behavior
	LogLevel          string `json:"log_level,omitempty" yaml:"log_level"`
	LogFormat         string `json:"log_format,omitempty" yaml:"log_format"` // text or json
	Verbose           bool   `json:"verbose,omitempty" yaml:"verbose"`
	MaxCertifications int    `json:"max_certifications,omitempty" yaml:"max_certifications"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		OutputDir:         DefaultOutputDir,
		Provider:          string(llm.ProviderGemini),
		MaxRetries:        DefaultMaxRetries,
		TimeoutSeconds:    DefaultTimeoutSeconds,
		BackoffMillis:     DefaultBackoffMillis,
		Port:              DefaultPort,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		MaxCertifications: DefaultMaxCertifications,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// ${VAR} references in the file are expanded from the environment.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	content := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if _, err := llm.ParseProvider(c.Provider); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate numeric ranges
	if c.MaxRetries < 0 {
		return fmt.Errorf("config error: 'max_retries' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.BackoffMillis < 0 {
		return fmt.Errorf("config error: 'backoff_millis' must be non-negative")
	}
	if c.MaxCertifications < 0 {
		return fmt.Errorf("config error: 'max_certifications' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid 'log_level': %w", err)
		}
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config error: 'log_format' must be text or json, got %q", c.LogFormat)
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job, "profile": c.Profile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	for _, f := range []struct {
		dst *string
		def string
	}{
		{&result.Resume, defaults.Resume},
		{&result.Job, defaults.Job},
		{&result.JobURL, defaults.JobURL},
		{&result.Profile, defaults.Profile},
		{&result.OutputDir, defaults.OutputDir},
		{&result.Provider, defaults.Provider},
		{&result.Model, defaults.Model},
		{&result.APIKey, defaults.APIKey},
		{&result.BaseURL, defaults.BaseURL},
		{&result.LogLevel, defaults.LogLevel},
		{&result.LogFormat, defaults.LogFormat},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}

	// Int fields: use default if zero
	for _, f := range []struct {
		dst *int
		def int
	}{
		{&result.MaxRetries, defaults.MaxRetries},
		{&result.TimeoutSeconds, defaults.TimeoutSeconds},
		{&result.BackoffMillis, defaults.BackoffMillis},
		{&result.Port, defaults.Port},
		{&result.MaxCertifications, defaults.MaxCertifications},
	} {
		if *f.dst == 0 {
			*f.dst = f.def
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig returns the model configuration for the selected provider
func (c *Config) LLMConfig() (*llm.Config, error) {
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return nil, err
	}
	cfg := llm.ConfigForProvider(provider)
	if c.Model != "" {
		cfg = cfg.WithAllModels(c.Model)
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	return cfg, nil
}

// AttemptTimeout is the per-call provider timeout
func (c *Config) AttemptTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BackoffUnit is the base of the retry backoff
func (c *Config) BackoffUnit() time.Duration {
	if c.BackoffMillis <= 0 {
		return DefaultBackoffMillis * time.Millisecond
	}
	return time.Duration(c.BackoffMillis) * time.Millisecond
}
