package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/application-tailor/internal/llm"
)

// Environment variables read by ApplyEnv
const (
	EnvProvider          = "TAILOR_PROVIDER"
	EnvModel             = "TAILOR_MODEL"
	EnvAPIKey            = "TAILOR_API_KEY"
	EnvBaseURL           = "TAILOR_BASE_URL"
	EnvMaxRetries        = "TAILOR_MAX_RETRIES"
	EnvTimeoutSeconds    = "TAILOR_TIMEOUT_SECONDS"
	EnvBackoffMillis     = "TAILOR_BACKOFF_MILLIS"
	EnvMaxCertifications = "TAILOR_MAX_CERTIFICATIONS"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
)

// providerKeyEnv is the conventional API key variable of each provider,
// consulted when no key is configured otherwise
var providerKeyEnv = map[llm.Provider]string{
	llm.ProviderGemini:    "GEMINI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
}

// FromEnv returns the defaults overlaid with the process environment
func FromEnv() (*Config, error) {
	cfg := Defaults()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.ResolveProviderKey(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overlays set variables onto the configuration
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		return value, ok && value != ""
	}

	for key, dst := range map[string]*string{
		EnvProvider:  &c.Provider,
		EnvModel:     &c.Model,
		EnvAPIKey:    &c.APIKey,
		EnvBaseURL:   &c.BaseURL,
		EnvLogLevel:  &c.LogLevel,
		EnvLogFormat: &c.LogFormat,
	} {
		if value, ok := get(key); ok {
			*dst = value
		}
	}

	for key, dst := range map[string]*int{
		EnvMaxRetries:        &c.MaxRetries,
		EnvTimeoutSeconds:    &c.TimeoutSeconds,
		EnvBackoffMillis:     &c.BackoffMillis,
		EnvMaxCertifications: &c.MaxCertifications,
		EnvPort:              &c.Port,
	} {
		value, ok := get(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", key, err)
		}
		*dst = n
	}

	return nil
}

// ResolveProviderKey fills an empty APIKey from the selected provider's conventional variable.
// Call it once the provider is final.
func (c *Config) ResolveProviderKey(lookup func(string) (string, bool)) error {
	if c.APIKey != "" {
		return nil
	}
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return fmt.Errorf("invalid provider: %w", err)
	}
	if value, ok := lookup(providerKeyEnv[provider]); ok && value != "" {
		c.APIKey = value
	}
	return nil
}
