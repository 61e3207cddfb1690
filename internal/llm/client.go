package llm

import (
	"context"
	"fmt"

	"github.com/jonathan/application-tailor/internal/types"
)

// Request is one provider call
type Request struct {
	Prompt       string
	SystemPrompt string
	Temperature  float64
	Tier         ModelTier
	// MaxTokens caps the completion; zero leaves the provider default
	MaxTokens int
}

// Response is the raw text of a completion and its token usage, if reported
type Response struct {
	Text  string
	Usage *types.TokenUsage
}

// Client is an abstraction over LLM providers.
// Implementations report failures as *ProviderFailure so the gateway can classify them.
type Client interface {
	// Complete runs a single completion without retrying
	Complete(ctx context.Context, req Request) (*Response, error)
	// GetModel returns the provider model for a tier
	GetModel(tier ModelTier) string
	// Name identifies the provider in logs
	Name() Provider
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderAnthropic:
		return NewAnthropicClient(config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey, nil)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

func modelFor(config *Config, tier ModelTier) (string, error) {
	model := config.GetModel(tier)
	if model == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}
	return model, nil
}
