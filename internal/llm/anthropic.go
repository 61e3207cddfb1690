package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jonathan/application-tailor/internal/types"
)

// defaultAnthropicMaxTokens is required by the Messages API
const defaultAnthropicMaxTokens = 4096

// AnthropicClient implements Client for Anthropic's Claude
type AnthropicClient struct {
	client anthropic.Client
	config *Config
}

// NewAnthropicClient creates a Claude client. Retries are left to the gateway.
func NewAnthropicClient(config *Config, apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		config: config,
	}, nil
}

// Complete sends one message to Claude and returns the concatenated text blocks
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	modelName, err := modelFor(c.config, req.Tier)
	if err != nil {
		return nil, err
	}

	maxTokens := int64(defaultAnthropicMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(modelName),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classifyAnthropicError(err)
	}
	if len(message.Content) == 0 {
		return nil, fmt.Errorf("empty response from Claude")
	}

	var parts []string
	for _, block := range message.Content {
		if block.Type == "text" {
			parts = append(parts, block.AsText().Text)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no text blocks in Claude response")
	}

	input := int(message.Usage.InputTokens)
	output := int(message.Usage.OutputTokens)
	return &Response{
		Text: strings.Join(parts, ""),
		Usage: &types.TokenUsage{
			PromptTokens:     input,
			CompletionTokens: output,
			TotalTokens:      input + output,
		},
	}, nil
}

// GetModel returns the model name for a tier
func (c *AnthropicClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Name identifies the provider
func (c *AnthropicClient) Name() Provider {
	return ProviderAnthropic
}

// Close is a no-op; the SDK client holds no resources
func (c *AnthropicClient) Close() error {
	return nil
}

func classifyAnthropicError(err error) error {
	failure := &ProviderFailure{Kind: FailureUnknown, Provider: ProviderAnthropic, Cause: err}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		failure.StatusCode = apiErr.StatusCode
		failure.Kind = kindForHTTPStatus(apiErr.StatusCode)
		// 529 overloaded behaves like throttling
		if apiErr.StatusCode == 529 {
			failure.Kind = FailureRateLimited
		}
		return failure
	}

	if isConnectionError(err) {
		failure.Kind = FailureConnection
	}
	return failure
}
