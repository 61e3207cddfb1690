package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/application-tailor/internal/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates a JSON completion using the model of the request tier
func (c *GeminiClient) Complete(ctx context.Context, req Request) (*Response, error) {
	modelName, err := modelFor(c.config, req.Tier)
	if err != nil {
		return nil, err
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(float32(req.Temperature))
	model.ResponseMIMEType = "application/json"
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return &Response{Text: text, Usage: geminiUsage(resp.UsageMetadata)}, nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Name identifies the provider
func (c *GeminiClient) Name() Provider {
	return ProviderGemini
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

func geminiUsage(meta *genai.UsageMetadata) *types.TokenUsage {
	if meta == nil {
		return nil
	}
	return &types.TokenUsage{
		PromptTokens:     int(meta.PromptTokenCount),
		CompletionTokens: int(meta.CandidatesTokenCount),
		TotalTokens:      int(meta.TotalTokenCount),
	}
}

// classifyGeminiError maps gRPC status codes and REST errors onto failure kinds
func classifyGeminiError(err error) error {
	failure := &ProviderFailure{Kind: FailureUnknown, Provider: ProviderGemini, Cause: err}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		failure.StatusCode = apiErr.Code
		failure.Kind = kindForHTTPStatus(apiErr.Code)
		return failure
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		switch st.Code() {
		case codes.ResourceExhausted:
			failure.Kind = FailureRateLimited
		case codes.Unavailable, codes.DeadlineExceeded:
			failure.Kind = FailureConnection
		case codes.Canceled:
			failure.Kind = FailureUnknown
		default:
			failure.Kind = FailureStatus
		}
		return failure
	}

	if isConnectionError(err) {
		failure.Kind = FailureConnection
	}
	return failure
}

// kindForHTTPStatus is shared by the HTTP based providers
func kindForHTTPStatus(code int) FailureKind {
	switch {
	case code == http.StatusTooManyRequests:
		return FailureRateLimited
	case code == http.StatusRequestTimeout:
		return FailureConnection
	case code >= 400:
		return FailureStatus
	default:
		return FailureUnknown
	}
}

// isConnectionError reports network failures and attempt timeouts
func isConnectionError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
