package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/pkg/errors"
)

// DefaultOpenAIBaseURL is used when no OPENAI_BASE_URL is configured
const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIClient is a minimal OpenAI-compatible chat completions client
type OpenAIClient struct {
	apiKey  string
	baseURL string
	config  *Config
	httpDo  *http.Client
}

// NewOpenAIClient creates a chat completions client. A nil httpClient gets a 60s timeout client.
func NewOpenAIClient(config *Config, apiKey string, httpClient *http.Client) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		config:  config,
		httpDo:  httpClient,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete posts one chat completion with an optional system message
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	modelName, err := modelFor(c.config, req.Tier)
	if err != nil {
		return nil, err
	}

	var messages []chatMessage
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	data, err := json.Marshal(chatCompletionsRequest{
		Model:       modelName,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode chat request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build chat request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, &ProviderFailure{
			Kind:     FailureConnection,
			Provider: ProviderOpenAI,
			Cause:    errors.Wrap(err, "chat completions request failed"),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderFailure{
			Kind:     FailureConnection,
			Provider: ProviderOpenAI,
			Cause:    errors.Wrap(err, "failed to read chat response"),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderFailure{
			Kind:       kindForHTTPStatus(resp.StatusCode),
			Provider:   ProviderOpenAI,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("chat completions http %d: %s", resp.StatusCode, excerpt(string(body), parseExcerptChars)),
		}
	}

	var out chatCompletionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode chat response")
	}
	if len(out.Choices) == 0 {
		return nil, errors.New("no choices returned by model")
	}

	result := &Response{Text: out.Choices[0].Message.Content}
	if out.Usage != nil {
		result.Usage = &types.TokenUsage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		}
	}
	return result, nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Name identifies the provider
func (c *OpenAIClient) Name() Provider {
	return ProviderOpenAI
}

// Close releases idle connections
func (c *OpenAIClient) Close() error {
	c.httpDo.CloseIdleConnections()
	return nil
}
