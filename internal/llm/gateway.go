package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxRetries bounds the number of provider calls per completion
	DefaultMaxRetries = 3
	// DefaultAttemptTimeout bounds a single provider call
	DefaultAttemptTimeout = 30 * time.Second
	// DefaultBackoffUnit is the base of the retry backoff
	DefaultBackoffUnit = time.Second
)

// CompletionRequest is one logical completion, possibly spanning several provider calls
type CompletionRequest struct {
	Prompt       string
	SystemPrompt string
	Temperature  float64
	Tier         ModelTier
}

// Completion is a decoded JSON payload and the usage of the successful call
type Completion struct {
	Payload map[string]any
	Usage   *types.TokenUsage
}

// Gateway wraps a Client with the retry policy and JSON extraction.
//
// Throttling and connection failures back off exponentially (1, 2, 4... units) and end in
// *ServiceUnavailableError. Other status errors fail immediately with *ProviderError. Anything
// else, including unparseable output, waits one unit and ends in *ProviderError.
type Gateway struct {
	client         Client
	MaxRetries     int
	AttemptTimeout time.Duration
	BackoffUnit    time.Duration
	logger         *logrus.Entry
	sleep          func(ctx context.Context, d time.Duration) error
}

// NewGateway creates a gateway with default retry settings
func NewGateway(client Client, logger *logrus.Logger) *Gateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Gateway{
		client:         client,
		MaxRetries:     DefaultMaxRetries,
		AttemptTimeout: DefaultAttemptTimeout,
		BackoffUnit:    DefaultBackoffUnit,
		logger:         logger.WithField("component", "llm_gateway"),
		sleep:          sleepContext,
	}
}

// Complete runs the request until it yields a JSON object or the retry policy gives up
func (g *Gateway) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	maxRetries := g.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		log := g.logger.WithFields(logrus.Fields{
			"provider": g.client.Name(),
			"attempt":  attempt + 1,
			"max":      maxRetries,
			"tier":     req.Tier,
		})

		completion, err := g.attempt(ctx, req)
		if err == nil {
			log.Debug("completion succeeded")
			return completion, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("completion cancelled: %w", ctx.Err())
		}

		last := attempt == maxRetries-1
		kind := kindOf(err)
		log = log.WithField("kind", kind).WithError(err)

		switch kind {
		case FailureRateLimited, FailureConnection:
			log.Warn("provider unavailable")
			if last {
				return nil, &ServiceUnavailableError{Message: unavailableMessage(kind), Cause: err}
			}
			if err := g.sleep(ctx, g.BackoffUnit*time.Duration(1<<attempt)); err != nil {
				return nil, fmt.Errorf("completion cancelled: %w", err)
			}
		case FailureStatus:
			log.Error("provider rejected request")
			return nil, &ProviderError{Message: "AI provider request failed, verify API key and model", Cause: err}
		default:
			log.Error("unexpected completion failure")
			if last {
				return nil, &ProviderError{Message: "failed to process AI response", Cause: err}
			}
			if err := g.sleep(ctx, g.BackoffUnit); err != nil {
				return nil, fmt.Errorf("completion cancelled: %w", err)
			}
		}
	}

	return nil, errors.New("failed to get response from AI service")
}

func (g *Gateway) attempt(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if g.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.AttemptTimeout)
		defer cancel()
	}

	resp, err := g.client.Complete(ctx, Request{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		Temperature:  req.Temperature,
		Tier:         req.Tier,
	})
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSONPayload(resp.Text)
	if err != nil {
		return nil, err
	}
	return &Completion{Payload: payload, Usage: resp.Usage}, nil
}

func unavailableMessage(kind FailureKind) string {
	if kind == FailureRateLimited {
		return "AI provider rate limit exceeded, try again shortly"
	}
	return "AI provider is currently unreachable"
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
