package llm

import (
	"errors"
	"fmt"
)

// FailureKind classifies a failed provider call for the retry policy
type FailureKind string

// Failure kinds
const (
	// FailureRateLimited is a provider throttling response
	FailureRateLimited FailureKind = "rate_limited"
	// FailureConnection covers unreachable endpoints and attempt timeouts
	FailureConnection FailureKind = "connection"
	// FailureStatus is any other error status returned by the provider
	FailureStatus FailureKind = "status"
	// FailureUnknown is everything the client could not classify
	FailureUnknown FailureKind = "unknown"
)

// ProviderFailure is returned by clients when a provider call fails
type ProviderFailure struct {
	Kind       FailureKind
	Provider   Provider
	StatusCode int
	Cause      error
}

func (e *ProviderFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failure (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("%s %s failure: %v", e.Provider, e.Kind, e.Cause)
}

func (e *ProviderFailure) Unwrap() error {
	return e.Cause
}

// ServiceUnavailableError means the provider stayed throttled or unreachable for every attempt.
// Callers may retry later.
type ServiceUnavailableError struct {
	Message string
	Cause   error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Cause
}

// ProviderError is a terminal completion failure
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ParseError reports provider output that holds no JSON object
type ParseError struct {
	Message string
	Excerpt string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Excerpt)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsRetriable reports whether the caller may retry the request later
func IsRetriable(err error) bool {
	var unavailable *ServiceUnavailableError
	return errors.As(err, &unavailable)
}

func kindOf(err error) FailureKind {
	var failure *ProviderFailure
	if errors.As(err, &failure) {
		return failure.Kind
	}
	return FailureUnknown
}
