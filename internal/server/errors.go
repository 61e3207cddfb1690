package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/tailoring"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error     string `json:"error"`
	Retriable bool   `json:"retriable,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		input       *tailoring.InputError
		noTarget    *tailoring.NoEditableTargetError
		unavailable *llm.ServiceUnavailableError
		provider    *llm.ProviderError
		parse       *llm.ParseError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation), errors.As(err, &input):
		return http.StatusBadRequest
	case errors.As(err, &noTarget):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tailoring.ErrNoRenderer):
		return http.StatusNotImplemented
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &provider), errors.As(err, &parse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
