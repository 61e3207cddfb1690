package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "dialect", Message: "unknown dialect"}
	assert.Equal(t, "validation error: dialect - unknown dialect", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil",
			err:      nil,
			expected: http.StatusOK,
		},
		{
			name:     "InputError",
			err:      &tailoring.InputError{Message: "Job data is invalid"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "NoEditableTargetError",
			err:      &tailoring.NoEditableTargetError{Dialect: "latex"},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "ErrNoRenderer",
			err:      fmt.Errorf("cover letter: %w", tailoring.ErrNoRenderer),
			expected: http.StatusNotImplemented,
		},
		{
			name:     "ServiceUnavailableError",
			err:      &llm.ServiceUnavailableError{Message: "AI service is busy"},
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "ProviderError",
			err:      &llm.ProviderError{Message: "AI response format is invalid"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "ParseError",
			err:      &llm.ParseError{Message: "no JSON object"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "wrapped ServiceUnavailableError",
			err:      fmt.Errorf("failed to generate application documents: %w", &llm.ServiceUnavailableError{Message: "busy"}),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
