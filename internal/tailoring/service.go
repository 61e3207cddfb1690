// Package tailoring orchestrates generation: it builds prompts from located sections,
// validates provider payloads and splices the sanitized results back into the resume.
package tailoring

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/prompts"
	"github.com/jonathan/application-tailor/internal/schemas"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

// Prompt input bounds, in characters
const (
	MaxResumeChars         = 15000
	MaxJobDescriptionChars = 12000
	MaxRequirementsChars   = 4000
	MaxPromptHeadlineChars = 220
	MaxEmailSubjectChars   = 255
)

// Minimum trimmed input lengths
const (
	minGenerateResumeChars    = 50
	minApplicationResumeChars = 30
	minOptimizeResumeChars    = 30
	minKeywordsJobChars       = 20
	minParseResumeChars       = 50
)

// Sampling temperatures per task
const (
	documentTemperature   = 0.4
	sectionTemperature    = 0.35
	extractionTemperature = 0.3
)

// Completer runs a completion and returns its decoded JSON payload. *llm.Gateway implements it.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error)
}

// Service runs the generation tasks. It holds no per-request state and is safe for concurrent use.
type Service struct {
	completer Completer
	logger    *logrus.Entry
	validate  *validator.Validate
}

// NewService creates a service over a completer
func NewService(completer Completer, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		completer: completer,
		logger:    logger.WithField("component", "tailoring"),
		validate:  validator.New(),
	}
}

// complete calls the provider and checks the payload against its contract
func (s *Service) complete(ctx context.Context, contract schemas.Contract, req llm.CompletionRequest) (*llm.Completion, error) {
	log := s.logger.WithField("contract", contract)
	completion, err := s.completer.Complete(ctx, req)
	if err != nil {
		log.WithError(err).Warn("completion failed")
		return nil, err
	}
	if err := schemas.ValidatePayload(contract, completion.Payload); err != nil {
		log.WithError(err).Warn("payload rejected by contract")
		return nil, &llm.ProviderError{Message: "AI response format is invalid", Cause: err}
	}
	log.WithField("usage", completion.Usage).Debug("completion accepted")
	return completion, nil
}

func (s *Service) checkJob(job *types.JobData) error {
	if job == nil {
		return &InputError{Message: "Job data is invalid"}
	}
	if err := s.validate.Struct(job); err != nil {
		return &InputError{Message: "Job data is invalid", Cause: err}
	}
	return nil
}

func (s *Service) checkProfile(profile *types.UserProfile) error {
	if profile == nil {
		return nil
	}
	if err := s.validate.Struct(profile); err != nil {
		return &InputError{Message: "User profile is invalid", Cause: err}
	}
	return nil
}

// jobPromptData holds the placeholders shared by every generation prompt
func jobPromptData(profile *types.UserProfile, job *types.JobData) map[string]string {
	return map[string]string{
		"Profile":        profileJSON(profile),
		"JobTitle":       job.JobTitle,
		"Company":        job.CompanyName,
		"JobDescription": truncate(job.JobDescription, MaxJobDescriptionChars),
		"Requirements":   truncate(job.Requirements, MaxRequirementsChars),
	}
}

func profileJSON(profile *types.UserProfile) string {
	if profile == nil {
		return "{}"
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func prompt(key prompts.Key, data map[string]string) string {
	return prompts.MustRender(key, data)
}

func systemPrompt(key prompts.Key) string {
	return prompts.MustGet(key)
}

// truncate trims value and keeps at most maxChars characters
func truncate(value string, maxChars int) string {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) <= maxChars {
		return value
	}
	return string([]rune(value)[:maxChars])
}

func tooShort(value string, minChars int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) < minChars
}

// stringField reads a payload value as trimmed text; absent and null values are empty
func stringField(payload map[string]any, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

// requiredField is stringField that fails when the value is blank
func requiredField(payload map[string]any, key string) (string, error) {
	value := stringField(payload, key)
	if value == "" {
		return "", &llm.ProviderError{Message: "AI response missing " + key}
	}
	return value, nil
}

// stringList reads a payload list, dropping blank items. Non-list values read as empty.
func stringList(payload map[string]any, key string) []string {
	out := []string{}
	items, ok := payload[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if item == nil {
			continue
		}
		if text := strings.TrimSpace(fmt.Sprint(item)); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// atsScore coerces the model's score to an integer in [0,100]; unreadable values are 0
func atsScore(value any) int {
	var score int
	switch v := value.(type) {
	case float64:
		if !math.IsNaN(v) {
			score = int(math.Max(0, math.Min(100, v)))
		}
	case int:
		score = v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			score = parsed
		}
	}
	return max(0, min(100, score))
}

// decodePayload converts a validated payload into its typed form
func decodePayload(payload map[string]any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return &llm.ProviderError{Message: "AI response format is invalid", Cause: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &llm.ProviderError{Message: "AI response format is invalid", Cause: err}
	}
	return nil
}
