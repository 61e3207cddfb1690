package tailoring

import (
	"context"

	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/prompts"
	"github.com/jonathan/application-tailor/internal/schemas"
	"github.com/jonathan/application-tailor/internal/types"
)

// ExtractKeywords pulls categorized keywords out of a job description
func (s *Service) ExtractKeywords(ctx context.Context, jobDescription string) (*types.JobKeywords, error) {
	if tooShort(jobDescription, minKeywordsJobChars) {
		return nil, &InputError{Message: "Job description is too short", Field: "job_description"}
	}

	completion, err := s.complete(ctx, schemas.ContractJobKeywords, llm.CompletionRequest{
		Prompt:       llm.BuildExtractionPrompt(llm.JobKeywordsSchema(), truncate(jobDescription, MaxJobDescriptionChars)),
		SystemPrompt: systemPrompt(prompts.ExtractionSystem),
		Temperature:  extractionTemperature,
		Tier:         llm.TierLite,
	})
	if err != nil {
		return nil, err
	}

	keywords := &types.JobKeywords{}
	if err := decodePayload(completion.Payload, keywords); err != nil {
		return nil, err
	}
	keywords.TechnicalSkills = nonNil(keywords.TechnicalSkills)
	keywords.Tools = nonNil(keywords.Tools)
	keywords.SoftSkills = nonNil(keywords.SoftSkills)
	keywords.ActionVerbs = nonNil(keywords.ActionVerbs)
	return keywords, nil
}

// ParseResume extracts contact details, skills, experience and education from resume text
func (s *Service) ParseResume(ctx context.Context, resumeText string) (*types.ParsedResume, error) {
	if tooShort(resumeText, minParseResumeChars) {
		return nil, &InputError{Message: "Resume text is too short or empty", Field: "resume_text"}
	}

	completion, err := s.complete(ctx, schemas.ContractParsedResume, llm.CompletionRequest{
		Prompt:       llm.BuildExtractionPrompt(llm.ResumeParseSchema(), truncate(resumeText, MaxResumeChars)),
		SystemPrompt: systemPrompt(prompts.ExtractionSystem),
		Temperature:  extractionTemperature,
		Tier:         llm.TierLite,
	})
	if err != nil {
		return nil, err
	}

	parsed := &types.ParsedResume{}
	if err := decodePayload(completion.Payload, parsed); err != nil {
		return nil, err
	}
	parsed.Skills = nonNil(parsed.Skills)
	if parsed.Experience == nil {
		parsed.Experience = []types.ParsedExperience{}
	}
	if parsed.Education == nil {
		parsed.Education = []types.ParsedEducation{}
	}
	return parsed, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
