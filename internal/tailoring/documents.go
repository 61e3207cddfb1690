package tailoring

import (
	"context"

	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/prompts"
	"github.com/jonathan/application-tailor/internal/schemas"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

// GenerateJobDocuments rewrites the whole resume and drafts the cover letter and email in one completion.
func (s *Service) GenerateJobDocuments(ctx context.Context, profile *types.UserProfile, resumeText string, job *types.JobData) (*types.GenerationResult, error) {
	if tooShort(resumeText, minGenerateResumeChars) {
		return nil, &InputError{Message: "Resume content is too short", Field: "resume_text"}
	}
	if err := s.checkJob(job); err != nil {
		return nil, err
	}
	if err := s.checkProfile(profile); err != nil {
		return nil, err
	}

	data := jobPromptData(profile, job)
	data["Resume"] = truncate(resumeText, MaxResumeChars)

	completion, err := s.complete(ctx, schemas.ContractFullTailoring, llm.CompletionRequest{
		Prompt:       prompt(prompts.GenerateDocuments, data),
		SystemPrompt: systemPrompt(prompts.DocumentSystem),
		Temperature:  documentTemperature,
		Tier:         llm.TierAdvanced,
	})
	if err != nil {
		return nil, err
	}

	payload := completion.Payload
	result := &types.GenerationResult{TokenUsage: completion.Usage}
	for _, field := range []struct {
		key string
		dst *string
	}{
		{"tailored_resume_text", &result.TailoredText},
		{"cover_letter_text", &result.CoverLetterText},
		{"email_subject", &result.EmailSubject},
		{"email_body", &result.EmailBody},
	} {
		if *field.dst, err = requiredField(payload, field.key); err != nil {
			return nil, err
		}
	}
	result.EmailSubject = truncate(result.EmailSubject, MaxEmailSubjectChars)
	result.AtsScore = atsScore(payload["ats_score"])
	result.ChangesMade = stringList(payload, "changes_made")

	s.logger.WithFields(logrus.Fields{
		"company":   job.CompanyName,
		"ats_score": result.AtsScore,
		"changes":   len(result.ChangesMade),
	}).Info("generated job documents")
	return result, nil
}

// GenerateApplicationDocuments drafts the cover letter and email for an already tailored resume.
func (s *Service) GenerateApplicationDocuments(ctx context.Context, profile *types.UserProfile, tailoredResume string, job *types.JobData) (*types.ApplicationDocuments, error) {
	if tooShort(tailoredResume, minApplicationResumeChars) {
		return nil, &InputError{Message: "Tailored resume content is too short", Field: "tailored_resume_text"}
	}
	if err := s.checkJob(job); err != nil {
		return nil, err
	}
	if err := s.checkProfile(profile); err != nil {
		return nil, err
	}

	data := jobPromptData(profile, job)
	data["Resume"] = truncate(tailoredResume, MaxResumeChars)

	completion, err := s.complete(ctx, schemas.ContractApplicationDocuments, llm.CompletionRequest{
		Prompt:       prompt(prompts.ApplicationDocuments, data),
		SystemPrompt: systemPrompt(prompts.ApplicationSystem),
		Temperature:  documentTemperature,
		Tier:         llm.TierStandard,
	})
	if err != nil {
		return nil, err
	}

	docs := &types.ApplicationDocuments{TokenUsage: completion.Usage}
	if docs.CoverLetterText, err = requiredField(completion.Payload, "cover_letter_text"); err != nil {
		return nil, err
	}
	if docs.EmailSubject, err = requiredField(completion.Payload, "email_subject"); err != nil {
		return nil, err
	}
	if docs.EmailBody, err = requiredField(completion.Payload, "email_body"); err != nil {
		return nil, err
	}
	docs.EmailSubject = truncate(docs.EmailSubject, MaxEmailSubjectChars)
	return docs, nil
}
