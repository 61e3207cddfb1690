package tailoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/application-tailor/internal/editing"
	"github.com/jonathan/application-tailor/internal/llm"
	"github.com/jonathan/application-tailor/internal/prompts"
	"github.com/jonathan/application-tailor/internal/rendering"
	"github.com/jonathan/application-tailor/internal/schemas"
	"github.com/jonathan/application-tailor/internal/sections"
	"github.com/jonathan/application-tailor/internal/selection"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

// HeadlineChangeNote is appended to the changes list when the headline was rewritten
const HeadlineChangeNote = "Updated header headline for job alignment."

const headlineNotFound = "(Not found)"

// OptimizeOptions tunes section optimization
type OptimizeOptions struct {
	// Certifications, when present, replace the document's certifications section
	// with the ones most relevant to the job.
	Certifications    []types.Certification
	MaxCertifications int
}

// dialectProfile holds what differs between LaTeX and plain-text optimization
type dialectProfile struct {
	systemPromptKey prompts.Key
	maxSectionChars int
	tooShortMessage string
}

var dialectProfiles = map[types.Dialect]dialectProfile{
	types.DialectLaTeX: {
		systemPromptKey: prompts.LaTeXSectionSystem,
		maxSectionChars: editing.MaxLaTeXSectionChars,
		tooShortMessage: "LaTeX content is too short",
	},
	types.DialectPlainText: {
		systemPromptKey: prompts.PlainTextSectionSystem,
		maxSectionChars: editing.MaxPlainTextSectionChars,
		tooShortMessage: "Resume content is too short",
	},
}

// OptimizeResume rewrites the headline, summary and skills of a document in its own dialect
func (s *Service) OptimizeResume(ctx context.Context, doc types.Document, job *types.JobData, profile *types.UserProfile, opts OptimizeOptions) (*types.OptimizationResult, error) {
	if !doc.Dialect.Valid() {
		return nil, &InputError{Message: "Unsupported document dialect", Field: string(doc.Dialect)}
	}
	return s.optimize(ctx, doc, job, profile, opts)
}

// OptimizeLaTeXResume rewrites the editable parts of a LaTeX resume. Markup outside them is untouched.
func (s *Service) OptimizeLaTeXResume(ctx context.Context, latex string, job *types.JobData, profile *types.UserProfile, opts OptimizeOptions) (*types.OptimizationResult, error) {
	return s.optimize(ctx, types.Document{Text: latex, Dialect: types.DialectLaTeX}, job, profile, opts)
}

// OptimizePlainTextResume rewrites the editable parts of a plain-text resume
func (s *Service) OptimizePlainTextResume(ctx context.Context, text string, job *types.JobData, profile *types.UserProfile, opts OptimizeOptions) (*types.OptimizationResult, error) {
	return s.optimize(ctx, types.Document{Text: text, Dialect: types.DialectPlainText}, job, profile, opts)
}

func (s *Service) optimize(ctx context.Context, doc types.Document, job *types.JobData, profile *types.UserProfile, opts OptimizeOptions) (*types.OptimizationResult, error) {
	dp := dialectProfiles[doc.Dialect]
	if tooShort(doc.Text, minOptimizeResumeChars) {
		return nil, &InputError{Message: dp.tooShortMessage, Field: "resume_text"}
	}
	if err := s.checkJob(job); err != nil {
		return nil, err
	}
	if err := s.checkProfile(profile); err != nil {
		return nil, err
	}

	located := sections.LocateSections(doc.Text, doc.Dialect)
	headline := sections.LocateHeadline(doc.Text, doc.Dialect)

	var currentHeadline string
	if headline != nil {
		currentHeadline = truncate(headline.Text, MaxPromptHeadlineChars)
	}
	currentSummary := truncate(located[types.SectionSummary].Content, dp.maxSectionChars)
	currentSkills := truncate(located[types.SectionSkills].Content, dp.maxSectionChars)
	template := doc.Dialect == types.DialectLaTeX && editing.HasTemplatePlaceholders(doc.Text)
	if currentHeadline == "" && currentSummary == "" && currentSkills == "" && !template {
		return nil, &NoEditableTargetError{Dialect: string(doc.Dialect)}
	}

	data := jobPromptData(profile, job)
	data["Summary"] = currentSummary
	data["Skills"] = currentSkills
	data["Headline"] = currentHeadline
	if currentHeadline == "" {
		data["Headline"] = headlineNotFound
	}

	completion, err := s.complete(ctx, schemas.ContractSectionUpdate, llm.CompletionRequest{
		Prompt:       prompt(prompts.OptimizeSections, data),
		SystemPrompt: systemPrompt(dp.systemPromptKey),
		Temperature:  sectionTemperature,
		Tier:         llm.TierStandard,
	})
	if err != nil {
		return nil, err
	}
	payload := completion.Payload

	updates := types.SectionUpdateSet{
		types.SectionSummary: stringField(payload, "summary"),
		types.SectionSkills:  stringField(payload, "skills"),
	}
	if block := s.certificationsBlock(located, job, doc.Dialect, opts); block != "" {
		updates[types.SectionCertifications] = block
	}

	edits := editing.SectionEdits(located, updates, doc.Dialect)
	applied := make([]types.SectionKey, 0, len(edits))
	for _, e := range edits {
		applied = append(applied, types.SectionKey(e.Key))
	}

	headlineUpdated := false
	if edit, ok := editing.HeadlineEdit(headline, stringField(payload, "headline"), doc.Dialect); ok {
		edits, headlineUpdated = editing.WithHeadline(edits, edit)
	}

	updated, err := editing.ApplyEdits(doc.Text, edits)
	if err != nil {
		return nil, fmt.Errorf("failed to apply section edits: %w", err)
	}

	// placeholders left by rejected or unlocated fields are filled, or emptied, here
	if template && editing.HasTemplatePlaceholders(updated) {
		newHeadline := stringField(payload, "headline")
		if strings.Contains(updated, editing.PlaceholderHeadline) && editing.SanitizeHeadline(newHeadline, doc.Dialect) != "" {
			headlineUpdated = true
		}
		updated = editing.RenderTemplatePlaceholders(updated, newHeadline, updates[types.SectionSummary], updates[types.SectionSkills])
	}

	changes := stringList(payload, "changes_made")
	if headlineUpdated {
		changes = append(changes, HeadlineChangeNote)
	}

	s.logger.WithFields(logrus.Fields{
		"dialect":          doc.Dialect,
		"sections_found":   len(located),
		"applied_sections": applied,
		"headline_updated": headlineUpdated,
		"template":         template,
	}).Info("optimized resume sections")

	return &types.OptimizationResult{
		UpdatedText:     updated,
		Dialect:         doc.Dialect,
		ChangesMade:     changes,
		SectionsFound:   located.Keys(),
		AppliedSections: applied,
		HeadlineUpdated: headlineUpdated,
		HeadlineUpdate:  stringField(payload, "headline"),
		SummaryUpdate:   updates[types.SectionSummary],
		SkillsUpdate:    updates[types.SectionSkills],
		TokenUsage:      completion.Usage,
	}, nil
}

// certificationsBlock renders the job-relevant certifications when the document has a section for them
func (s *Service) certificationsBlock(located types.SectionMap, job *types.JobData, dialect types.Dialect, opts OptimizeOptions) string {
	if len(opts.Certifications) == 0 {
		return ""
	}
	if _, ok := located[types.SectionCertifications]; !ok {
		return ""
	}
	maxItems := opts.MaxCertifications
	if maxItems <= 0 {
		maxItems = selection.DefaultMaxCertifications
	}
	selected := selection.SelectCertifications(job.JobDescription, opts.Certifications, maxItems)
	return rendering.BuildCertificationsSection(selected, dialect)
}
