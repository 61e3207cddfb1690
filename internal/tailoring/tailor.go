package tailoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/application-tailor/internal/diff"
	"github.com/jonathan/application-tailor/internal/rendering"
	"github.com/jonathan/application-tailor/internal/scoring"
	"github.com/jonathan/application-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

// TailorRequest is one resume tailored to one job
type TailorRequest struct {
	Document          types.Document
	Job               types.JobData
	Profile           *types.UserProfile
	Certifications    []types.Certification
	MaxCertifications int
	// SkipApplication leaves out the cover letter and email
	SkipApplication bool
	// Progress, when set, is called after each completed stage
	Progress ProgressFunc
}

// Tailoring stages reported to ProgressFunc
const (
	StageOptimization = "optimization"
	StageScore        = "ats"
	StageDiff         = "diff"
	StageApplication  = "application"
)

// ProgressFunc receives the stage name and its result
type ProgressFunc func(stage string, result any)

func (r TailorRequest) report(stage string, result any) {
	if r.Progress != nil {
		r.Progress(stage, result)
	}
}

// Tailor optimizes the resume, drafts the application documents from the result,
// then scores and diffs the tailored text.
func (s *Service) Tailor(ctx context.Context, req TailorRequest) (*types.TailorReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"company": req.Job.CompanyName,
		"title":   req.Job.JobTitle,
		"dialect": req.Document.Dialect,
	})

	optimization, err := s.OptimizeResume(ctx, req.Document, &req.Job, req.Profile, OptimizeOptions{
		Certifications:    req.Certifications,
		MaxCertifications: req.MaxCertifications,
	})
	if err != nil {
		return nil, err
	}
	req.report(StageOptimization, optimization)

	plain := PlainText(req.Document.WithText(optimization.UpdatedText))
	report := &types.TailorReport{
		Optimization: optimization,
		Ats:          scoring.ScoreFromText(req.Job.JobDescription, plain),
		Diff:         diff.Words(req.Document.Text, optimization.UpdatedText),
		TokenUsage:   optimization.TokenUsage,
	}
	req.report(StageScore, report.Ats)
	req.report(StageDiff, report.Diff)

	if !req.SkipApplication {
		docs, err := s.GenerateApplicationDocuments(ctx, req.Profile, plain, &req.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to generate application documents: %w", err)
		}
		report.Application = docs
		req.report(StageApplication, docs)
		report.TokenUsage = report.TokenUsage.Add(docs.TokenUsage)
	}

	log.WithField("ats_score", report.Ats.Score).Info("tailoring complete")
	return report, nil
}

// PlainText renders a document as plain text for scoring and prompting
func PlainText(doc types.Document) string {
	if doc.Dialect == types.DialectLaTeX {
		return rendering.LaTeXToPlainText(doc.Text)
	}
	return doc.Text
}

// ErrNoRenderer is returned when a PDF is requested without a Renderer
var ErrNoRenderer = errors.New("no renderer configured")

// Renderer turns text into a PDF. Implementations live outside the core.
type Renderer interface {
	RenderPDF(ctx context.Context, title, content string) ([]byte, error)
}

// RenderCoverLetter renders the cover letter of docs titled after the job
func RenderCoverLetter(ctx context.Context, renderer Renderer, job types.JobData, docs *types.ApplicationDocuments) ([]byte, error) {
	if renderer == nil {
		return nil, ErrNoRenderer
	}
	if docs == nil || strings.TrimSpace(docs.CoverLetterText) == "" {
		return nil, &InputError{Message: "Cover letter is empty", Field: "cover_letter_text"}
	}
	title := "Cover Letter"
	if company := strings.TrimSpace(job.CompanyName); company != "" {
		title = fmt.Sprintf("Cover Letter - %s", company)
	}
	pdf, err := renderer.RenderPDF(ctx, title, docs.CoverLetterText)
	if err != nil {
		return nil, fmt.Errorf("failed to render cover letter: %w", err)
	}
	return pdf, nil
}
