package server

import (
	"net/http"

	"github.com/jonathan/application-tailor/internal/diff"
	"github.com/jonathan/application-tailor/internal/scoring"
	"github.com/jonathan/application-tailor/internal/sections"
	"github.com/jonathan/application-tailor/internal/selection"
	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/jonathan/application-tailor/internal/types"
)

// SectionsRequest is the body of POST /v1/sections
type SectionsRequest struct {
	Text    string        `json:"text"`
	Dialect types.Dialect `json:"dialect"`
}

// SectionsResponse lists the located sections and headline of a document
type SectionsResponse struct {
	Sections types.SectionMap `json:"sections"`
	Headline *types.Headline  `json:"headline"`
}

// ScoreRequest is the body of POST /v1/score
type ScoreRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

// StructuredScoreRequest is the body of POST /v1/score/structured
type StructuredScoreRequest struct {
	ResumeSkills []string           `json:"resume_skills"`
	JobKeywords  *types.JobKeywords `json:"job_keywords"`
}

// DiffRequest is the body of POST /v1/diff
type DiffRequest struct {
	Original string `json:"original"`
	Updated  string `json:"updated"`
}

// DiffResponse carries the word diff and its per-type counts
type DiffResponse struct {
	Entries []types.DiffEntry      `json:"entries"`
	Summary map[types.DiffType]int `json:"summary"`
}

// SelectCertificationsRequest is the body of POST /v1/certifications/select
type SelectCertificationsRequest struct {
	JobDescription string                `json:"job_description"`
	Certifications []types.Certification `json:"certifications"`
	MaxItems       int                   `json:"max_items,omitempty"`
}

// TextRequest carries a single text input for extraction endpoints
type TextRequest struct {
	Text string `json:"text"`
}

// OptimizeRequest is the body of POST /v1/resumes/optimize and the tailor endpoints
type OptimizeRequest struct {
	Document          types.Document        `json:"document"`
	Job               types.JobData         `json:"job"`
	Profile           *types.UserProfile    `json:"profile,omitempty"`
	Certifications    []types.Certification `json:"certifications,omitempty"`
	MaxCertifications int                   `json:"max_certifications,omitempty"`
	SkipApplication   bool                  `json:"skip_application,omitempty"`
}

// DocumentsRequest is the body of POST /v1/documents and /v1/documents/application
type DocumentsRequest struct {
	ResumeText string             `json:"resume_text"`
	Job        types.JobData      `json:"job"`
	Profile    *types.UserProfile `json:"profile,omitempty"`
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	var req SectionsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if req.Dialect == "" {
		req.Dialect = types.DialectPlainText
	}
	if !req.Dialect.Valid() {
		s.errorResponse(w, r, &ErrValidation{Field: "dialect", Message: "must be plain_text or latex"})
		return
	}

	s.jsonResponse(w, r, http.StatusOK, SectionsResponse{
		Sections: sections.LocateSections(req.Text, req.Dialect),
		Headline: sections.LocateHeadline(req.Text, req.Dialect),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, scoring.ScoreFromText(req.JobDescription, req.ResumeText))
}

func (s *Server) handleStructuredScore(w http.ResponseWriter, r *http.Request) {
	var req StructuredScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, scoring.ScoreStructured(req.ResumeSkills, req.JobKeywords))
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	entries := diff.Words(req.Original, req.Updated)
	s.jsonResponse(w, r, http.StatusOK, DiffResponse{Entries: entries, Summary: diff.Summary(entries)})
}

func (s *Server) handleSelectCertifications(w http.ResponseWriter, r *http.Request) {
	var req SelectCertificationsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if req.MaxItems < 0 {
		s.errorResponse(w, r, &ErrValidation{Field: "max_items", Message: "must not be negative"})
		return
	}
	if req.MaxItems == 0 {
		req.MaxItems = s.maxCertifications
	}

	selected := selection.SelectCertifications(req.JobDescription, req.Certifications, req.MaxItems)
	s.jsonResponse(w, r, http.StatusOK, map[string]any{"certifications": selected})
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	keywords, err := s.service.ExtractKeywords(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, keywords)
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	parsed, err := s.service.ParseResume(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, parsed)
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	result, err := s.service.OptimizeResume(r.Context(), req.Document, &req.Job, req.Profile, tailoring.OptimizeOptions{
		Certifications:    req.Certifications,
		MaxCertifications: s.certLimit(req.MaxCertifications),
	})
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, result)
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	var req DocumentsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	result, err := s.service.GenerateJobDocuments(r.Context(), req.Profile, req.ResumeText, &req.Job)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, result)
}

func (s *Server) handleApplicationDocuments(w http.ResponseWriter, r *http.Request) {
	var req DocumentsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	docs, err := s.service.GenerateApplicationDocuments(r.Context(), req.Profile, req.ResumeText, &req.Job)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, docs)
}

// CoverLetterPDFRequest is the body of POST /v1/documents/cover-letter.pdf
type CoverLetterPDFRequest struct {
	Job             types.JobData `json:"job"`
	CoverLetterText string        `json:"cover_letter_text"`
}

func (s *Server) handleCoverLetterPDF(w http.ResponseWriter, r *http.Request) {
	var req CoverLetterPDFRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	pdf, err := tailoring.RenderCoverLetter(r.Context(), s.renderer, req.Job,
		&types.ApplicationDocuments{CoverLetterText: req.CoverLetterText})
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cover_letter.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf) //nolint:errcheck
}

func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	report, err := s.service.Tailor(r.Context(), s.tailorRequest(req))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, r, http.StatusOK, report)
}

// handleTailorStream runs the tailoring pipeline and streams each stage via SSE
func (s *Server) handleTailorStream(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	tailorReq := s.tailorRequest(req)
	tailorReq.Progress = func(stage string, result any) {
		if err := sse.WriteEvent(stage, result); err != nil {
			s.log(r).WithError(err).Warn("error writing SSE event")
		}
	}

	report, err := s.service.Tailor(r.Context(), tailorReq)
	if err != nil {
		s.log(r).WithError(err).Error("streamed tailoring failed")
		sse.WriteError(err, RequestIDFromContext(r.Context()))
		return
	}
	sse.WriteComplete(report)
}

func (s *Server) tailorRequest(req OptimizeRequest) tailoring.TailorRequest {
	return tailoring.TailorRequest{
		Document:          req.Document,
		Job:               req.Job,
		Profile:           req.Profile,
		Certifications:    req.Certifications,
		MaxCertifications: s.certLimit(req.MaxCertifications),
		SkipApplication:   req.SkipApplication,
	}
}

func (s *Server) certLimit(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.maxCertifications
}
