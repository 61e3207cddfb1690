// Package server provides the HTTP REST API for the application tailor.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/application-tailor/internal/tailoring"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies; resumes and job descriptions are small
const maxBodyBytes = 2 << 20

// Server represents the HTTP server
type Server struct {
	httpServer        *http.Server
	service           *tailoring.Service
	logger            *logrus.Logger
	maxCertifications int
	renderer          tailoring.Renderer
}

// Config holds server configuration
type Config struct {
	Port              int
	MaxCertifications int
	// Renderer, when set, serves cover letter PDFs; without one that endpoint answers 501
	Renderer tailoring.Renderer
}

// New creates a new server instance
func New(cfg Config, service *tailoring.Service, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Server{
		service:           service,
		logger:            logger,
		maxCertifications: cfg.MaxCertifications,
		renderer:          cfg.Renderer,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // provider calls retry with backoff
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler wrapped in middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Deterministic document operations
	mux.HandleFunc("POST /v1/sections", s.handleSections)
	mux.HandleFunc("POST /v1/score", s.handleScore)
	mux.HandleFunc("POST /v1/score/structured", s.handleStructuredScore)
	mux.HandleFunc("POST /v1/diff", s.handleDiff)
	mux.HandleFunc("POST /v1/certifications/select", s.handleSelectCertifications)

	// Provider-backed operations
	mux.HandleFunc("POST /v1/keywords", s.handleKeywords)
	mux.HandleFunc("POST /v1/resumes/parse", s.handleParseResume)
	mux.HandleFunc("POST /v1/resumes/optimize", s.handleOptimize)
	mux.HandleFunc("POST /v1/documents", s.handleDocuments)
	mux.HandleFunc("POST /v1/documents/application", s.handleApplicationDocuments)
	mux.HandleFunc("POST /v1/documents/cover-letter.pdf", s.handleCoverLetterPDF)
	mux.HandleFunc("POST /v1/tailor", s.handleTailor)
	mux.HandleFunc("POST /v1/tailor/stream", s.handleTailorStream)

	return s.withRequestID(s.withLogging(s.withRecovery(s.withCORS(mux))))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON request body into dst
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log(r).WithError(err).Error("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response with the status HTTPStatus assigns to err
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	entry := s.log(r).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	s.jsonResponse(w, r, status, ErrorBody{
		Error:     err.Error(),
		Retriable: status == http.StatusServiceUnavailable,
		RequestID: RequestIDFromContext(r.Context()),
	})
}
