// Package server exposes the form configuration, template upload,
// submission and render operations over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/formlay/pdf-form-server/internal/config"
	"github.com/formlay/pdf-form-server/internal/pdf"
	"github.com/formlay/pdf-form-server/internal/store"
)

// Server wires the stores and the render service behind the HTTP API.
type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	forms       *store.FormStore
	submissions *store.SubmissionStore
	renderer    *pdf.Service
	mux         *http.ServeMux
}

// New creates a server over its collaborators and registers all routes.
func New(cfg *config.Config, formStore *store.FormStore, submissionStore *store.SubmissionStore,
	renderer *pdf.Service, logger *slog.Logger,
) *Server {
	s := &Server{
		cfg:         cfg,
		logger:      logger,
		forms:       formStore,
		submissions: submissionStore,
		renderer:    renderer,
		mux:         http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/pdf-templates/{key}", s.handleGetTemplate)
	s.mux.HandleFunc("PUT /api/pdf-templates/{key}", s.handleUpdateTemplate)
	s.mux.HandleFunc("POST /api/pdf-templates/{key}/upload", s.handleUploadTemplate)
	s.mux.HandleFunc("GET /api/submissions", s.handleListSubmissions)
	s.mux.HandleFunc("POST /api/submissions", s.handleCreateSubmission)
	s.mux.HandleFunc("GET /app/pdf-demo", s.handleDemoRender)
	s.mux.HandleFunc("GET /app/generate-submission-pdf/{id}", s.handleSubmissionRender)
}

// Handler returns the routed handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", s.cfg.Address())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
