// Package server provides the HTTP REST API for the talent matcher.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/pipeline"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/types"
)

// ResumeStore is the resume persistence surface the handlers need.
type ResumeStore interface {
	SaveResume(ctx context.Context, record *db.ResumeRecord) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.ResumeRecord, error)
	ListActiveResumes(ctx context.Context) ([]db.ResumeRecord, error)
	UpdateResumeParsed(ctx context.Context, id uuid.UUID, parsed *types.StructuredResume, missingInfo []string) (bool, error)
	ArchiveResume(ctx context.Context, id uuid.UUID) (bool, error)
}

// JobStore is the job persistence surface the handlers need.
type JobStore interface {
	CreateJob(ctx context.Context, record *db.JobRecord) (uuid.UUID, error)
	UpdateJob(ctx context.Context, record *db.JobRecord) (bool, error)
	GetJob(ctx context.Context, id uuid.UUID) (*db.JobRecord, error)
	ListJobs(ctx context.Context) ([]db.JobRecord, error)
}

// Processor runs the ingestion pipeline for uploads and job text.
type Processor interface {
	ProcessResume(ctx context.Context, data []byte, filename string) (*pipeline.ResumeResult, error)
	ProcessJob(ctx context.Context, text pipeline.JobText) (*pipeline.JobResult, error)
}

// Pinger reports backing-store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	resumes    ResumeStore
	jobs       JobStore
	processor  Processor
	ranker     *ranking.Ranker
	pinger     Pinger
	logger     *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port    int
	Resumes ResumeStore
	Jobs    JobStore

	Processor Processor
	Ranker    *ranking.Ranker
	Pinger    Pinger
	Logger    *zap.Logger
}

// New creates a new server instance
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		resumes:   cfg.Resumes,
		jobs:      cfg.Jobs,
		processor: cfg.Processor,
		ranker:    cfg.Ranker,
		pinger:    cfg.Pinger,
		logger:    logger,
	}

	mux := http.NewServeMux()

	// Resume endpoints
	mux.HandleFunc("POST /resumes/upload", s.handleUploadResume)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}/parsed", s.handleUpdateResumeParsed)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleArchiveResume)
	mux.HandleFunc("GET /resumes/{id}/jobs", s.handleJobsForResume)

	// Job endpoints
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	mux.HandleFunc("GET /jobs/{id}/candidates", s.handleCandidatesForJob)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  "database unreachable",
			})
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// parseIDParam reads the {id} path segment as a UUID
func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
