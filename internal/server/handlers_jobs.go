package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/pipeline"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/types"
)

// defaultMatchLimit caps ranking responses when no limit is given.
const defaultMatchLimit = 10

// JobResponse is the API view of a stored job posting
type JobResponse struct {
	ID               uuid.UUID            `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Requirements     string               `json:"requirements,omitempty"`
	Responsibilities string               `json:"responsibilities,omitempty"`
	ParsedData       *types.StructuredJob `json:"parsed_data"`
	MissingInfo      []string             `json:"missing_info"`
}

func jobResponse(record *db.JobRecord) JobResponse {
	return JobResponse{
		ID:               record.ID,
		Title:            record.Title,
		Description:      record.Description,
		Requirements:     record.Requirements,
		Responsibilities: record.Responsibilities,
		ParsedData:       record.Parsed,
		MissingInfo:      record.MissingInfo,
	}
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := s.processor.ProcessJob(r.Context(), pipeline.JobText{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
	})
	if err != nil {
		s.handleError(w, err)
		return
	}

	record := &db.JobRecord{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Parsed:           result.Parsed,
		Embedding:        result.Embedding,
		MissingInfo:      result.MissingInfo,
	}
	id, err := s.jobs.CreateJob(r.Context(), record)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.logger.Info("job created",
		zap.String("id", id.String()),
		zap.String("title", req.Title))

	record.ID = id
	s.jsonResponse(w, http.StatusCreated, jobResponse(record))
}

// handleUpdateJob applies partial updates to a job's text fields. The
// parsed fields and embedding are recomputed only when the text actually
// changed, so an unchanged job never pays for re-embedding and a changed
// one never keeps a stale vector.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := s.jobs.GetJob(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	before := pipeline.JobText{
		Title:            record.Title,
		Description:      record.Description,
		Requirements:     record.Requirements,
		Responsibilities: record.Responsibilities,
	}
	after := before
	if req.Title != nil {
		after.Title = *req.Title
	}
	if req.Description != nil {
		after.Description = *req.Description
	}
	if req.Requirements != nil {
		after.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		after.Responsibilities = *req.Responsibilities
	}

	if !after.Equal(before) {
		result, err := s.processor.ProcessJob(r.Context(), after)
		if err != nil {
			s.handleError(w, err)
			return
		}
		record.Parsed = result.Parsed
		record.Embedding = result.Embedding
		record.MissingInfo = result.MissingInfo
	}
	record.Title = after.Title
	record.Description = after.Description
	record.Requirements = after.Requirements
	record.Responsibilities = after.Responsibilities

	found, err := s.jobs.UpdateJob(r.Context(), record)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, jobResponse(record))
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := s.jobs.GetJob(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, jobResponse(record))
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	records, err := s.jobs.ListJobs(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	responses := make([]JobResponse, 0, len(records))
	for i := range records {
		responses = append(responses, jobResponse(&records[i]))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": responses})
}

// handleCandidatesForJob ranks the active resume pool against one job and
// returns the top matches enriched with candidate identity.
func (s *Server) handleCandidatesForJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := s.jobs.GetJob(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	resumeRecords, err := s.resumes.ListActiveResumes(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	pool := make([]ranking.Candidate, 0, len(resumeRecords))
	for _, resume := range resumeRecords {
		parsed := resume.Parsed
		if parsed == nil {
			parsed = types.NewStructuredResume()
		}
		pool = append(pool, ranking.Candidate{
			ID:        resume.ID.String(),
			Name:      resume.Name,
			Email:     resume.Email,
			Parsed:    parsed,
			Embedding: resume.Embedding,
		})
	}

	parsed := record.Parsed
	if parsed == nil {
		parsed = types.NewStructuredJob()
	}
	matches, err := s.ranker.RankCandidatesForJob(r.Context(), parsed, record.Embedding, pool, limitParam(r))
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":     id,
		"candidates": matches,
	})
}

// limitParam reads the ?limit= query parameter, defaulting to
// defaultMatchLimit when absent or invalid.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultMatchLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultMatchLimit
	}
	return limit
}
