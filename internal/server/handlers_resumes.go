package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/audit"
	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// ResumeResponse is the API view of a stored resume
type ResumeResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	ParsedData  *types.StructuredResume `json:"parsed_data"`
	MissingInfo []string                `json:"missing_info"`
	Status      string                  `json:"status,omitempty"`
}

func resumeResponse(record *db.ResumeRecord) ResumeResponse {
	return ResumeResponse{
		ID:          record.ID,
		Name:        record.Name,
		Email:       record.Email,
		ParsedData:  record.Parsed,
		MissingInfo: record.MissingInfo,
		Status:      record.Status,
	}
}

// handleUploadResume accepts a multipart document upload (field "resume"),
// runs the full pipeline, and persists the result.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing form file \"resume\"")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	result, err := s.processor.ProcessResume(r.Context(), data, header.Filename)
	if err != nil {
		s.handleError(w, err)
		return
	}

	record := &db.ResumeRecord{
		Name:        result.Parsed.PersonalInfo.Name,
		Email:       result.Parsed.PersonalInfo.Email,
		SourceText:  result.SourceText,
		Parsed:      result.Parsed,
		Embedding:   result.Embedding,
		MissingInfo: result.MissingInfo,
	}
	id, err := s.resumes.SaveResume(r.Context(), record)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.logger.Info("resume uploaded",
		zap.String("id", id.String()),
		zap.String("filename", header.Filename))

	record.ID = id
	record.Status = db.ResumeStatusActive
	s.jsonResponse(w, http.StatusCreated, resumeResponse(record))
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := s.resumes.GetResume(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resumeResponse(record))
}

// handleUpdateResumeParsed replaces a resume's parsed fields with a
// hand-corrected version. The body must conform to the parsed-resume
// schema; the audit is re-run against the corrected data.
func (s *Server) handleUpdateResumeParsed(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if !json.Valid(body) {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := schemas.ValidateParsedResume(string(body)); err != nil {
		s.handleError(w, err)
		return
	}

	parsed := types.NewStructuredResume()
	if err := json.Unmarshal(body, parsed); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	missingInfo := audit.AuditResume(parsed)
	found, err := s.resumes.UpdateResumeParsed(r.Context(), id, parsed, missingInfo)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeResponse{
		ID:          id,
		Name:        parsed.PersonalInfo.Name,
		Email:       parsed.PersonalInfo.Email,
		ParsedData:  parsed,
		MissingInfo: missingInfo,
	})
}

func (s *Server) handleArchiveResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	found, err := s.resumes.ArchiveResume(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleJobsForResume ranks all job postings against one resume.
func (s *Server) handleJobsForResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	record, err := s.resumes.GetResume(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	jobRecords, err := s.jobs.ListJobs(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	pool := make([]ranking.Job, 0, len(jobRecords))
	for _, job := range jobRecords {
		parsed := job.Parsed
		if parsed == nil {
			parsed = types.NewStructuredJob()
		}
		pool = append(pool, ranking.Job{
			ID:        job.ID.String(),
			Title:     job.Title,
			Company:   parsed.Company,
			Parsed:    parsed,
			Embedding: job.Embedding,
		})
	}

	parsed := record.Parsed
	if parsed == nil {
		parsed = types.NewStructuredResume()
	}
	matches, err := s.ranker.RankJobsForCandidate(r.Context(), parsed, record.Embedding, pool, limitParam(r))
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_id": id,
		"matches":   matches,
	})
}
