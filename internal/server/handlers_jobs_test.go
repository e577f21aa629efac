package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/types"
)

func TestHandleCreateJob_Success(t *testing.T) {
	s := newTestServer()
	s.processor.jobResult.Parsed.JobTitle = "Backend Engineer"
	s.processor.jobResult.Parsed.RequiredSkills = []string{"Go"}

	body := `{"title": "Backend Engineer", "description": "Build Go services", "requirements": "3+ years of Go"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCreateJob(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, s.processor.jobCalls)

	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Backend Engineer", resp.Title)
	assert.Equal(t, []string{"Go"}, resp.ParsedData.RequiredSkills)
}

func TestHandleCreateJob_ValidationFailure(t *testing.T) {
	s := newTestServer()

	body := `{"description": "no title"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCreateJob(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, s.processor.jobCalls)
}

func TestHandleCreateJob_MalformedJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader("{"))
	w := httptest.NewRecorder()
	s.handleCreateJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedJob(s *testServer) uuid.UUID {
	id := uuid.New()
	parsed := types.NewStructuredJob()
	parsed.JobTitle = "Backend Engineer"
	s.jobStore.jobs[id] = &db.JobRecord{
		ID:          id,
		Title:       "Backend Engineer",
		Description: "Build Go services",
		Parsed:      parsed,
		Embedding:   []float32{0.1, 0.2},
		MissingInfo: []string{},
	}
	return id
}

func TestHandleUpdateJob_TextChangeReEmbeds(t *testing.T) {
	s := newTestServer()
	id := seedJob(s)

	body := `{"description": "Build distributed Go services"}`
	req := httptest.NewRequest(http.MethodPut, "/jobs/"+id.String(), strings.NewReader(body))
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	s.handleUpdateJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, s.processor.jobCalls)

	stored := s.jobStore.jobs[id]
	assert.Equal(t, "Build distributed Go services", stored.Description)
	// Embedding was replaced by the pipeline result.
	assert.Equal(t, []float32{1, 0}, stored.Embedding)
}

func TestHandleUpdateJob_NoTextChangeSkipsReEmbed(t *testing.T) {
	s := newTestServer()
	id := seedJob(s)

	// Same values as stored: nothing to re-embed.
	body := `{"title": "Backend Engineer", "description": "Build Go services"}`
	req := httptest.NewRequest(http.MethodPut, "/jobs/"+id.String(), strings.NewReader(body))
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	s.handleUpdateJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, s.processor.jobCalls)
	assert.Equal(t, []float32{0.1, 0.2}, s.jobStore.jobs[id].Embedding)
}

func TestHandleUpdateJob_NotFound(t *testing.T) {
	s := newTestServer()
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/jobs/"+id.String(), strings.NewReader(`{"title": "X"}`))
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	s.handleUpdateJob(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetJob(t *testing.T) {
	s := newTestServer()
	id := seedJob(s)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	s.handleGetJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Backend Engineer", resp.Title)
}

func TestHandleGetJob_NotFound(t *testing.T) {
	s := newTestServer()
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	s.handleGetJob(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListJobs(t *testing.T) {
	s := newTestServer()
	seedJob(s)
	seedJob(s)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()
	s.handleListJobs(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Jobs []JobResponse `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Jobs, 2)
}

func seedCandidate(s *testServer, name string, skills ...string) uuid.UUID {
	id := uuid.New()
	parsed := types.NewStructuredResume()
	for _, skill := range skills {
		parsed.Skills = append(parsed.Skills, types.Skill{Name: skill, Level: types.SkillLevelUnspecified})
	}
	s.resumeStore.resumes[id] = &db.ResumeRecord{
		ID:     id,
		Name:   name,
		Parsed: parsed,
		Status: db.ResumeStatusActive,
	}
	return id
}

func TestHandleCandidatesForJob(t *testing.T) {
	s := newTestServer()

	jobID := uuid.New()
	parsed := types.NewStructuredJob()
	parsed.RequiredSkills = []string{"Go", "Python"}
	s.jobStore.jobs[jobID] = &db.JobRecord{ID: jobID, Title: "Backend Engineer", Parsed: parsed}

	seedCandidate(s, "Strong Match", "Go", "Python")
	seedCandidate(s, "Weak Match", "Go")
	archived := seedCandidate(s, "Archived", "Go", "Python")
	s.resumeStore.resumes[archived].Status = db.ResumeStatusArchived

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID.String()+"/candidates", nil)
	req.SetPathValue("id", jobID.String())
	w := httptest.NewRecorder()
	s.handleCandidatesForJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		JobID      string                 `json:"job_id"`
		Candidates []types.CandidateMatch `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 2, "archived resumes are excluded")
	assert.Equal(t, "Strong Match", resp.Candidates[0].Name)
	assert.Greater(t, resp.Candidates[0].MatchScore, resp.Candidates[1].MatchScore)
}

func TestHandleCandidatesForJob_LimitParam(t *testing.T) {
	s := newTestServer()

	jobID := uuid.New()
	parsed := types.NewStructuredJob()
	parsed.RequiredSkills = []string{"Go"}
	s.jobStore.jobs[jobID] = &db.JobRecord{ID: jobID, Parsed: parsed}

	for i := 0; i < 15; i++ {
		seedCandidate(s, "Candidate", "Go")
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID.String()+"/candidates", nil)
	req.SetPathValue("id", jobID.String())
	w := httptest.NewRecorder()
	s.handleCandidatesForJob(w, req)

	var resp struct {
		Candidates []types.CandidateMatch `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Candidates, defaultMatchLimit, "limit defaults to 10")

	req = httptest.NewRequest(http.MethodGet, "/jobs/"+jobID.String()+"/candidates?limit=3", nil)
	req.SetPathValue("id", jobID.String())
	w = httptest.NewRecorder()
	s.handleCandidatesForJob(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Candidates, 3)
}

func TestHandleCandidatesForJob_EmptyPool(t *testing.T) {
	s := newTestServer()
	id := seedJob(s)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String()+"/candidates", nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()
	s.handleCandidatesForJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Candidates []types.CandidateMatch `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Candidates)
}
