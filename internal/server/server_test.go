package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/pipeline"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/types"
)

// mockResumeStore is an in-memory ResumeStore
type mockResumeStore struct {
	resumes map[uuid.UUID]*db.ResumeRecord
	err     error
}

func newMockResumeStore() *mockResumeStore {
	return &mockResumeStore{resumes: make(map[uuid.UUID]*db.ResumeRecord)}
}

func (m *mockResumeStore) SaveResume(_ context.Context, record *db.ResumeRecord) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	id := uuid.New()
	stored := *record
	stored.ID = id
	stored.Status = db.ResumeStatusActive
	m.resumes[id] = &stored
	return id, nil
}

func (m *mockResumeStore) GetResume(_ context.Context, id uuid.UUID) (*db.ResumeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resumes[id], nil
}

func (m *mockResumeStore) ListActiveResumes(context.Context) ([]db.ResumeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var records []db.ResumeRecord
	for _, record := range m.resumes {
		if record.Status == db.ResumeStatusActive {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (m *mockResumeStore) UpdateResumeParsed(_ context.Context, id uuid.UUID, parsed *types.StructuredResume, missingInfo []string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	record, ok := m.resumes[id]
	if !ok {
		return false, nil
	}
	record.Parsed = parsed
	record.MissingInfo = missingInfo
	return true, nil
}

func (m *mockResumeStore) ArchiveResume(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	record, ok := m.resumes[id]
	if !ok {
		return false, nil
	}
	record.Status = db.ResumeStatusArchived
	return true, nil
}

// mockJobStore is an in-memory JobStore
type mockJobStore struct {
	jobs map[uuid.UUID]*db.JobRecord
	err  error
}

func newMockJobStore() *mockJobStore {
	return &mockJobStore{jobs: make(map[uuid.UUID]*db.JobRecord)}
}

func (m *mockJobStore) CreateJob(_ context.Context, record *db.JobRecord) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	id := uuid.New()
	stored := *record
	stored.ID = id
	m.jobs[id] = &stored
	return id, nil
}

func (m *mockJobStore) UpdateJob(_ context.Context, record *db.JobRecord) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.jobs[record.ID]; !ok {
		return false, nil
	}
	stored := *record
	m.jobs[record.ID] = &stored
	return true, nil
}

func (m *mockJobStore) GetJob(_ context.Context, id uuid.UUID) (*db.JobRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.jobs[id], nil
}

func (m *mockJobStore) ListJobs(context.Context) ([]db.JobRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var records []db.JobRecord
	for _, record := range m.jobs {
		records = append(records, *record)
	}
	return records, nil
}

// mockProcessor returns canned pipeline results
type mockProcessor struct {
	resumeResult *pipeline.ResumeResult
	jobResult    *pipeline.JobResult
	err          error
	resumeCalls  int
	jobCalls     int
}

func (m *mockProcessor) ProcessResume(_ context.Context, _ []byte, _ string) (*pipeline.ResumeResult, error) {
	m.resumeCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resumeResult, nil
}

func (m *mockProcessor) ProcessJob(_ context.Context, _ pipeline.JobText) (*pipeline.JobResult, error) {
	m.jobCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.jobResult, nil
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

type testServer struct {
	*Server
	resumeStore *mockResumeStore
	jobStore    *mockJobStore
	processor   *mockProcessor
	pinger      *mockPinger
}

func newTestServer() *testServer {
	resumeStore := newMockResumeStore()
	jobStore := newMockJobStore()
	processor := &mockProcessor{
		resumeResult: &pipeline.ResumeResult{
			Parsed:      types.NewStructuredResume(),
			Embedding:   []float32{1, 0},
			MissingInfo: []string{},
			SourceText:  "source",
		},
		jobResult: &pipeline.JobResult{
			Parsed:      types.NewStructuredJob(),
			Embedding:   []float32{1, 0},
			MissingInfo: []string{},
			SourceText:  "source",
		},
	}
	pinger := &mockPinger{}

	s := New(Config{
		Port:      0,
		Resumes:   resumeStore,
		Jobs:      jobStore,
		Processor: processor,
		Ranker:    ranking.NewRanker(matching.DefaultWeights(), 4, zap.NewNop()),
		Pinger:    pinger,
		Logger:    zap.NewNop(),
	})

	return &testServer{
		Server:      s,
		resumeStore: resumeStore,
		jobStore:    jobStore,
		processor:   processor,
		pinger:      pinger,
	}
}

func TestHandleHealth_OK(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestHandleHealth_DatabaseDown(t *testing.T) {
	s := newTestServer()
	s.pinger.err = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}
