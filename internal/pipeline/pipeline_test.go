package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/extraction"
)

type stubEmbedder struct {
	calls int
	err   error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []float32{float32(len(text)), 1}, nil
}

const resumeText = `Jane Doe
jane.doe@example.com
(555) 123-4567

Experience
Senior Engineer at Acme Corp
Jan 2019 - Present
• Built Go services

Education
MIT
Bachelor of Science in Computer Science

Skills
• Go, Python
`

func TestProcessResume(t *testing.T) {
	emb := &stubEmbedder{}
	p := NewProcessor(emb, zap.NewNop())

	result, err := p.ProcessResume(context.Background(), []byte(resumeText), "jane.txt")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.Parsed.PersonalInfo.Name)
	assert.NotEmpty(t, result.Embedding)
	assert.NotEmpty(t, result.SourceText)
	assert.Equal(t, 1, emb.calls)
	// The sample has no LinkedIn, so the audit still reports something.
	assert.NotEmpty(t, result.MissingInfo)
}

func TestProcessResume_UnsupportedFormat(t *testing.T) {
	p := NewProcessor(&stubEmbedder{}, zap.NewNop())

	_, err := p.ProcessResume(context.Background(), []byte("old word doc"), "resume.doc")
	assert.ErrorIs(t, err, extraction.ErrUnsupportedFormat)
}

func TestProcessResume_EmbedderFailureSurfaces(t *testing.T) {
	emb := &stubEmbedder{err: embedding.ErrModelUnavailable}
	p := NewProcessor(emb, zap.NewNop())

	_, err := p.ProcessResume(context.Background(), []byte(resumeText), "jane.txt")
	assert.ErrorIs(t, err, embedding.ErrModelUnavailable)
}

func TestProcessJob(t *testing.T) {
	emb := &stubEmbedder{}
	p := NewProcessor(emb, zap.NewNop())

	result, err := p.ProcessJob(context.Background(), JobText{
		Title:        "Backend Engineer",
		Description:  "Company: Globex\nWe build distributed systems in Go.",
		Requirements: "Requirements\n• 3+ years of Go experience",
	})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", result.Parsed.JobTitle)
	assert.Equal(t, "Globex", result.Parsed.Company)
	assert.Equal(t, "3+ years", result.Parsed.RequiredExperience)
	assert.Contains(t, result.Parsed.RequiredSkills, "Go")
	assert.NotEmpty(t, result.Embedding)
	assert.Equal(t, 1, emb.calls)
}

func TestProcessJob_HTMLDescription(t *testing.T) {
	p := NewProcessor(&stubEmbedder{}, zap.NewNop())

	result, err := p.ProcessJob(context.Background(), JobText{
		Title:       "Frontend Engineer",
		Description: "<html><body><p>We need React expertise.</p><ul><li>Build UI components</li></ul></body></html>",
	})
	require.NoError(t, err)

	assert.NotContains(t, result.SourceText, "<p>")
	assert.Contains(t, result.SourceText, "We need React expertise.")
	assert.Contains(t, result.Parsed.RequiredSkills, "React")
}

func TestJobText_Concat(t *testing.T) {
	text := JobText{Title: "Engineer", Requirements: "Go"}
	assert.Equal(t, "Engineer\n\nGo", text.Concat())
	assert.Empty(t, JobText{}.Concat())
}

func TestJobText_Equal(t *testing.T) {
	a := JobText{Title: "Engineer", Description: "desc"}
	b := a
	assert.True(t, a.Equal(b))

	b.Description = "changed"
	assert.False(t, a.Equal(b))
}
