// Package pipeline wires extraction, parsing, auditing, and embedding into
// the end-to-end flows the HTTP layer and CLI consume.
package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/audit"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/ingestion"
	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Embedder is the slice of the embedding service the pipeline needs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ResumeResult is everything the upload flow persists for one resume.
type ResumeResult struct {
	Parsed      *types.StructuredResume
	Embedding   []float32
	MissingInfo []string
	SourceText  string
}

// JobResult is everything the job create/update flow persists.
type JobResult struct {
	Parsed      *types.StructuredJob
	Embedding   []float32
	MissingInfo []string
	SourceText  string
}

// JobText carries the free-text fields of a job posting. The concatenation
// of all four is what gets parsed and embedded, so a change to any of them
// invalidates the stored embedding.
type JobText struct {
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
}

// Concat joins the job's text fields in a fixed order.
func (j JobText) Concat() string {
	parts := []string{}
	for _, part := range []string{j.Title, j.Description, j.Requirements, j.Responsibilities} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, "\n\n")
}

// Equal reports whether two job texts would produce the same embedding.
func (j JobText) Equal(other JobText) bool {
	return j == other
}

// Processor runs the ingestion flows.
type Processor struct {
	embedder Embedder
	logger   *zap.Logger
}

func NewProcessor(embedder Embedder, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{embedder: embedder, logger: logger}
}

// ProcessResume runs an uploaded document through the full resume flow:
// text extraction, cleanup, field extraction, audit, and embedding of the
// cleaned source text.
func (p *Processor) ProcessResume(ctx context.Context, data []byte, filename string) (*ResumeResult, error) {
	start := time.Now()

	raw, err := extraction.ExtractText(data, filename)
	if err != nil {
		return nil, err
	}

	text := ingestion.CleanText(raw)
	parsed := parsing.ExtractResumeFields(text)
	missing := audit.AuditResume(parsed)

	vector, err := p.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed resume text: %w", err)
	}

	p.logger.Info("processed resume",
		zap.String("filename", filename),
		zap.Int("text_length", len(text)),
		zap.Int("missing_info", len(missing)),
		zap.Duration("elapsed", time.Since(start)))

	return &ResumeResult{
		Parsed:      parsed,
		Embedding:   vector,
		MissingInfo: missing,
		SourceText:  text,
	}, nil
}

var htmlTagRe = regexp.MustCompile(`(?i)</?(?:p|div|ul|ol|li|br|span|html|body|h[1-6])\b`)

// ProcessJob parses and embeds a job posting's concatenated text fields.
// Descriptions pasted as HTML are reduced to visible text first.
func (p *Processor) ProcessJob(ctx context.Context, text JobText) (*JobResult, error) {
	start := time.Now()

	source := text.Concat()
	if htmlTagRe.MatchString(source) {
		plain, err := ingestion.ExtractHTMLText(source)
		if err == nil && plain != "" {
			source = plain
		}
	}
	source = ingestion.CleanText(source)

	parsed := parsing.ExtractJobFields(source)
	if strings.TrimSpace(text.Title) != "" {
		parsed.JobTitle = strings.TrimSpace(text.Title)
	}
	missing := audit.AuditJob(parsed)

	vector, err := p.embedder.Embed(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("embed job text: %w", err)
	}

	p.logger.Info("processed job",
		zap.String("title", parsed.JobTitle),
		zap.Int("text_length", len(source)),
		zap.Duration("elapsed", time.Since(start)))

	return &JobResult{
		Parsed:      parsed,
		Embedding:   vector,
		MissingInfo: missing,
		SourceText:  source,
	}, nil
}
