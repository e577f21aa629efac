// Package ranking orders candidate pools against a job (and job pools
// against a candidate) by match score. Pair scoring is independent, so the
// work is spread over a bounded worker pool; only the final sort imposes
// order.
package ranking

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/types"
)

// DefaultConcurrency bounds the scoring worker pool when no explicit
// limit is configured.
const DefaultConcurrency = 8

// Candidate is one scorable resume: parsed fields, its embedding, and the
// identity used to enrich the ranking row.
type Candidate struct {
	ID        string
	Name      string
	Email     string
	Parsed    *types.StructuredResume
	Embedding []float32
}

// Job is one scorable posting.
type Job struct {
	ID        string
	Title     string
	Company   string
	Parsed    *types.StructuredJob
	Embedding []float32
}

// Ranker scores pools of candidates or jobs with a fixed weighting.
type Ranker struct {
	weights     matching.Weights
	concurrency int
	logger      *zap.Logger
}

// NewRanker creates a ranker. Non-positive concurrency falls back to
// DefaultConcurrency.
func NewRanker(weights matching.Weights, concurrency int, logger *zap.Logger) *Ranker {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		weights:     weights.Normalize(),
		concurrency: concurrency,
		logger:      logger,
	}
}

// RankCandidatesForJob scores every candidate against the job and returns
// the top entries sorted by descending match score. Ties break by
// ascending candidate ID so repeated calls over the same pool return the
// same order. A non-positive limit returns the whole ranked pool. An
// empty pool yields an empty slice.
func (r *Ranker) RankCandidatesForJob(ctx context.Context, job *types.StructuredJob, jobEmb []float32, candidates []Candidate, limit int) ([]types.CandidateMatch, error) {
	if len(candidates) == 0 {
		return []types.CandidateMatch{}, nil
	}

	start := time.Now()
	results := make([]types.CandidateMatch, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			details := matching.Score(candidate.Parsed, job, candidate.Embedding, jobEmb, r.weights)
			results[i] = types.CandidateMatch{
				ResumeID:     candidate.ID,
				Name:         candidate.Name,
				Email:        candidate.Email,
				MatchScore:   details.OverallScore,
				MatchDetails: details,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].MatchScore != results[b].MatchScore {
			return results[a].MatchScore > results[b].MatchScore
		}
		return results[a].ResumeID < results[b].ResumeID
	})

	results = truncate(results, limit)
	r.logger.Debug("ranked candidates for job",
		zap.Int("pool", len(candidates)),
		zap.Int("returned", len(results)),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

// RankJobsForCandidate is the symmetric operation: one resume scored
// against a pool of jobs.
func (r *Ranker) RankJobsForCandidate(ctx context.Context, resume *types.StructuredResume, resumeEmb []float32, jobs []Job, limit int) ([]types.JobMatch, error) {
	if len(jobs) == 0 {
		return []types.JobMatch{}, nil
	}

	start := time.Now()
	results := make([]types.JobMatch, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			details := matching.Score(resume, job.Parsed, resumeEmb, job.Embedding, r.weights)
			results[i] = types.JobMatch{
				JobID:        job.ID,
				JobTitle:     job.Title,
				Company:      job.Company,
				MatchScore:   details.OverallScore,
				MatchDetails: details,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].MatchScore != results[b].MatchScore {
			return results[a].MatchScore > results[b].MatchScore
		}
		return results[a].JobID < results[b].JobID
	})

	results = truncate(results, limit)
	r.logger.Debug("ranked jobs for candidate",
		zap.Int("pool", len(jobs)),
		zap.Int("returned", len(results)),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

func truncate[T any](results []T, limit int) []T {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
