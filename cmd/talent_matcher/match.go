package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/ingestion"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/parsing"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against one job posting",
	Long:  "Parse a resume file and a job posting file, embed both, and print the full match breakdown (semantic, skills, experience, education).",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchNoEmbed    bool
)

func init() {
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to resume file (required)")
	matchCmd.Flags().StringVar(&matchJobFile, "job", "", "Path to job posting file (required)")
	matchCmd.Flags().BoolVar(&matchNoEmbed, "no-embed", false, "Skip the embedding backend; semantic weight is redistributed")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resumeData, err := os.ReadFile(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText, err := extraction.ExtractText(resumeData, matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	resumeText = ingestion.CleanText(resumeText)
	resume := parsing.ExtractResumeFields(resumeText)

	jobData, err := os.ReadFile(matchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	jobText := string(jobData)
	ext := strings.ToLower(filepath.Ext(matchJobFile))
	if ext == ".html" || ext == ".htm" {
		jobText, err = ingestion.ExtractHTMLText(jobText)
		if err != nil {
			return fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}
	jobText = ingestion.CleanText(jobText)
	job := parsing.ExtractJobFields(jobText)

	weights := cfg.MatchWeights
	var resumeEmb, jobEmb []float32

	if matchNoEmbed {
		weights.Semantic = 0
	} else {
		if cfg.EmbeddingAPIKey == "" {
			return fmt.Errorf("EMBEDDING_API_KEY is required (or pass --no-embed)")
		}
		log, err := logger.New(cfg.Verbose)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		embedder := embedding.NewService(cfg.EmbeddingConfig(), cfg.EmbeddingAPIKey, log)
		ctx := context.Background()
		vectors, err := embedder.EmbedBatch(ctx, []string{resumeText, jobText})
		if err != nil {
			return fmt.Errorf("failed to embed texts: %w", err)
		}
		resumeEmb, jobEmb = vectors[0], vectors[1]
	}

	result := matching.Score(resume, job, resumeEmb, jobEmb, weights)

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResume(resume)
		printer.PrintJob(job)
		printer.PrintMatch(&result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
