package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/pipeline"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for uploading resumes, posting jobs, and ranking matches.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.EmbeddingAPIKey == "" {
		return fmt.Errorf("EMBEDDING_API_KEY environment variable is required")
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	embedder := embedding.NewService(cfg.EmbeddingConfig(), cfg.EmbeddingAPIKey, log)
	processor := pipeline.NewProcessor(embedder, log)
	ranker := ranking.NewRanker(cfg.MatchWeights, cfg.RankConcurrency, log)

	srv := server.New(server.Config{
		Port:      cfg.Port,
		Resumes:   database,
		Jobs:      database,
		Processor: processor,
		Ranker:    ranker,
		Pinger:    database,
		Logger:    log,
	})

	return srv.Start()
}
