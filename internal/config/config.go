// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/talent-matcher/internal/embedding"
	"github.com/jonathan/talent-matcher/internal/matching"
)

// Config represents the application configuration loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Embedding backend
	EmbeddingProvider   string `json:"embedding_provider,omitempty"`   // "openai" or "gemini"
	EmbeddingAPIKey     string `json:"embedding_api_key,omitempty"`    // falls back to EMBEDDING_API_KEY
	EmbeddingBaseURL    string `json:"embedding_base_url,omitempty"`   // for OpenAI-compatible endpoints
	EmbeddingModel      string `json:"embedding_model,omitempty"`      //
	EmbeddingDimensions int    `json:"embedding_dimensions,omitempty"` //
	EmbedTimeoutSeconds int    `json:"embed_timeout_seconds,omitempty"`

	// Match weighting; zero values fall back to the standard weights
	MatchWeights matching.Weights `json:"match_weights,omitempty"`

	RankConcurrency int  `json:"rank_concurrency,omitempty"`
	Verbose         bool `json:"verbose,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:                8080,
		EmbeddingProvider:   embedding.ProviderOpenAI,
		EmbeddingModel:      "text-embedding-3-small",
		EmbeddingDimensions: 1536,
		EmbedTimeoutSeconds: 30,
		MatchWeights:        matching.DefaultWeights(),
		RankConcurrency:     8,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. Environment variables fill the API key and database URL
// when the file omits them.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if result.EmbeddingProvider == "" {
		result.EmbeddingProvider = defaults.EmbeddingProvider
	}
	if result.EmbeddingAPIKey == "" {
		result.EmbeddingAPIKey = os.Getenv("EMBEDDING_API_KEY")
	}
	if result.EmbeddingBaseURL == "" {
		result.EmbeddingBaseURL = defaults.EmbeddingBaseURL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.EmbeddingDimensions == 0 {
		result.EmbeddingDimensions = defaults.EmbeddingDimensions
	}
	if result.EmbedTimeoutSeconds == 0 {
		result.EmbedTimeoutSeconds = defaults.EmbedTimeoutSeconds
	}
	if result.MatchWeights == (matching.Weights{}) {
		result.MatchWeights = defaults.MatchWeights
	}
	if result.RankConcurrency == 0 {
		result.RankConcurrency = defaults.RankConcurrency
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.EmbeddingProvider != embedding.ProviderOpenAI && c.EmbeddingProvider != embedding.ProviderGemini {
		return fmt.Errorf("config error: 'embedding_provider' must be %q or %q",
			embedding.ProviderOpenAI, embedding.ProviderGemini)
	}
	if c.EmbeddingDimensions <= 0 {
		return fmt.Errorf("config error: 'embedding_dimensions' must be positive")
	}
	if c.EmbedTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'embed_timeout_seconds' must be non-negative")
	}
	if c.RankConcurrency <= 0 {
		return fmt.Errorf("config error: 'rank_concurrency' must be positive")
	}
	for name, weight := range map[string]float64{
		"semantic":   c.MatchWeights.Semantic,
		"skills":     c.MatchWeights.Skills,
		"experience": c.MatchWeights.Experience,
		"education":  c.MatchWeights.Education,
	} {
		if weight < 0 {
			return fmt.Errorf("config error: match weight %q must be non-negative", name)
		}
	}
	return nil
}

// EmbeddingConfig converts the flat config into the embedding service's
// settings.
func (c *Config) EmbeddingConfig() *embedding.Config {
	return &embedding.Config{
		Provider:   c.EmbeddingProvider,
		Model:      c.EmbeddingModel,
		Dimensions: c.EmbeddingDimensions,
		BaseURL:    c.EmbeddingBaseURL,
		Timeout:    time.Duration(c.EmbedTimeoutSeconds) * time.Second,
	}
}
