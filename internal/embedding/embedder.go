package embedding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Embedder converts text into a dense vector representation.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Dimensions reports the width of vectors this embedder produces.
	Dimensions() int
}

// Provider names accepted by the service configuration.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds embedding service settings.
type Config struct {
	Provider   string        `json:"provider"`
	Model      string        `json:"model"`
	Dimensions int           `json:"dimensions"`
	BaseURL    string        `json:"base_url,omitempty"`
	Timeout    time.Duration `json:"timeout"`
}

// DefaultConfig returns the embedding defaults used when no configuration
// file overrides them.
func DefaultConfig() *Config {
	return &Config{
		Provider:   ProviderOpenAI,
		Model:      "text-embedding-3-small",
		Dimensions: 1536,
		Timeout:    30 * time.Second,
	}
}

// Service provides embeddings through a lazily constructed backend. The
// backend is expensive to set up, so construction is deferred until the
// first Embed call and shared by all callers. Concurrent first callers are
// collapsed into a single construction attempt; if that attempt fails the
// error is returned to all of them and the next call retries from scratch.
type Service struct {
	cfg     *Config
	apiKey  string
	logger  *zap.Logger
	factory func(ctx context.Context) (Embedder, error)

	group singleflight.Group

	mu      sync.RWMutex
	backend Embedder
}

// NewService creates an embedding service for the configured provider. No
// network activity happens until the first embedding request.
func NewService(cfg *Config, apiKey string, logger *zap.Logger) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{cfg: cfg, apiKey: apiKey, logger: logger}
	s.factory = s.buildBackend
	return s
}

func (s *Service) buildBackend(ctx context.Context) (Embedder, error) {
	switch s.cfg.Provider {
	case ProviderOpenAI:
		return newOpenAIEmbedder(s.cfg, s.apiKey, s.logger), nil
	case ProviderGemini:
		return newGeminiEmbedder(ctx, s.cfg, s.apiKey, s.logger)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q: %w", s.cfg.Provider, ErrModelUnavailable)
	}
}

// loaded returns the backend without taking the construction path.
func (s *Service) loaded() Embedder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend
}

func (s *Service) ensureBackend(ctx context.Context) (Embedder, error) {
	if b := s.loaded(); b != nil {
		return b, nil
	}

	v, err, _ := s.group.Do("backend", func() (interface{}, error) {
		if b := s.loaded(); b != nil {
			return b, nil
		}

		start := time.Now()
		b, err := s.factory(ctx)
		if err != nil {
			s.logger.Warn("embedding backend load failed",
				zap.String("provider", s.cfg.Provider),
				zap.Error(err))
			return nil, err
		}
		s.logger.Info("embedding backend loaded",
			zap.String("provider", s.cfg.Provider),
			zap.String("model", s.cfg.Model),
			zap.Duration("elapsed", time.Since(start)))

		s.mu.Lock()
		s.backend = b
		s.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Embedder), nil
}

// Embed returns the vector for a single text, loading the backend on first
// use.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	b, err := s.ensureBackend(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.callContext(ctx)
	defer cancel()
	return b.Embed(ctx, text)
}

// EmbedBatch returns one vector per input, in input order. An empty input
// yields an empty result without touching the backend loader's error path.
func (s *Service) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	b, err := s.ensureBackend(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.callContext(ctx)
	defer cancel()
	return b.EmbedBatch(ctx, texts)
}

// Dimensions reports the configured vector width. It does not force a
// backend load.
func (s *Service) Dimensions() int {
	if b := s.loaded(); b != nil {
		return b.Dimensions()
	}
	return s.cfg.Dimensions
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}
