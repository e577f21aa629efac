package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// geminiEmbedder calls the Gemini embedding API.
type geminiEmbedder struct {
	client     *genai.Client
	model      string
	dimensions int
	logger     *zap.Logger
}

func newGeminiEmbedder(ctx context.Context, cfg *Config, apiKey string, logger *zap.Logger) (*geminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required: %w", ErrModelUnavailable)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &EmbedError{Provider: ProviderGemini, Cause: fmt.Errorf("%v: %w", err, ErrModelUnavailable)}
	}

	return &geminiEmbedder{
		client:     client,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		logger:     logger,
	}, nil
}

func (e *geminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	em := e.client.EmbeddingModel(e.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &EmbedError{Provider: ProviderGemini, Cause: fmt.Errorf("%v: %w", err, ErrModelUnavailable)}
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &EmbedError{Provider: ProviderGemini, Cause: fmt.Errorf("empty embedding response: %w", ErrModelUnavailable)}
	}
	return resp.Embedding.Values, nil
}

func (e *geminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	em := e.client.EmbeddingModel(e.model)

	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, &EmbedError{Provider: ProviderGemini, Cause: fmt.Errorf("%v: %w", err, ErrModelUnavailable)}
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, &EmbedError{
			Provider: ProviderGemini,
			Cause:    fmt.Errorf("got %d embeddings for %d inputs: %w", len(resp.Embeddings), len(texts), ErrModelUnavailable),
		}
	}

	vectors := make([][]float32, len(texts))
	for i, item := range resp.Embeddings {
		vectors[i] = item.Values
	}
	return vectors, nil
}

func (e *geminiEmbedder) Dimensions() int {
	return e.dimensions
}

// Close releases the underlying API client.
func (e *geminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
