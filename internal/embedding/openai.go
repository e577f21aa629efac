package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// openAIEmbedder calls an OpenAI-compatible embeddings API.
type openAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
	logger     *zap.Logger
}

func newOpenAIEmbedder(cfg *Config, apiKey string, logger *zap.Logger) *openAIEmbedder {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openAIEmbedder{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      openai.EmbeddingModel(cfg.Model),
		dimensions: cfg.Dimensions,
		logger:     logger,
	}
}

func (e *openAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (e *openAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	req := openai.EmbeddingRequest{
		Input:          texts,
		Model:          e.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	}
	if e.dimensions > 0 {
		req.Dimensions = e.dimensions
	}

	resp, err := e.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, wrapOpenAIError(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, &EmbedError{
			Provider: ProviderOpenAI,
			Cause:    fmt.Errorf("got %d embeddings for %d inputs: %w", len(resp.Data), len(texts), ErrModelUnavailable),
		}
	}

	vectors := make([][]float32, len(texts))
	for _, item := range resp.Data {
		vectors[item.Index] = item.Embedding
	}
	return vectors, nil
}

func (e *openAIEmbedder) Dimensions() int {
	return e.dimensions
}

// wrapOpenAIError folds transport failures into ErrModelUnavailable while
// keeping the API's status code and message visible.
func wrapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &EmbedError{
			Provider: ProviderOpenAI,
			Cause:    fmt.Errorf("api error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, ErrModelUnavailable),
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &EmbedError{
			Provider: ProviderOpenAI,
			Cause:    fmt.Errorf("request error %d: %w", reqErr.HTTPStatusCode, ErrModelUnavailable),
		}
	}

	return &EmbedError{
		Provider: ProviderOpenAI,
		Cause:    fmt.Errorf("%v: %w", err, ErrModelUnavailable),
	}
}
