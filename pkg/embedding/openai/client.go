// Package openai is the OpenAI-compatible embedding provider.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/talentmatch/pkg/embedding"
)

// DefaultModel is text-embedding-3-small.
const DefaultModel = string(goopenai.SmallEmbedding3)

// Client calls the /embeddings endpoint of OpenAI or any compatible gateway.
type Client struct {
	api   *goopenai.Client
	model goopenai.EmbeddingModel
	dims  int
}

// New builds a client. Empty baseURL means api.openai.com, empty model means DefaultModel,
// dims <= 0 leaves the model's native size.
func New(apiKey, baseURL, model string, dims int) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai: api key is required")
	}
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		api:   goopenai.NewClientWithConfig(cfg),
		model: goopenai.EmbeddingModel(model),
		dims:  dims,
	}, nil
}

func (c *Client) Model() string { return string(c.model) }

func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, embedding.ErrEmptyText
	}
	req := goopenai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	}
	if c.dims > 0 {
		req.Dimensions = c.dims
	}
	resp, err := c.api.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, errors.New("openai embeddings: empty response")
	}
	return resp.Data[0].Embedding, nil
}
