package llm

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// Client adapts a gollem LLM client to the text generation and
// embedding interfaces of the pipeline. Any provider failure is
// reported as ErrGenerationUnavailable so callers can fall back
// without inspecting transport details.
type Client struct {
	llmClient gollem.LLMClient
	timeout   time.Duration
}

var (
	_ interfaces.TextGenerator = &Client{}
	_ interfaces.Embedder      = &Client{}
)

// Option is a functional option for Client configuration
type Option func(*Client)

// WithTimeout bounds a single generation or embedding call
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a new LLM service with the provided gollem client
func New(llmClient gollem.LLMClient, opts ...Option) (*Client, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &Client{
		llmClient: llmClient,
		timeout:   60 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Complete generates free text from a system prompt and user prompt
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(types.ErrGenerationUnavailable, "failed to create LLM session", goerr.V("cause", err.Error()))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		return "", goerr.Wrap(types.ErrGenerationUnavailable, "failed to generate content", goerr.V("cause", err.Error()))
	}

	if len(resp.Texts) == 0 || resp.Texts[0] == "" {
		return "", goerr.Wrap(types.ErrGenerationUnavailable, "empty response from LLM")
	}

	return resp.Texts[0], nil
}

// Embed generates an embedding vector for the given text
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	embeddings, err := c.llmClient.GenerateEmbedding(ctx, model.EmbeddingDimension, []string{text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate embedding")
	}

	if len(embeddings) == 0 {
		return nil, goerr.New("no embedding returned")
	}

	// Convert float64 to float32
	result := make([]float32, len(embeddings[0]))
	for i, v := range embeddings[0] {
		result[i] = float32(v)
	}

	return result, nil
}
