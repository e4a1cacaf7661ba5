// Package claude wraps the Anthropic Messages API behind the minimal
// completion surface the generation service needs.
package claude

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/griederer/ai-visualization-gallery/internal/config"
	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

// Client sends single-turn completions to the Anthropic API.
// No conversation state, no streaming: one request, one response.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// New creates a Claude client from config. Returns domain.ErrNotConfigured
// when the API key is absent; the key is the one operator-supplied secret
// this service cannot run without.
func New(cfg config.LLMConfig, opts ...option.RequestOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key: %w", domain.ErrNotConfigured)
	}

	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)

	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Complete sends one user prompt and returns the model's text reply.
// The caller is expected to bound ctx with a deadline; a hung upstream call
// otherwise hangs the whole generation cycle.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", domain.NewUpstreamError("anthropic", err)
	}

	if len(msg.Content) == 0 {
		return "", domain.NewUpstreamError("anthropic", fmt.Errorf("empty response"))
	}

	return msg.Content[0].Text, nil
}

// Disabled stands in for a Client when no API key is configured. The read
// side of the API keeps working; generation requests fail fast.
type Disabled struct{}

// Complete always fails with domain.ErrNotConfigured.
func (Disabled) Complete(context.Context, string) (string, error) {
	return "", fmt.Errorf("anthropic api key: %w", domain.ErrNotConfigured)
}
