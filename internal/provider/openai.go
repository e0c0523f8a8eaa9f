// Package provider talks to the model backend. Ollama exposes an
// OpenAI-compatible API under /v1, so the client is go-openai pointed at the
// local host rather than a bespoke Ollama binding.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"notecage/internal/telemetry"
	"notecage/memory"
)

// DefaultModel matches the model the environment was tuned against.
const DefaultModel = "qwen3:14b"

// Client is a blocking chat client for one configured model.
type Client struct {
	api   *openai.Client
	model string
}

// New returns a client for the Ollama host (e.g. "http://localhost:11434").
// The API key is required by the wire protocol but ignored by Ollama.
func New(host, apiKey, model string) *Client {
	return NewWithHTTPClient(host, apiKey, model, nil)
}

// NewWithHTTPClient is New with an injectable HTTP client, used by tests to
// substitute a fake transport.
func NewWithHTTPClient(host, apiKey, model string, hc *http.Client) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(host, "/") + "/v1"
	if hc != nil {
		cfg.HTTPClient = hc
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

func (c *Client) Model() string { return c.model }

// Generate sends the full conversation snapshot and returns the next raw
// model turn. Errors are returned for the caller to render into the
// conversation; nothing is retried here.
func (c *Client) Generate(ctx context.Context, history []memory.Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	turnID, _ := telemetry.TurnIDFromContext(ctx)
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})

	fields := map[string]any{
		"turn_id":     turnID,
		"model":       c.model,
		"duration_ms": time.Since(start).Milliseconds(),
		"turns_sent":  len(msgs),
	}
	if err != nil {
		fields["error"] = "generation failed"
		telemetry.Emit("llm_generate", fields)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		fields["error"] = "empty choices"
		telemetry.Emit("llm_generate", fields)
		return "", fmt.Errorf("chat completion: response contained no choices")
	}
	fields["error"] = nil
	fields["output_size"] = len(resp.Choices[0].Message.Content)
	telemetry.Emit("llm_generate", fields)

	return resp.Choices[0].Message.Content, nil
}

// AvailableModels lists the models the backend has installed. Used only as a
// startup diagnostic; a failure here means the backend is unreachable.
func (c *Client) AvailableModels(ctx context.Context) ([]string, error) {
	list, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	return names, nil
}
