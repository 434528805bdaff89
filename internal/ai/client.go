// Package ai wraps the chat-completion provider behind a small
// interface so handlers can be tested without network access.
package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"contentapi/internal/config"
)

// ErrNoAPIKey is returned when the provider is not configured.
var ErrNoAPIKey = errors.New("AI API key not configured")

// Chatter answers a single prompt with a completion.
type Chatter interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// chatAPI is the slice of the go-openai client the wrapper needs.
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client calls an OpenAI-compatible chat-completion endpoint.
type Client struct {
	api   chatAPI
	model string
}

// NewClient builds a Client from configuration. BaseURL may point at any
// OpenAI-compatible host; an empty key is rejected so the caller can
// disable the AI surface explicitly instead of failing per request.
func NewClient(cfg config.AIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:   openai.NewClientWithConfig(oc),
		model: model,
	}, nil
}

// Chat sends the prompt as a single user message and returns the first
// completion choice.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
