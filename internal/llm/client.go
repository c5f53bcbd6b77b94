// Package llm wraps the generative model behind a small interface so the
// services that build prompts can be tested without network access.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model answers without any text part.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Role of a chat turn.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one prior turn of a chat.
type Message struct {
	Role string
	Text string
}

// GenerationConfig tunes a single request. Zero values leave the model default.
type GenerationConfig struct {
	MaxOutputTokens int32
	Temperature     float32
	TopP            float32
	TopK            int32
}

// Client is the generative model as seen by the services.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, history []Message, message string, cfg GenerationConfig) (string, error)
	GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
