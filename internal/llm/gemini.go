package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	DefaultModel = "gemini-2.0-flash"
	maxAttempts  = 3
)

// Gemini talks to Google's Gemini API. One genai client is shared by all
// requests; it is safe for concurrent use.
type Gemini struct {
	client    *genai.Client
	modelName string
}

var _ Client = (*Gemini)(nil)

// NewGemini creates a client for the given API key and model name.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is empty")
	}
	if strings.TrimSpace(modelName) == "" {
		modelName = DefaultModel
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &Gemini{client: cl, modelName: strings.TrimSpace(modelName)}, nil
}

// Close releases the underlying connection.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	return g.generate(ctx, m, genai.Text(prompt))
}

func (g *Gemini) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	return g.generate(ctx, m, genai.Text(prompt), &genai.Blob{MIMEType: mimeType, Data: image})
}

func (g *Gemini) Chat(ctx context.Context, history []Message, message string, cfg GenerationConfig) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	applyConfig(m, cfg)

	cs := m.StartChat()
	for _, h := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  h.Role,
			Parts: []genai.Part{genai.Text(h.Text)},
		})
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := cs.SendMessage(ctx, genai.Text(message))
		if err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt).Msg("gemini: chat request failed")
			// SendMessage only records history on success, so a retry resends the same turn.
			if !sleep(ctx, attempt) {
				break
			}
			continue
		}
		return firstText(resp)
	}
	return "", fmt.Errorf("gemini: chat failed after retries: %w", lastErr)
}

func (g *Gemini) generate(ctx context.Context, m *genai.GenerativeModel, parts ...genai.Part) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt).Msg("gemini: generate request failed")
			if !sleep(ctx, attempt) {
				break
			}
			continue
		}
		return firstText(resp)
	}
	return "", fmt.Errorf("gemini: generate failed after retries: %w", lastErr)
}

func applyConfig(m *genai.GenerativeModel, cfg GenerationConfig) {
	if cfg.MaxOutputTokens > 0 {
		m.SetMaxOutputTokens(cfg.MaxOutputTokens)
	}
	if cfg.Temperature > 0 {
		m.SetTemperature(cfg.Temperature)
	}
	if cfg.TopP > 0 {
		m.SetTopP(cfg.TopP)
	}
	if cfg.TopK > 0 {
		m.SetTopK(cfg.TopK)
	}
}

// firstText joins the text parts of the first candidate that has any.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}
	return "", ErrEmptyResponse
}

// sleep backs off attempt*300ms and reports false when ctx is done first.
func sleep(ctx context.Context, attempt int) bool {
	if attempt >= maxAttempts {
		return false
	}
	t := time.NewTimer(time.Duration(attempt) * 300 * time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
