package llm

import (
	"context"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstText(t *testing.T) {
	text := func(parts ...genai.Part) *genai.Candidate {
		return &genai.Candidate{Content: &genai.Content{Parts: parts}}
	}

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{name: "nil response", resp: nil, wantErr: true},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: true},
		{
			name:    "nil candidate and nil content",
			resp:    &genai.GenerateContentResponse{Candidates: []*genai.Candidate{nil, {}}},
			wantErr: true,
		},
		{
			name: "only non-text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				text(genai.Blob{MIMEType: "image/png", Data: []byte("x")}),
			}},
			wantErr: true,
		},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				text(genai.Text("Eat more "), genai.Blob{MIMEType: "image/png"}, genai.Text("vegetables.")),
			}},
			want: "Eat more vegetables.",
		},
		{
			name: "skips empty candidates",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				text(),
				text(genai.Text("second")),
			}},
			want: "second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := firstText(tt.resp)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.False(t, sleep(ctx, 1))
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	assert.False(t, sleep(context.Background(), maxAttempts))
	assert.True(t, sleep(context.Background(), 1))
}

func TestApplyConfig(t *testing.T) {
	m := &genai.GenerativeModel{}
	applyConfig(m, GenerationConfig{MaxOutputTokens: 100, Temperature: 0.7, TopP: 0.8, TopK: 40})

	require.NotNil(t, m.MaxOutputTokens)
	assert.Equal(t, int32(100), *m.MaxOutputTokens)
	require.NotNil(t, m.Temperature)
	assert.Equal(t, float32(0.7), *m.Temperature)
	require.NotNil(t, m.TopP)
	assert.Equal(t, float32(0.8), *m.TopP)
	require.NotNil(t, m.TopK)
	assert.Equal(t, int32(40), *m.TopK)

	unset := &genai.GenerativeModel{}
	applyConfig(unset, GenerationConfig{})
	assert.Nil(t, unset.MaxOutputTokens)
	assert.Nil(t, unset.Temperature)
	assert.Nil(t, unset.TopP)
	assert.Nil(t, unset.TopK)
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "  ", "")
	assert.Error(t, err)
}
