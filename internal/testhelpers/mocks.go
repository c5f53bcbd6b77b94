package testhelpers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/nutri-app/nutri/backend/internal/llm"
)

// MockLLMClient is a mock implementation of llm.Client
type MockLLMClient struct {
	mock.Mock
}

var _ llm.Client = (*MockLLMClient)(nil)

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLMClient) Chat(ctx context.Context, history []llm.Message, message string, cfg llm.GenerationConfig) (string, error) {
	args := m.Called(ctx, history, message, cfg)
	return args.String(0), args.Error(1)
}

func (m *MockLLMClient) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	args := m.Called(ctx, prompt, image, mimeType)
	return args.String(0), args.Error(1)
}

// MockObjectStore records uploads instead of sending them to S3.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
