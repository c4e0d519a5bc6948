package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockLLM implements llm.Client. Expectations that need to fill the out
// value use Run with args.Get(2).
type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) GenerateStructured(ctx context.Context, prompt string, out any) error {
	args := m.Called(ctx, prompt, out)
	return args.Error(0)
}

func (m *mockLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
