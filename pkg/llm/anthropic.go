package llm

import (
	"context"
	"encoding/json"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// anthropicClient implements Client using the official anthropic-sdk-go.
type anthropicClient struct {
	client     sdk.Client
	model      string
	maxTokens  int64
	maxRetries int
}

func newAnthropicClient(cfg Config) *anthropicClient {
	return &anthropicClient{
		client: sdk.NewClient(
			option.WithAPIKey(cfg.APIKey),
		),
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		maxRetries: cfg.MaxRetries,
	}
}

func (c *anthropicClient) GenerateStructured(ctx context.Context, prompt string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		text, err := c.complete(ctx, prompt)
		if err != nil {
			lastErr = err
		} else if err := json.Unmarshal([]byte(cleanJSON(text)), out); err != nil {
			lastErr = eris.Wrap(err, "anthropic: unmarshal structured reply")
		} else {
			return nil
		}

		if attempt < c.maxRetries {
			zap.L().Warn("anthropic: structured generation failed, retrying",
				zap.Int("attempt", attempt+1),
				zap.Error(lastErr),
			)
		}
	}
	return lastErr
}

func (c *anthropicClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt)
}

func (c *anthropicClient) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "anthropic: create message")
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", eris.New("anthropic: empty response")
	}
	return text, nil
}
