// Package llm abstracts the structured-extraction oracle behind a small
// capability interface. Providers are interchangeable backends selected by
// configuration; callers never see which one is in use.
package llm

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
)

// Client is the oracle capability consumed by the pipeline. Both methods are
// fallible, latency-bearing black boxes; no two calls are guaranteed
// consistent.
type Client interface {
	// GenerateStructured prompts the model and unmarshals its JSON reply into
	// out. Provider/validation failures are retried up to the configured
	// budget before the call fails.
	GenerateStructured(ctx context.Context, prompt string, out any) error
	// GenerateText prompts the model and returns the raw text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a provider backend.
type Config struct {
	Provider   string // "anthropic" or "openai"
	APIKey     string
	Model      string
	BaseURL    string // openai only; defaults to the public endpoint
	MaxTokens  int64
	MaxRetries int
}

const (
	defaultMaxTokens  = 4000
	defaultMaxRetries = 2
)

// New creates the provider named by cfg.Provider.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, eris.Errorf("llm: %s api key not set", cfg.Provider)
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}

	switch cfg.Provider {
	case "anthropic":
		return newAnthropicClient(cfg), nil
	case "openai":
		return newOpenAIClient(cfg), nil
	default:
		return nil, eris.Errorf("llm: unknown provider %q (must be anthropic or openai)", cfg.Provider)
	}
}

// cleanJSON strips markdown code fences and surrounding prose so the reply can
// be unmarshaled. Models wrap JSON in ```json fences often enough that this is
// always applied.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
