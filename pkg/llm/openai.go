package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// openAIClient implements Client against any OpenAI-compatible chat
// completions endpoint.
type openAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int64
	maxRetries int
	http       *http.Client
}

func newOpenAIClient(cfg Config) *openAIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	return &openAIClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		maxRetries: cfg.MaxRetries,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int64         `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) GenerateStructured(ctx context.Context, prompt string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		text, err := c.complete(ctx, prompt)
		if err != nil {
			lastErr = err
		} else if err := json.Unmarshal([]byte(cleanJSON(text)), out); err != nil {
			lastErr = eris.Wrap(err, "openai: unmarshal structured reply")
		} else {
			return nil
		}

		if attempt < c.maxRetries {
			zap.L().Warn("openai: structured generation failed, retrying",
				zap.Int("attempt", attempt+1),
				zap.Error(lastErr),
			)
		}
	}
	return lastErr
}

func (c *openAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt)
}

func (c *openAIClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "openai: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "openai: create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "openai: send request")
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", eris.Wrap(err, "openai: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("openai: status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", eris.Wrap(err, "openai: unmarshal response")
	}
	if len(parsed.Choices) == 0 {
		return "", eris.New("openai: no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}
