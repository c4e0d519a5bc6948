package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return srv
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestOpenAIGenerateStructured(t *testing.T) {
	var gotAuth, gotPath string
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		fmt.Fprint(w, chatReply("```json\n{\"is_relevant\": true, \"confidence\": 0.9}\n```"))
	})

	c, err := New(Config{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)

	var out struct {
		IsRelevant bool    `json:"is_relevant"`
		Confidence float64 `json:"confidence"`
	}
	require.NoError(t, c.GenerateStructured(context.Background(), "prompt", &out))

	assert.True(t, out.IsRelevant)
	assert.InDelta(t, 0.9, out.Confidence, 1e-9)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
}

func TestOpenAIRetriesOnBadJSON(t *testing.T) {
	calls := 0
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, chatReply("sorry, I cannot produce JSON"))
			return
		}
		fmt.Fprint(w, chatReply(`{"ok": true}`))
	})

	c, err := New(Config{Provider: "openai", APIKey: "k", Model: "m", BaseURL: srv.URL, MaxRetries: 2})
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.GenerateStructured(context.Background(), "prompt", &out))
	assert.True(t, out.OK)
	assert.Equal(t, 2, calls)
}

func TestOpenAIExhaustsRetryBudget(t *testing.T) {
	calls := 0
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	c, err := New(Config{Provider: "openai", APIKey: "k", Model: "m", BaseURL: srv.URL, MaxRetries: 2})
	require.NoError(t, err)

	var out map[string]any
	err = c.GenerateStructured(context.Background(), "prompt", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, 3, calls) // initial attempt plus two retries
}

func TestOpenAIGenerateText(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatReply("plain text answer"))
	})

	c, err := New(Config{Provider: "openai", APIKey: "k", Model: "m", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := c.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "plain text answer", text)
}

func TestOpenAIEmptyChoices(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	})

	c, err := New(Config{Provider: "openai", APIKey: "k", Model: "m", BaseURL: srv.URL, MaxRetries: 1})
	require.NoError(t, err)

	_, err = c.GenerateText(context.Background(), "prompt")
	assert.Error(t, err)
}
