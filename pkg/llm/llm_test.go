package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding prose", `Here is the result: {"a": 1} Hope that helps!`, `{"a": 1}`},
		{"whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"nested braces", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{"no json at all", "no braces here", "no braces here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}

func TestNewProviderSelection(t *testing.T) {
	c, err := New(Config{Provider: "anthropic", APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &anthropicClient{}, c)

	c, err = New(Config{Provider: "openai", APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, c)
}

func TestNewRejectsMissingKey(t *testing.T) {
	_, err := New(Config{Provider: "anthropic"})
	assert.Error(t, err)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "cohere", APIKey: "k"})
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Config{Provider: "openai", APIKey: "k", Model: "m"})
	require.NoError(t, err)

	oc := c.(*openAIClient)
	assert.Equal(t, int64(defaultMaxTokens), oc.maxTokens)
	assert.Equal(t, defaultMaxRetries, oc.maxRetries)
	assert.Equal(t, openAIDefaultBaseURL, oc.baseURL)
}
