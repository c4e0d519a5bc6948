package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - name: startups
    url: https://news.example.com/rss
llm:
  anthropic_key: sk-test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Limits.MaxArticlesPerFeed)
	assert.Equal(t, 10, cfg.Limits.MaxCompaniesPerArticle)
	assert.Equal(t, 20, cfg.Limits.MaxPeoplePerCompany)
	assert.InDelta(t, 0.3, cfg.Limits.MinResponseThreshold, 1e-9)
	assert.InDelta(t, 0.5, cfg.Limits.MinScoreThreshold, 1e-9)
	assert.InDelta(t, 1.0, cfg.Weights.School, 1e-9)
	assert.InDelta(t, 0.5, cfg.Weights.Seniority, 1e-9)
	assert.InDelta(t, 0.3, cfg.Weights.Location, 1e-9)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 500, cfg.Fetch.PolitenessDelayMS)
	assert.Equal(t, "data/scout.db", cfg.Store.Path)
	assert.Equal(t, "csv", cfg.Output.Format)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - name: startups
    url: https://news.example.com/rss
limits:
  max_people_per_company: 5
  min_score_threshold: 0.8
llm:
  provider: openai
  openai_key: sk-test
  model: gpt-4o-mini
output:
  format: both
  path: out/people.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Limits.MaxPeoplePerCompany)
	assert.InDelta(t, 0.8, cfg.Limits.MinScoreThreshold, 1e-9)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.Key())
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "both", cfg.Output.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Feeds:  []FeedConfig{{Name: "f", URL: "https://example.com/rss"}},
			LLM:    LLMConfig{Provider: "anthropic", AnthropicKey: "sk"},
			Output: OutputConfig{Format: "csv", Path: "out.csv"},
		}
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Feeds = nil
	assert.Error(t, c.Validate())

	c = valid()
	c.Feeds[0].URL = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.LLM.Provider = "cohere"
	assert.Error(t, c.Validate())

	c = valid()
	c.LLM.AnthropicKey = ""
	assert.Error(t, c.Validate())

	c = valid()
	c.LLM = LLMConfig{Provider: "openai", OpenAIKey: "sk"}
	assert.NoError(t, c.Validate())

	c = valid()
	c.Output.Format = "pdf"
	assert.Error(t, c.Validate())
}

func TestKeySelectsProvider(t *testing.T) {
	l := LLMConfig{Provider: "anthropic", AnthropicKey: "a", OpenAIKey: "o"}
	assert.Equal(t, "a", l.Key())
	l.Provider = "openai"
	assert.Equal(t, "o", l.Key())
}
