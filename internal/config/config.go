package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Feeds       []FeedConfig     `yaml:"feeds" mapstructure:"feeds"`
	Keywords    KeywordsConfig   `yaml:"keywords" mapstructure:"keywords"`
	Preferences Preferences      `yaml:"preferences" mapstructure:"preferences"`
	Weights     ScoringWeights   `yaml:"weights" mapstructure:"weights"`
	Limits      Limits           `yaml:"limits" mapstructure:"limits"`
	LLM         LLMConfig        `yaml:"llm" mapstructure:"llm"`
	Fetch       FetchConfig      `yaml:"fetch" mapstructure:"fetch"`
	Store       StoreConfig      `yaml:"store" mapstructure:"store"`
	Output      OutputConfig     `yaml:"output" mapstructure:"output"`
	Log         LogConfig        `yaml:"log" mapstructure:"log"`

	// DebugKeepNonmatching bypasses the matches-criteria gate so every vetted
	// person reaches the score gates. Diagnostic only.
	DebugKeepNonmatching bool `yaml:"debug_keep_nonmatching" mapstructure:"debug_keep_nonmatching"`
}

// FeedConfig names one RSS feed to ingest.
type FeedConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	URL  string `yaml:"url" mapstructure:"url"`
}

// KeywordsConfig holds the relevance-filter keyword hints.
type KeywordsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"`
	Exclude []string `yaml:"exclude" mapstructure:"exclude"`
}

// Preferences are the user's networking targets, matched during vetting and
// fit scoring.
type Preferences struct {
	Schools         []string `yaml:"schools" mapstructure:"schools"`
	Roles           []string `yaml:"roles" mapstructure:"roles"`
	Industries      []string `yaml:"industries" mapstructure:"industries"`
	SeniorityLevels []string `yaml:"seniority_levels" mapstructure:"seniority_levels"`
	Locations       []string `yaml:"locations" mapstructure:"locations"`
}

// ScoringWeights are the per-criterion fit score weights.
type ScoringWeights struct {
	School    float64 `yaml:"school" mapstructure:"school"`
	Role      float64 `yaml:"role" mapstructure:"role"`
	Industry  float64 `yaml:"industry" mapstructure:"industry"`
	Seniority float64 `yaml:"seniority" mapstructure:"seniority"`
	Location  float64 `yaml:"location" mapstructure:"location"`
}

// Limits bound per-stage processing volume and set the gate thresholds.
type Limits struct {
	MaxArticlesPerFeed     int     `yaml:"max_articles_per_feed" mapstructure:"max_articles_per_feed"`
	MaxCompaniesPerArticle int     `yaml:"max_companies_per_article" mapstructure:"max_companies_per_article"`
	MaxPeoplePerCompany    int     `yaml:"max_people_per_company" mapstructure:"max_people_per_company"`
	MinResponseThreshold   float64 `yaml:"min_response_threshold" mapstructure:"min_response_threshold"`
	MinScoreThreshold      float64 `yaml:"min_score_threshold" mapstructure:"min_score_threshold"`
}

// LLMConfig selects and configures the oracle provider.
type LLMConfig struct {
	Provider     string `yaml:"provider" mapstructure:"provider"`
	Model        string `yaml:"model" mapstructure:"model"`
	AnthropicKey string `yaml:"anthropic_key" mapstructure:"anthropic_key"`
	OpenAIKey    string `yaml:"openai_key" mapstructure:"openai_key"`
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	MaxRetries   int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// Key returns the API key for the configured provider.
func (l LLMConfig) Key() string {
	if l.Provider == "openai" {
		return l.OpenAIKey
	}
	return l.AnthropicKey
}

// FetchConfig configures outbound HTTP behavior and the politeness delay
// observed after every external call.
type FetchConfig struct {
	TimeoutSecs       int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent         string `yaml:"user_agent" mapstructure:"user_agent"`
	PolitenessDelayMS int    `yaml:"politeness_delay_ms" mapstructure:"politeness_delay_ms"`
}

// StoreConfig configures the dedup database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// OutputConfig configures the candidate output sink.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // csv, xlsx, or both
	Path   string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("weights.school", 1.0)
	v.SetDefault("weights.role", 1.0)
	v.SetDefault("weights.industry", 1.0)
	v.SetDefault("weights.seniority", 0.5)
	v.SetDefault("weights.location", 0.3)
	v.SetDefault("limits.max_articles_per_feed", 50)
	v.SetDefault("limits.max_companies_per_article", 10)
	v.SetDefault("limits.max_people_per_company", 20)
	v.SetDefault("limits.min_response_threshold", 0.3)
	v.SetDefault("limits.min_score_threshold", 0.5)
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model", "claude-haiku-4-5-20251001")
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("fetch.timeout_secs", 10)
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (compatible; ScoutBot/1.0)")
	v.SetDefault("fetch.politeness_delay_ms", 500)
	v.SetDefault("store.path", "data/scout.db")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.path", "data/output/candidates.csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the parts of the config a run cannot proceed without.
// Called once at startup; failures here are fatal before any processing.
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return eris.New("config: at least one feed is required")
	}
	for _, f := range c.Feeds {
		if f.URL == "" {
			return eris.Errorf("config: feed %q has no url", f.Name)
		}
	}
	switch c.LLM.Provider {
	case "anthropic", "openai":
	default:
		return eris.Errorf("config: unknown llm provider %q", c.LLM.Provider)
	}
	if c.LLM.Key() == "" {
		return eris.Errorf("config: no api key configured for provider %s", c.LLM.Provider)
	}
	switch c.Output.Format {
	case "csv", "xlsx", "both":
	default:
		return eris.Errorf("config: unknown output format %q", c.Output.Format)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
