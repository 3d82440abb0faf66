package model

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the full tracker configuration.
type Config struct {
	Brand       BrandConfig       `yaml:"brand"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Providers   ProvidersConfig   `yaml:"providers"`
	HTTP        HTTPConfig        `yaml:"http"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
}

// BrandConfig identifies the tracked brand and its competitors.
type BrandConfig struct {
	// Name is the target brand. Empty is a fatal configuration error.
	Name string `yaml:"name"`

	// Competitors is the candidate list scanned for competitor
	// mentions. Empty enables auto-discovery from answer text.
	Competitors []string `yaml:"competitors"`

	// ExtraStopwords extends the builtin stopword set.
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// ScoringConfig tunes the heuristic scorers.
type ScoringConfig struct {
	// SentimentWindow is the number of words on each side of a
	// mention scored for polarity cues.
	SentimentWindow int `yaml:"sentiment_window"`

	// GroundingMinToken is the minimum token length counted as a
	// significant overlap between a sentence and a citation.
	GroundingMinToken int `yaml:"grounding_min_token"`
}

// ProvidersConfig selects which connectors run and with which models.
type ProvidersConfig struct {
	Enabled    []string       `yaml:"enabled"`
	OpenAI     ProviderConfig `yaml:"openai"`
	Perplexity ProviderConfig `yaml:"perplexity"`
	Anthropic  ProviderConfig `yaml:"anthropic"`
	Mock       ProviderConfig `yaml:"mock"`
}

// ProviderConfig configures a single provider connector.
type ProviderConfig struct {
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	MaxTokens int    `yaml:"max_tokens"`
	WebSearch bool   `yaml:"web_search"`
}

// HTTPConfig bounds provider calls.
type HTTPConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// ConcurrencyConfig bounds parallel (question x provider) tasks.
type ConcurrencyConfig struct {
	Workers     int     `yaml:"workers"`
	ProviderRPS float64 `yaml:"provider_rps"`
	Burst       int     `yaml:"burst"`
}

// CacheConfig controls the answer cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			SentimentWindow:   10,
			GroundingMinToken: 4,
		},
		Providers: ProvidersConfig{
			Enabled:    []string{"openai"},
			OpenAI:     ProviderConfig{Model: "gpt-4o-mini", MaxTokens: 1024},
			Perplexity: ProviderConfig{Model: "sonar", MaxTokens: 1024, WebSearch: true},
			Anthropic:  ProviderConfig{Model: "claude-3-5-haiku-20241022", MaxTokens: 1024},
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 2,
		},
		Concurrency: ConcurrencyConfig{
			Workers:     4,
			ProviderRPS: 1.0,
			Burst:       2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// Validate reports fatal configuration errors. A tracker without a
// target brand cannot produce any meaningful result, so this runs
// before any Answer is processed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Brand.Name) == "" {
		return fmt.Errorf("brand name is required")
	}
	if c.Scoring.SentimentWindow <= 0 {
		return fmt.Errorf("sentiment window must be positive, got %d", c.Scoring.SentimentWindow)
	}
	if c.Scoring.GroundingMinToken <= 0 {
		return fmt.Errorf("grounding min token length must be positive, got %d", c.Scoring.GroundingMinToken)
	}
	return nil
}
