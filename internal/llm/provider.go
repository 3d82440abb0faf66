package llm

import (
	"context"
	"os"
	"time"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

// Provider is an LLM connector that answers consumer questions. The
// question is sent exactly as the panel phrases it, never decorated
// with the tracked brand, so the answer reflects what the model would
// tell a real user.
type Provider interface {
	// Name returns the provider name used in results and reports.
	Name() string

	// Ask sends one question and returns the answer with any citations
	// the provider surfaced.
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)

	// IsAvailable checks if the provider is properly configured and
	// reachable.
	IsAvailable(ctx context.Context) bool
}

// AskRequest is the input for a single provider call.
type AskRequest struct {
	Question  string
	Model     string // overrides the configured model when set
	MaxTokens int
	WebSearch bool // request web-grounded answers where supported
}

// AskResponse is the raw provider answer before scoring.
type AskResponse struct {
	Text       string
	Citations  []model.Citation
	Model      string
	TokensUsed int
}

// Config holds a single connector's configuration.
type Config struct {
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
	WebSearch bool
}

// ConfigFor builds a connector Config from the tracker configuration,
// filling the API key from the environment when the config leaves it
// empty.
func ConfigFor(pc model.ProviderConfig, timeout time.Duration, envKey string) Config {
	apiKey := pc.APIKey
	if apiKey == "" && envKey != "" {
		apiKey = os.Getenv(envKey)
	}
	return Config{
		Model:     pc.Model,
		APIKey:    apiKey,
		BaseURL:   pc.BaseURL,
		Timeout:   timeout,
		MaxTokens: pc.MaxTokens,
		WebSearch: pc.WebSearch,
	}
}

// systemPrompt is the neutral framing for every question. It must never
// mention the tracked brand or any competitor.
const systemPrompt = "You are answering a consumer question. Recommend specific products or brands where relevant, and cite sources when you can."
