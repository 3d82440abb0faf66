package llm

import (
	"fmt"
	"strings"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

// NewProvider creates one connector by name from the tracker
// configuration. API keys left empty in the config fall back to the
// conventional environment variables.
func NewProvider(name string, cfg *model.Config) (Provider, error) {
	switch strings.ToLower(name) {
	case "openai":
		return NewOpenAIProvider(ConfigFor(cfg.Providers.OpenAI, cfg.HTTP.Timeout, "OPENAI_API_KEY"))

	case "perplexity":
		return NewPerplexityProvider(ConfigFor(cfg.Providers.Perplexity, cfg.HTTP.Timeout, "PERPLEXITY_API_KEY"))

	case "anthropic", "claude":
		return NewAnthropicProvider(ConfigFor(cfg.Providers.Anthropic, cfg.HTTP.Timeout, "ANTHROPIC_API_KEY"))

	case "mock":
		return NewMockProvider(nil), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: openai, perplexity, anthropic, mock)", name)
	}
}

// NewProviders creates every connector enabled in the configuration.
// A provider that fails to construct aborts the whole set: a run with
// silently missing providers would report misleading visibility.
func NewProviders(cfg *model.Config) ([]Provider, error) {
	if len(cfg.Providers.Enabled) == 0 {
		return nil, fmt.Errorf("no providers enabled")
	}

	providers := make([]Provider, 0, len(cfg.Providers.Enabled))
	for _, name := range cfg.Providers.Enabled {
		p, err := NewProvider(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}
		providers = append(providers, p)
	}
	return providers, nil
}
