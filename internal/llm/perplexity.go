package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const perplexityBaseURL = "https://api.perplexity.ai"

// PerplexityProvider implements the Provider interface for Perplexity,
// which speaks the OpenAI chat protocol and grounds answers in live
// web search. Its answers matter most for visibility tracking because
// they reflect what search-backed assistants currently say.
type PerplexityProvider struct {
	client *openai.Client
	config Config
}

// NewPerplexityProvider creates a new Perplexity provider.
func NewPerplexityProvider(config Config) (*PerplexityProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Perplexity API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL
	if clientConfig.BaseURL == "" {
		clientConfig.BaseURL = perplexityBaseURL
	}

	return &PerplexityProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *PerplexityProvider) Name() string {
	return "perplexity"
}

// IsAvailable checks if the provider is properly configured. Perplexity
// has no model-listing endpoint, so this sends a minimal completion.
func (p *PerplexityProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model(""),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "Hi"},
		},
		MaxTokens: 10,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Perplexity API check failed: %v\n", err)
		return false
	}
	return true
}

// Ask sends the question through Perplexity's chat API. Perplexity
// inlines its citations as markdown links and bare URLs in the answer
// text, so citations come from URL extraction.
func (p *PerplexityProvider) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	model := p.model(req.Model)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 1024
	}

	timeout := p.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Question,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("Perplexity API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from Perplexity")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)

	return &AskResponse{
		Text:       text,
		Citations:  ExtractSources(text),
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

func (p *PerplexityProvider) model(override string) string {
	if override != "" {
		return override
	}
	if p.config.Model != "" {
		return p.config.Model
	}
	return "sonar"
}
