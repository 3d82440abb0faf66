package llm

import (
	"context"
	"fmt"
	"hash/fnv"
)

// MockProvider is a deterministic offline provider for tests and dry
// runs. The same question always yields the same answer, so scoring
// and aggregation stay reproducible without network access.
type MockProvider struct {
	answers map[string]string
}

// NewMockProvider creates a mock provider. answers maps questions to
// canned responses; unknown questions get a generic deterministic
// answer derived from the question itself.
func NewMockProvider(answers map[string]string) *MockProvider {
	return &MockProvider{answers: answers}
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return "mock"
}

// IsAvailable always succeeds.
func (p *MockProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// Ask returns the canned answer for the question.
func (p *MockProvider) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, ok := p.answers[req.Question]
	if !ok {
		h := fnv.New32a()
		h.Write([]byte(req.Question))
		text = fmt.Sprintf("There are several options to consider for %q (ref %08x).", req.Question, h.Sum32())
	}

	return &AskResponse{
		Text:       text,
		Citations:  ExtractSources(text),
		Model:      "mock",
		TokensUsed: len(text) / 4,
	}, nil
}
