package worker

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/varuntyagi83/geo-tracker/internal/cache"
	"github.com/varuntyagi83/geo-tracker/internal/llm"
	"github.com/varuntyagi83/geo-tracker/internal/model"
	"github.com/varuntyagi83/geo-tracker/internal/pipeline"
)

// AskTask fetches one (question, provider) answer and scores it.
type AskTask struct {
	Question model.Question
	Provider llm.Provider
	Runner   *Runner
}

// Run executes the task. Fetch failures surface in the outcome error;
// scoring itself cannot fail a task.
func (t *AskTask) Run(ctx context.Context) Outcome {
	ans, err := t.Runner.fetch(ctx, t.Provider, t.Question)
	if err != nil {
		return &AskOutcome{
			Question: t.Question.Text,
			Provider: t.Provider.Name(),
			FetchErr: err,
		}
	}

	result := t.Runner.pipe.Process(*ans)
	return &AskOutcome{
		Question: t.Question.Text,
		Provider: t.Provider.Name(),
		Result:   &result,
	}
}

// AskOutcome is the result of one AskTask.
type AskOutcome struct {
	Question string
	Provider string
	Result   *model.AnswerResult
	FetchErr error
}

// Err returns the fetch error, if any.
func (o *AskOutcome) Err() error {
	return o.FetchErr
}

// Runner drives one tracking run: every panel question against every
// enabled provider, through the worker pool, rate limited and cached,
// each answer scored as it arrives.
type Runner struct {
	providers  []llm.Provider
	pipe       *pipeline.Pipeline
	answers    *cache.AnswerCache // nil disables caching
	limiter    *Limiter
	workers    int
	maxRetries int
	verbose    bool
	modelFor   map[string]string
}

// NewRunner creates a runner from the tracker configuration.
func NewRunner(cfg *model.Config, providers []llm.Provider, pipe *pipeline.Pipeline, answers *cache.AnswerCache) *Runner {
	return &Runner{
		providers:  providers,
		pipe:       pipe,
		answers:    answers,
		limiter:    NewLimiter(cfg.Concurrency.ProviderRPS, cfg.Concurrency.Burst),
		workers:    cfg.Concurrency.Workers,
		maxRetries: cfg.HTTP.MaxRetries,
		verbose:    cfg.Output.Verbose,
		modelFor: map[string]string{
			"openai":     cfg.Providers.OpenAI.Model,
			"perplexity": cfg.Providers.Perplexity.Model,
			"anthropic":  cfg.Providers.Anthropic.Model,
			"mock":       cfg.Providers.Mock.Model,
		},
	}
}

// Run executes the panel. A failed provider call is logged and skipped
// so one flaky provider cannot abort the run; failed counts the skips.
// Cancelling the context stops dispatch and in-flight calls.
func (r *Runner) Run(ctx context.Context, questions []model.Question) (results []model.AnswerResult, failed int) {
	if len(questions) == 0 || len(r.providers) == 0 {
		return nil, 0
	}

	pool := NewPool(r.workers)
	pool.Start()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, q := range questions {
		for _, p := range r.providers {
			if ctx.Err() != nil {
				break
			}
			pool.Submit(&AskTask{Question: q, Provider: p, Runner: r})
		}
	}

	outcomes := pool.Wait()
	close(done)

	for _, outcome := range outcomes {
		o := outcome.(*AskOutcome)
		if o.FetchErr != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Warning: %s failed for %q: %v\n", o.Provider, o.Question, o.FetchErr)
			continue
		}
		results = append(results, *o.Result)
	}

	return results, failed
}

// fetch returns the answer for one call, from cache when possible,
// otherwise from the provider with retries and linear backoff.
func (r *Runner) fetch(ctx context.Context, p llm.Provider, q model.Question) (*model.Answer, error) {
	name := p.Name()
	configuredModel := r.modelFor[name]

	if r.answers != nil {
		if ans, found := r.answers.Get(name, configuredModel, q.Text); found {
			if r.verbose {
				fmt.Fprintf(os.Stderr, "Cache hit: %s %q\n", name, q.Text)
			}
			ans.Category = q.Category
			return ans, nil
		}
	}

	if err := r.limiter.Wait(ctx, name); err != nil {
		return nil, err
	}

	var resp *llm.AskResponse
	var err error
	start := time.Now()
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			if r.verbose {
				fmt.Fprintf(os.Stderr, "Retry %d/%d: %s %q\n", attempt, r.maxRetries, name, q.Text)
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err = p.Ask(ctx, llm.AskRequest{Question: q.Text})
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("ask %s: %w", name, err)
	}

	ans := &model.Answer{
		Question:     q.Text,
		Category:     q.Category,
		Provider:     name,
		Model:        resp.Model,
		ResponseText: resp.Text,
		Citations:    resp.Citations,
		LatencyMS:    time.Since(start).Milliseconds(),
		TokensUsed:   resp.TokensUsed,
		FetchedAt:    time.Now().UTC(),
	}

	if r.answers != nil {
		if cerr := r.answers.Set(&model.Answer{
			Question:     ans.Question,
			Provider:     name,
			Model:        configuredModel,
			ResponseText: ans.ResponseText,
			Citations:    ans.Citations,
			LatencyMS:    ans.LatencyMS,
			TokensUsed:   ans.TokensUsed,
			FetchedAt:    ans.FetchedAt,
		}); cerr != nil && r.verbose {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", cerr)
		}
	}

	return ans, nil
}

// LoadPanel reads a YAML panel file. Questions with empty text are
// skipped; duplicates keep their first occurrence.
func LoadPanel(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read panel: %w", err)
	}

	var panel model.Panel
	if err := yaml.Unmarshal(data, &panel); err != nil {
		return nil, fmt.Errorf("parse panel: %w", err)
	}

	seen := make(map[string]bool)
	var questions []model.Question
	for _, q := range panel.Questions {
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" || seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("panel %s contains no questions", path)
	}
	return questions, nil
}
