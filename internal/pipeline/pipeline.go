package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/varuntyagi83/geo-tracker/internal/extract"
	"github.com/varuntyagi83/geo-tracker/internal/model"
	"github.com/varuntyagi83/geo-tracker/internal/score"
	"github.com/varuntyagi83/geo-tracker/internal/text"
)

// Pipeline scores one provider answer: mention detection, placement,
// grounding, sentiment, assembled into an AnswerResult. Stateless per
// Answer and safe for concurrent use.
type Pipeline struct {
	detector     *extract.Detector
	placement    *score.PlacementScorer
	grounding    *score.GroundingChecker
	sentiment    *score.SentimentAnalyzer
	autoDiscover bool
	verbose      bool
}

// NewPipeline builds the scoring pipeline. Configuration errors (an
// empty target brand) surface here, before any Answer is processed.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	detector, err := extract.NewDetector(cfg.Brand)
	if err != nil {
		return nil, fmt.Errorf("build detector: %w", err)
	}

	return &Pipeline{
		detector:     detector,
		placement:    score.NewPlacementScorer(),
		grounding:    score.NewGroundingChecker(cfg.Scoring.GroundingMinToken),
		sentiment:    score.NewSentimentAnalyzer(cfg.Scoring.SentimentWindow),
		autoDiscover: len(cfg.Brand.Competitors) == 0,
		verbose:      cfg.Output.Verbose,
	}, nil
}

// Process scores a single Answer. A failure in one signal degrades
// that field to its absent default and is reported in Degraded; it
// never aborts the other fields. Empty response text is a valid
// zero-result case, not an error.
func (p *Pipeline) Process(ans model.Answer) model.AnswerResult {
	result := model.AnswerResult{
		Question:     ans.Question,
		Category:     ans.Category,
		Provider:     ans.Provider,
		Model:        ans.Model,
		ResponseText: ans.ResponseText,
		Citations:    ans.Citations,
		ScoredAt:     time.Now().UTC(),
	}

	raw := text.StripHTML(ans.ResponseText)
	normalized := text.Normalize(raw)

	// nil candidates fall back to the configured competitor list.
	var candidates []string
	if p.autoDiscover {
		candidates = p.detector.DiscoverCandidates(raw)
	}
	mentions := p.detector.Detect(normalized, candidates)

	var targetOffsets []int
	competitorSeen := map[string]struct{}{}
	for _, m := range mentions {
		if m.IsTarget {
			targetOffsets = append(targetOffsets, m.Offset)
			result.TargetMentions++
			continue
		}
		result.CompetitorMentions++
		if _, dup := competitorSeen[m.Normalized]; !dup {
			competitorSeen[m.Normalized] = struct{}{}
			result.CompetitorsMentioned = append(result.CompetitorsMentioned, m.Normalized)
		}
	}

	result.BrandMentioned = len(targetOffsets) > 0
	if result.BrandMentioned {
		result.Presence = 1.0
	}

	// Placement, grounding and sentiment are independent; each runs
	// behind a panic guard so a malformed input degrades one field
	// instead of losing the whole record.
	if result.BrandMentioned {
		p.guard(&result, "placement", func() {
			if rank, ok := p.placement.Rank(mentions); ok {
				result.PlacementRank = &rank
			}
		})
		p.guard(&result, "grounding", func() {
			result.Grounded = p.grounding.Grounded(raw, p.detector.TargetVariants(), ans.Citations)
		})
		p.guard(&result, "sentiment", func() {
			if s, defined := p.sentiment.Score(normalized, targetOffsets); defined {
				result.Sentiment = &s
			}
		})
	}

	return result
}

// guard runs one scoring signal, converting a panic into a degraded
// field plus a stderr warning.
func (p *Pipeline) guard(result *model.AnswerResult, signal string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			result.Degraded = append(result.Degraded, signal)
			fmt.Fprintf(os.Stderr, "Warning: %s signal failed for provider %s: %v\n", signal, result.Provider, r)
		}
	}()
	fn()
}
