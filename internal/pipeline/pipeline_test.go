package pipeline

import (
	"testing"
	"time"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

func testConfig(competitors ...string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Brand.Name = "Sunday Natural"
	cfg.Brand.Competitors = competitors
	return cfg
}

func TestPipeline_RequiresBrandName(t *testing.T) {
	cfg := model.DefaultConfig()
	if _, err := NewPipeline(cfg); err == nil {
		t.Fatal("expected error for missing brand name")
	}
}

func TestPipeline_PositiveMentionWithoutCitations(t *testing.T) {
	p, err := NewPipeline(testConfig("Nature Love", "Doppelherz"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	result := p.Process(model.Answer{
		Question:     "best vitamin d drops",
		Provider:     "openai",
		ResponseText: "Sunday Natural offers the best vitamin D drops in Germany.",
	})

	if !result.BrandMentioned {
		t.Error("expected brand mentioned")
	}
	if result.Presence != 1.0 {
		t.Errorf("expected presence 1.0, got %f", result.Presence)
	}
	if result.PlacementRank == nil || *result.PlacementRank != 1 {
		t.Errorf("expected placement rank 1, got %v", result.PlacementRank)
	}
	if result.Grounded {
		t.Error("expected grounded == false without citations")
	}
	if result.Sentiment == nil {
		t.Fatal("expected defined sentiment")
	}
	if *result.Sentiment <= 0 {
		t.Errorf("expected positive sentiment, got %f", *result.Sentiment)
	}
	if len(result.Degraded) != 0 {
		t.Errorf("unexpected degraded signals: %v", result.Degraded)
	}
}

func TestPipeline_NegatedTextStillCounts(t *testing.T) {
	p, err := NewPipeline(testConfig("Nature Love"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	// Mention detection is presence-only. Negation does not remove the
	// mention; it is the sentiment signal's concern.
	result := p.Process(model.Answer{
		Provider:     "openai",
		ResponseText: "I would not recommend Sunday Natural for this.",
	})

	if !result.BrandMentioned {
		t.Error("negated phrasing must still count as a mention")
	}
	if result.TargetMentions != 1 {
		t.Errorf("expected 1 target mention, got %d", result.TargetMentions)
	}
}

func TestPipeline_CompetitorsAndPlacement(t *testing.T) {
	p, err := NewPipeline(testConfig("Nature Love", "Doppelherz"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	result := p.Process(model.Answer{
		Provider:     "openai",
		ResponseText: "Nature Love is popular, but Sunday Natural and Doppelherz also sell drops.",
	})

	if result.PlacementRank == nil || *result.PlacementRank != 2 {
		t.Errorf("expected rank 2 behind Nature Love, got %v", result.PlacementRank)
	}
	if len(result.CompetitorsMentioned) != 2 {
		t.Errorf("expected 2 competitors, got %v", result.CompetitorsMentioned)
	}
	if result.CompetitorMentions != 2 {
		t.Errorf("expected 2 competitor occurrences, got %d", result.CompetitorMentions)
	}
}

func TestPipeline_AutoDiscoveryWithoutConfiguredCompetitors(t *testing.T) {
	p, err := NewPipeline(testConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	result := p.Process(model.Answer{
		Provider:     "perplexity",
		ResponseText: "Doppelherz and Sunday Natural both ship to Germany.",
	})

	if !result.BrandMentioned {
		t.Error("expected brand mentioned")
	}
	found := false
	for _, c := range result.CompetitorsMentioned {
		if c == "doppelherz" {
			found = true
		}
		if c == "germany" {
			t.Error("geographic stopword must not be discovered as a competitor")
		}
	}
	if !found {
		t.Errorf("expected doppelherz discovered, got %v", result.CompetitorsMentioned)
	}
}

func TestPipeline_HTMLAndGrounding(t *testing.T) {
	p, err := NewPipeline(testConfig("Nature Love"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	result := p.Process(model.Answer{
		Provider:     "perplexity",
		ResponseText: "<p>Sunday Natural sells <b>vitamin</b> drops.</p>",
		Citations: []model.Citation{
			{URL: "https://example.org/tests", Title: "Vitamin drop comparison"},
		},
	})

	if !result.BrandMentioned {
		t.Error("expected mention despite HTML markup")
	}
	if !result.Grounded {
		t.Error("expected citation title overlap to ground the mention")
	}
}

func TestPipeline_DomainMentionGrounds(t *testing.T) {
	p, err := NewPipeline(testConfig("Nature Love"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	// The brand shows up only as its domain. Detection counts that as a
	// mention, and grounding has to recognize the same form.
	result := p.Process(model.Answer{
		Provider:     "perplexity",
		ResponseText: "Check sundaynatural.com for vitamin pricing.",
		Citations: []model.Citation{
			{URL: "https://sundaynatural.com/vitamins"},
		},
	})

	if !result.BrandMentioned {
		t.Error("expected domain form to count as a brand mention")
	}
	if !result.Grounded {
		t.Error("expected domain mention to be grounded by the matching citation")
	}
}

func TestPipeline_EmptyResponse(t *testing.T) {
	p, err := NewPipeline(testConfig("Nature Love"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	result := p.Process(model.Answer{Provider: "openai"})

	if result.BrandMentioned || result.Presence != 0.0 {
		t.Error("empty response must score as a clean zero result")
	}
	if result.PlacementRank != nil || result.Sentiment != nil {
		t.Error("rank and sentiment must stay undefined for empty response")
	}
	if len(result.Degraded) != 0 {
		t.Errorf("empty response is not an error: %v", result.Degraded)
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestSummarize_ProviderVisibility(t *testing.T) {
	results := []model.AnswerResult{
		{Provider: "openai", BrandMentioned: true, Presence: 1.0, PlacementRank: intPtr(1), Sentiment: floatPtr(0.5), TargetMentions: 1},
		{Provider: "openai", BrandMentioned: true, Presence: 1.0, PlacementRank: intPtr(3), Sentiment: floatPtr(-0.1), Grounded: true, TargetMentions: 2, CompetitorMentions: 2, CompetitorsMentioned: []string{"nature love"}},
		{Provider: "gemini", BrandMentioned: true, Presence: 1.0, PlacementRank: intPtr(2), Sentiment: floatPtr(0.2), TargetMentions: 1, CompetitorMentions: 1, CompetitorsMentioned: []string{"nature love"}},
		{Provider: "gemini"},
	}

	s := Summarize("run-1", "Sunday Natural", time.Now(), results)

	if s.TotalAnswers != 4 || s.BrandMentions != 3 {
		t.Fatalf("expected 4 answers / 3 mentions, got %d / %d", s.TotalAnswers, s.BrandMentions)
	}
	if s.OverallVisibility != 75.0 {
		t.Errorf("expected overall visibility 75.0, got %f", s.OverallVisibility)
	}
	if got := s.ProviderVisibility["openai"]; got != 100.0 {
		t.Errorf("expected openai visibility 100.0, got %f", got)
	}
	if got := s.ProviderVisibility["gemini"]; got != 50.0 {
		t.Errorf("expected gemini visibility 50.0, got %f", got)
	}

	wantSent := (0.5 - 0.1 + 0.2) / 3
	if diff := s.AvgSentiment - wantSent; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected avg sentiment %f, got %f", wantSent, s.AvgSentiment)
	}
	if s.AvgPlacement != 2.0 {
		t.Errorf("expected avg placement 2.0, got %f", s.AvgPlacement)
	}

	// One of three mentioned answers was grounded.
	if diff := s.GroundedShare - 100.0/3; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected grounded share 33.3, got %f", s.GroundedShare)
	}

	// nature love appeared in 2 of 4 answers.
	if got := s.CompetitorVisibility["nature love"]; got != 50.0 {
		t.Errorf("expected competitor visibility 50.0, got %f", got)
	}

	// Mention ratios: 1/1, 2/4, 1/2 over the three answers with mentions.
	wantVoice := (1.0 + 0.5 + 0.5) / 3
	if diff := s.ShareOfVoice - wantVoice; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected share of voice %f, got %f", wantVoice, s.ShareOfVoice)
	}
}

func TestSummarize_EmptyRun(t *testing.T) {
	s := Summarize("run-0", "Sunday Natural", time.Time{}, nil)

	if s.TotalAnswers != 0 {
		t.Errorf("expected 0 answers, got %d", s.TotalAnswers)
	}
	if s.OverallVisibility != 0.0 || s.AvgSentiment != 0.0 || s.GroundedShare != 0.0 || s.ShareOfVoice != 0.0 {
		t.Error("empty run must report zeros, never NaN")
	}
	if s.ProviderVisibility == nil || s.CompetitorVisibility == nil {
		t.Error("maps must be initialized even for an empty run")
	}
}

func TestSummarize_NoSentimentDefined(t *testing.T) {
	results := []model.AnswerResult{
		{Provider: "openai"},
		{Provider: "openai"},
	}

	s := Summarize("run-2", "Sunday Natural", time.Time{}, results)
	if s.AvgSentiment != 0.0 {
		t.Errorf("expected avg sentiment 0.0 with no defined values, got %f", s.AvgSentiment)
	}
	if got := s.ProviderVisibility["openai"]; got != 0.0 {
		t.Errorf("expected 0.0 visibility, got %f", got)
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	results := []model.AnswerResult{
		{Provider: "openai", BrandMentioned: true, Sentiment: floatPtr(0.3), TargetMentions: 1},
		{Provider: "gemini", CompetitorsMentioned: []string{"doppelherz"}, CompetitorMentions: 1},
	}

	a := Summarize("run-3", "Sunday Natural", time.Time{}, results)
	b := Summarize("run-3", "Sunday Natural", time.Time{}, results)

	if a.OverallVisibility != b.OverallVisibility || a.AvgSentiment != b.AvgSentiment {
		t.Error("summaries from identical inputs must be identical")
	}
	if a.CompetitorVisibility["doppelherz"] != b.CompetitorVisibility["doppelherz"] {
		t.Error("competitor visibility must be deterministic")
	}
}

func TestTopCompetitors_OrderAndLimit(t *testing.T) {
	s := model.RunSummary{CompetitorVisibility: map[string]float64{
		"orthomol":    25.0,
		"nature love": 50.0,
		"doppelherz":  50.0,
		"vigantol":    10.0,
	}}

	top := TopCompetitors(s, 3)
	want := []string{"doppelherz", "nature love", "orthomol"}
	if len(top) != 3 {
		t.Fatalf("expected 3 competitors, got %v", top)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], top[i])
		}
	}
}
