package model

import "time"

// AnswerResult is the scored record for one Answer. Immutable once
// produced; ownership passes to the caller.
type AnswerResult struct {
	Question     string     `json:"question"`
	Category     string     `json:"category,omitempty"`
	Provider     string     `json:"provider"`
	Model        string     `json:"model,omitempty"`
	ResponseText string     `json:"response_text"`
	Citations    []Citation `json:"citations,omitempty"`

	BrandMentioned bool    `json:"brand_mentioned"`
	Presence       float64 `json:"presence"` // 1.0 iff BrandMentioned, else 0.0

	// PlacementRank is the 1-based position of the target's earliest
	// mention among all distinct entities, nil when the brand is absent.
	PlacementRank *int `json:"placement_rank,omitempty"`

	Grounded bool `json:"grounded"`

	// Sentiment is nil when the brand is absent. 0.0 is a legitimate
	// neutral value, distinct from undefined.
	Sentiment *float64 `json:"sentiment,omitempty"`

	CompetitorsMentioned []string `json:"competitors_mentioned,omitempty"`

	// TargetMentions / CompetitorMentions are occurrence counts used
	// for share-of-voice.
	TargetMentions     int `json:"target_mentions"`
	CompetitorMentions int `json:"competitor_mentions"`

	// Degraded lists signal names that failed and were defaulted
	// (placement, grounding, sentiment).
	Degraded []string `json:"degraded,omitempty"`

	ScoredAt time.Time `json:"scored_at"`
}

// RunSummary is a pure reduction over the AnswerResults of one run.
// It has no independent identity: recomputing from the same results
// must always yield the same summary.
type RunSummary struct {
	RunID     string    `json:"run_id"`
	BrandName string    `json:"brand_name"`
	StartedAt time.Time `json:"started_at,omitempty"`

	TotalAnswers  int `json:"total_answers"`
	BrandMentions int `json:"brand_mentions"`

	OverallVisibility float64 `json:"overall_visibility"` // percent, [0,100]
	AvgSentiment      float64 `json:"avg_sentiment"`      // 0.0 when no sentiment defined
	AvgPlacement      float64 `json:"avg_placement"`      // mean rank where defined, 0.0 otherwise
	GroundedShare     float64 `json:"grounded_share"`     // percent of mentioned answers that were grounded
	ShareOfVoice      float64 `json:"share_of_voice"`     // mean target/(target+competitor) mention ratio

	ProviderVisibility   map[string]float64 `json:"provider_visibility"`
	CompetitorVisibility map[string]float64 `json:"competitor_visibility"`
}
