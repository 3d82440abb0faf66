package model

import "time"

// Answer is a single provider response to one panel question. It is
// produced by a provider connector and consumed exactly once by the
// scoring pipeline.
type Answer struct {
	Question     string     `json:"question"`                // Question text sent to the provider
	Category     string     `json:"category,omitempty"`      // Panel category (e.g., "comparison")
	Provider     string     `json:"provider"`                // Provider id (openai, perplexity, ...)
	Model        string     `json:"model,omitempty"`         // Model that produced the answer
	ResponseText string     `json:"response_text"`           // Raw answer text
	Citations    []Citation `json:"citations,omitempty"`     // Ordered source citations, may be empty
	LatencyMS    int64      `json:"latency_ms,omitempty"`    // Provider call latency
	TokensUsed   int        `json:"tokens_used,omitempty"`   // Total tokens reported by the provider
	FetchedAt    time.Time  `json:"fetched_at,omitempty"`    // When the provider call completed
}

// Citation is a source reference returned by a provider's web-search
// mode, or recovered from the answer text itself.
type Citation struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`

	// SentenceRefs holds 0-based sentence indexes this citation
	// explicitly supports, when the provider returns structured
	// linkage. Empty for providers that only return a flat list.
	SentenceRefs []int `json:"sentence_refs,omitempty"`
}

// Mention is one occurrence of an entity in the normalized answer
// text. Ephemeral: created per Answer, never persisted.
type Mention struct {
	Entity     string `json:"entity"`     // Entity name as configured/discovered
	Normalized string `json:"normalized"` // Normalized form used for matching
	Offset     int    `json:"offset"`     // Character offset in normalized text
	IsTarget   bool   `json:"is_target"`  // Whether this is the tracked brand
}
