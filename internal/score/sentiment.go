package score

import (
	"math"

	"github.com/varuntyagi83/geo-tracker/internal/text"
)

// SentimentAnalyzer scores the local context around brand mentions on
// a [-1, 1] polarity scale using cue-word lexicons.
type SentimentAnalyzer struct {
	window   int
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewSentimentAnalyzer creates an analyzer with the given context
// window (words on each side of a mention, default 10).
func NewSentimentAnalyzer(window int) *SentimentAnalyzer {
	if window <= 0 {
		window = 10
	}
	return &SentimentAnalyzer{
		window:   window,
		positive: buildLexicon(defaultPositiveCues),
		negative: buildLexicon(defaultNegativeCues),
	}
}

// Score computes answer-level sentiment as the mean of per-mention
// window scores. defined is false when there are no target mentions:
// absence of the brand never yields a placeholder 0.0, while a genuine
// 0.0 from cue cancellation is a legitimate neutral value.
func (a *SentimentAnalyzer) Score(normalized string, mentionOffsets []int) (score float64, defined bool) {
	if len(mentionOffsets) == 0 || normalized == "" {
		return 0, false
	}

	tokens := text.Tokenize(normalized)
	if len(tokens) == 0 {
		return 0, false
	}

	var sum float64
	for _, off := range mentionOffsets {
		sum += a.scoreWindow(tokens, off)
	}

	return sum / float64(len(mentionOffsets)), true
}

// scoreWindow scores the +-window words around the mention offset.
// The raw cue balance is compressed with tanh so stacking cues raises
// confidence without ever leaving [-1, 1].
func (a *SentimentAnalyzer) scoreWindow(tokens []text.Token, offset int) float64 {
	center := text.WordIndexAt(tokens, offset)
	if center < 0 {
		center = 0
	}

	lo := center - a.window
	if lo < 0 {
		lo = 0
	}
	hi := center + a.window
	if hi > len(tokens)-1 {
		hi = len(tokens) - 1
	}

	balance := 0
	for i := lo; i <= hi; i++ {
		word := tokens[i].Word
		if _, ok := a.positive[word]; ok {
			balance++
			continue
		}
		if _, ok := a.negative[word]; ok {
			balance--
		}
	}

	return math.Tanh(float64(balance) / 2.0)
}
