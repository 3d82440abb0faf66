package score

import (
	"strings"

	"github.com/varuntyagi83/geo-tracker/internal/model"
	"github.com/varuntyagi83/geo-tracker/internal/text"
)

// GroundingChecker decides whether a brand mention is corroborated by
// a cited source. Pure textual correlation: cited URLs are never
// re-fetched.
type GroundingChecker struct {
	minTokenLen int
}

// NewGroundingChecker creates a checker. minTokenLen is the shortest
// token counted as significant overlap between a sentence and a
// citation (default 4).
func NewGroundingChecker(minTokenLen int) *GroundingChecker {
	if minTokenLen <= 0 {
		minTokenLen = 4
	}
	return &GroundingChecker{minTokenLen: minTokenLen}
}

// Grounded reports whether any target mention is supported by a
// citation. targetVariants holds every normalized form that counts as
// a target mention, the same set the detector matches on, so a mention
// found by the detector is never invisible here. A mention counts as
// grounded when a citation's title or URL shares a significant token
// with the sentence containing the mention, or when the provider
// explicitly links the citation to that sentence. An empty citation
// list always yields false: missing citations are a valid ungrounded
// state, not an error.
func (g *GroundingChecker) Grounded(rawText string, targetVariants []string, citations []model.Citation) bool {
	if len(citations) == 0 || rawText == "" || len(targetVariants) == 0 {
		return false
	}

	sentences := text.SplitSentences(rawText)
	if len(sentences) == 0 {
		sentences = []string{rawText}
	}

	for idx, sentence := range sentences {
		if !sentenceMentionsTarget(sentence, targetVariants) {
			continue
		}
		for _, c := range citations {
			if citationRefersTo(c, idx) || g.tokenOverlap(sentence, c) {
				return true
			}
		}
	}

	return false
}

// sentenceMentionsTarget checks the normalized sentence for any target
// variant as a whole word, so domain-style mentions ("sundaynatural")
// ground the same way the full phrase does.
func sentenceMentionsTarget(sentence string, targetVariants []string) bool {
	norm := text.Normalize(sentence)
	if norm == "" {
		return false
	}
	for _, variant := range targetVariants {
		if variant == "" {
			continue
		}
		if len(findWhole(norm, variant)) > 0 {
			return true
		}
	}
	return false
}

// findWhole mirrors the detector's boundary rule: in normalized text
// the only boundary is a space or the text edge.
func findWhole(normalized, phrase string) []int {
	var offsets []int
	start := 0
	for {
		idx := strings.Index(normalized[start:], phrase)
		if idx < 0 {
			break
		}
		abs := start + idx
		before := abs == 0 || normalized[abs-1] == ' '
		end := abs + len(phrase)
		after := end == len(normalized) || normalized[end] == ' '
		if before && after {
			offsets = append(offsets, abs)
			start = end
		} else {
			start = abs + 1
		}
	}
	return offsets
}

// tokenOverlap reports whether the citation's title or URL shares a
// significant token with the sentence.
func (g *GroundingChecker) tokenOverlap(sentence string, c model.Citation) bool {
	sentenceTokens := map[string]struct{}{}
	for _, tok := range text.SignificantTokens(sentence, g.minTokenLen) {
		sentenceTokens[tok] = struct{}{}
	}
	if len(sentenceTokens) == 0 {
		return false
	}

	for _, tok := range text.SignificantTokens(c.Title, g.minTokenLen) {
		if _, ok := sentenceTokens[tok]; ok {
			return true
		}
	}
	for _, tok := range text.SignificantTokens(c.URL, g.minTokenLen) {
		// URL scheme noise never counts as evidence.
		if tok == "https" || tok == "http" {
			continue
		}
		if _, ok := sentenceTokens[tok]; ok {
			return true
		}
	}

	return false
}

// citationRefersTo checks provider-supplied structured linkage between
// a citation and a sentence index.
func citationRefersTo(c model.Citation, sentenceIdx int) bool {
	for _, ref := range c.SentenceRefs {
		if ref == sentenceIdx {
			return true
		}
	}
	return false
}
