package extract

import (
	"strings"
	"unicode"

	"github.com/varuntyagi83/geo-tracker/internal/text"
)

// maxDiscoveredPhrase bounds how many capitalized words join into one
// candidate ("Nature Love Vitamins" but not whole title-case headings).
const maxDiscoveredPhrase = 3

// DiscoverCandidates extracts competitor candidates from raw answer
// text when no candidate list is configured. The heuristic collects
// sequences of capitalized words, then filters the stopword set and
// target variants. Deterministic: same text, same candidates, in
// first-appearance order.
func (d *Detector) DiscoverCandidates(raw string) []string {
	var candidates []string
	seen := map[string]struct{}{}

	flushRun := func(run []string) {
		if len(run) == 0 {
			return
		}
		if len(run) > maxDiscoveredPhrase {
			run = run[:maxDiscoveredPhrase]
		}
		candidate := strings.Join(run, " ")
		norm := text.Normalize(candidate)
		if norm == "" {
			return
		}
		if _, dup := seen[norm]; dup {
			return
		}
		seen[norm] = struct{}{}

		if d.IsStopword(norm) || d.isTargetVariant(norm) {
			return
		}
		// Single generic words ("Best", "Pure") are headline noise,
		// not brands.
		if !strings.Contains(norm, " ") {
			if _, generic := genericBrandWords[norm]; generic {
				return
			}
			if len(norm) < 3 {
				return
			}
		}
		// Every token being a stopword means a title-case heading
		// slipped through ("Top Ten Reasons").
		allStop := true
		for _, tok := range strings.Fields(norm) {
			if !d.IsStopword(tok) {
				allStop = false
				break
			}
		}
		if allStop {
			return
		}

		candidates = append(candidates, candidate)
	}

	var run []string
	for _, field := range strings.Fields(raw) {
		word := strings.Trim(field, ".,;:!?()[]{}\"'`*_")
		if isCapitalizedWord(word) {
			run = append(run, word)
			// Trailing punctuation ends the name run at the clause
			// boundary ("...by Nature Love. Other options...").
			if word != field && strings.ContainsAny(field, ".,;:!?") {
				flushRun(run)
				run = nil
			}
			continue
		}
		flushRun(run)
		run = nil
	}
	flushRun(run)

	return candidates
}

// isCapitalizedWord reports whether a word looks like part of a proper
// name: leading uppercase letter, at least two runes, and no digits.
func isCapitalizedWord(w string) bool {
	runes := []rune(w)
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && r != '-' && r != '&' {
			return false
		}
	}
	return true
}
