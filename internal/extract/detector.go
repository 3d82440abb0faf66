package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/varuntyagi83/geo-tracker/internal/model"
	"github.com/varuntyagi83/geo-tracker/internal/text"
)

// genericBrandWords are common words many brands share. They never
// count as a distinctive target variant on their own, and they are
// not enough to discard a competitor candidate that contains them.
var genericBrandWords = map[string]struct{}{
	"natural": {}, "nature": {}, "organic": {}, "bio": {}, "pure": {},
	"health": {}, "healthy": {}, "life": {}, "love": {}, "care": {},
	"plus": {}, "pro": {}, "premium": {}, "gold": {}, "best": {},
	"super": {}, "ultra": {}, "max": {}, "active": {}, "vital": {},
	"fit": {}, "wellness": {}, "green": {}, "eco": {}, "fresh": {},
	"original": {}, "classic": {}, "elements": {}, "essentials": {},
}

// Detector finds target and competitor mentions in normalized answer
// text. Pure and deterministic; safe for concurrent use once built.
type Detector struct {
	target         string
	targetNorm     string
	targetVariants []string
	candidates     []string
	stopwords      map[string]struct{}
}

// NewDetector builds a detector for the given brand configuration.
// An empty target brand is a fatal configuration error.
func NewDetector(cfg model.BrandConfig) (*Detector, error) {
	targetNorm := text.Normalize(cfg.Name)
	if targetNorm == "" {
		return nil, fmt.Errorf("target brand name is empty after normalization")
	}

	stopwords := make(map[string]struct{}, len(defaultStopwords)+len(cfg.ExtraStopwords))
	for _, w := range defaultStopwords {
		stopwords[w] = struct{}{}
	}
	for _, w := range cfg.ExtraStopwords {
		if n := text.Normalize(w); n != "" {
			stopwords[n] = struct{}{}
		}
	}

	return &Detector{
		target:         cfg.Name,
		targetNorm:     targetNorm,
		targetVariants: targetVariants(targetNorm),
		candidates:     cfg.Competitors,
		stopwords:      stopwords,
	}, nil
}

// targetVariants expands a normalized brand name into the forms that
// count as a target mention: the full phrase, its distinctive words,
// and the joined no-space form that shows up in domains
// ("sundaynatural.de" normalizes to "sundaynatural de").
func targetVariants(targetNorm string) []string {
	seen := map[string]struct{}{targetNorm: {}}
	variants := []string{targetNorm}

	words := strings.Fields(targetNorm)
	for _, w := range words {
		// Words of three letters or fewer ("now", "bio", "the") collide
		// with ordinary prose too often to stand alone as a brand
		// signal. Short full names still match via the full-phrase
		// variant above.
		if len(w) <= 3 {
			continue
		}
		if _, generic := genericBrandWords[w]; generic {
			continue
		}
		if _, dup := seen[w]; !dup {
			seen[w] = struct{}{}
			variants = append(variants, w)
		}
	}

	if len(words) > 1 {
		joined := strings.Join(words, "")
		if _, dup := seen[joined]; !dup {
			variants = append(variants, joined)
		}
	}

	return variants
}

// TargetName returns the configured brand name.
func (d *Detector) TargetName() string { return d.target }

// TargetNormalized returns the normalized brand phrase.
func (d *Detector) TargetNormalized() string { return d.targetNorm }

// TargetVariants returns every normalized form that counts as a target
// mention, so downstream scorers recognize the same mentions the
// detector does.
func (d *Detector) TargetVariants() []string {
	out := make([]string, len(d.targetVariants))
	copy(out, d.targetVariants)
	return out
}

// IsStopword reports whether the normalized word is filtered.
func (d *Detector) IsStopword(norm string) bool {
	_, ok := d.stopwords[norm]
	return ok
}

// isTargetVariant reports whether a normalized candidate is really the
// target under another spelling.
func (d *Detector) isTargetVariant(norm string) bool {
	for _, v := range d.targetVariants {
		if norm == v {
			return true
		}
	}
	// Domain-style contraction: "sundaynatural" vs "sunday natural".
	joined := strings.ReplaceAll(norm, " ", "")
	targetJoined := strings.ReplaceAll(d.targetNorm, " ", "")
	return joined == targetJoined
}

// Detect scans normalized answer text for the target and the given
// competitor candidates and returns mentions in ascending offset
// order. Ties on offset keep the target first, then detection order.
// Candidates may be nil to use the configured list.
func (d *Detector) Detect(normalized string, candidates []string) []model.Mention {
	if normalized == "" {
		return nil
	}
	if candidates == nil {
		candidates = d.candidates
	}

	var mentions []model.Mention

	// Target first, so equal-offset ties sort target-first under the
	// stable sort below.
	targetOffsets := map[int]struct{}{}
	for _, variant := range d.targetVariants {
		for _, off := range findWholePhrase(normalized, variant) {
			// Variants can overlap at the same offset ("sunday natural"
			// and "sunday"); one mention per offset.
			if _, dup := targetOffsets[off]; dup {
				continue
			}
			targetOffsets[off] = struct{}{}
			mentions = append(mentions, model.Mention{
				Entity:     d.target,
				Normalized: d.targetNorm,
				Offset:     off,
				IsTarget:   true,
			})
		}
	}

	seenCandidates := map[string]struct{}{}
	for _, candidate := range candidates {
		norm := text.Normalize(candidate)
		if norm == "" {
			continue
		}
		if _, dup := seenCandidates[norm]; dup {
			continue
		}
		seenCandidates[norm] = struct{}{}

		if d.IsStopword(norm) || d.isTargetVariant(norm) {
			continue
		}

		for _, off := range findWholePhrase(normalized, norm) {
			mentions = append(mentions, model.Mention{
				Entity:     candidate,
				Normalized: norm,
				Offset:     off,
				IsTarget:   false,
			})
		}
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Offset < mentions[j].Offset
	})

	return mentions
}

// findWholePhrase returns the offsets of whole-word (or whole-phrase)
// occurrences of phrase in normalized text. Substring hits inside a
// larger word do not count: "sun" never matches inside "sunday".
func findWholePhrase(normalized, phrase string) []int {
	if phrase == "" {
		return nil
	}

	var offsets []int
	start := 0
	for {
		idx := strings.Index(normalized[start:], phrase)
		if idx < 0 {
			break
		}
		abs := start + idx

		// Normalized text contains only letters, digits and single
		// spaces, so a word boundary is a space or the text edge.
		boundaryBefore := abs == 0 || normalized[abs-1] == ' '
		end := abs + len(phrase)
		boundaryAfter := end == len(normalized) || normalized[end] == ' '

		if boundaryBefore && boundaryAfter {
			offsets = append(offsets, abs)
			start = end
		} else {
			start = abs + 1
		}
	}

	return offsets
}
