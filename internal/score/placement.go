package score

import "github.com/varuntyagi83/geo-tracker/internal/model"

// PlacementScorer ranks the target brand among all mentioned entities.
type PlacementScorer struct{}

// NewPlacementScorer creates a new placement scorer.
func NewPlacementScorer() *PlacementScorer {
	return &PlacementScorer{}
}

// Rank returns the 1-based position of the target's earliest mention
// among all distinct entities ordered by earliest offset. Rank 1 means
// the brand was mentioned first. ok is false when the target does not
// appear at all.
//
// An entity only outranks the target when its earliest offset is
// strictly smaller; equal offsets (overlapping multi-word matches)
// resolve in favor of the target.
func (s *PlacementScorer) Rank(mentions []model.Mention) (rank int, ok bool) {
	targetOffset := -1
	earliest := map[string]int{}

	for _, m := range mentions {
		if m.IsTarget {
			if targetOffset < 0 || m.Offset < targetOffset {
				targetOffset = m.Offset
			}
			continue
		}
		if prev, seen := earliest[m.Normalized]; !seen || m.Offset < prev {
			earliest[m.Normalized] = m.Offset
		}
	}

	if targetOffset < 0 {
		return 0, false
	}

	rank = 1
	for _, off := range earliest {
		if off < targetOffset {
			rank++
		}
	}

	return rank, true
}
