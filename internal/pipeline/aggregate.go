package pipeline

import (
	"sort"
	"time"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

// Summarize reduces the results of one run into a RunSummary. It is a
// pure function of its inputs: no clock reads, no randomness, so the
// same results always produce the same summary. Every ratio over an
// empty denominator reports 0.0 rather than NaN.
func Summarize(runID, brand string, startedAt time.Time, results []model.AnswerResult) model.RunSummary {
	summary := model.RunSummary{
		RunID:                runID,
		BrandName:            brand,
		StartedAt:            startedAt,
		TotalAnswers:         len(results),
		ProviderVisibility:   map[string]float64{},
		CompetitorVisibility: map[string]float64{},
	}
	if len(results) == 0 {
		return summary
	}

	providerTotal := map[string]int{}
	providerHits := map[string]int{}
	competitorHits := map[string]int{}

	var sentimentSum float64
	var sentimentCount int
	var placementSum int
	var placementCount int
	var groundedCount int
	var voiceSum float64
	var voiceCount int

	for _, r := range results {
		providerTotal[r.Provider]++
		if r.BrandMentioned {
			summary.BrandMentions++
			providerHits[r.Provider]++
			if r.Grounded {
				groundedCount++
			}
		}
		if r.Sentiment != nil {
			sentimentSum += *r.Sentiment
			sentimentCount++
		}
		if r.PlacementRank != nil {
			placementSum += *r.PlacementRank
			placementCount++
		}
		for _, c := range r.CompetitorsMentioned {
			competitorHits[c]++
		}
		if total := r.TargetMentions + r.CompetitorMentions; total > 0 {
			voiceSum += float64(r.TargetMentions) / float64(total)
			voiceCount++
		}
	}

	summary.OverallVisibility = percent(summary.BrandMentions, len(results))
	if sentimentCount > 0 {
		summary.AvgSentiment = sentimentSum / float64(sentimentCount)
	}
	if placementCount > 0 {
		summary.AvgPlacement = float64(placementSum) / float64(placementCount)
	}
	summary.GroundedShare = percent(groundedCount, summary.BrandMentions)
	if voiceCount > 0 {
		summary.ShareOfVoice = voiceSum / float64(voiceCount)
	}

	for provider, total := range providerTotal {
		summary.ProviderVisibility[provider] = percent(providerHits[provider], total)
	}
	// Competitor visibility is measured against the whole run, not just
	// answers where the competitor's provider was asked.
	for competitor, hits := range competitorHits {
		summary.CompetitorVisibility[competitor] = percent(hits, len(results))
	}

	return summary
}

// TopCompetitors returns competitor names ordered by descending
// visibility, ties broken alphabetically, at most limit entries.
func TopCompetitors(summary model.RunSummary, limit int) []string {
	names := make([]string, 0, len(summary.CompetitorVisibility))
	for name := range summary.CompetitorVisibility {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		vi, vj := summary.CompetitorVisibility[names[i]], summary.CompetitorVisibility[names[j]]
		if vi != vj {
			return vi > vj
		}
		return names[i] < names[j]
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

func percent(hits, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return 100.0 * float64(hits) / float64(total)
}
