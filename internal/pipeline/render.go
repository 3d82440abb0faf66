package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

// Renderer writes run reports as JSON and Markdown and prints the
// console summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. The footer credits the tool in
// Markdown output and can be disabled.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.RunReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.RunReport, path string) error {
	var b strings.Builder
	s := report.Summary

	fmt.Fprintf(&b, "# Brand Visibility Report: %s\n\n", s.BrandName)
	if s.RunID != "" {
		fmt.Fprintf(&b, "Run `%s`", s.RunID)
		if !s.StartedAt.IsZero() {
			fmt.Fprintf(&b, ", started %s", s.StartedAt.Format("2006-01-02 15:04 UTC"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Answers scored | %d |\n", s.TotalAnswers)
	fmt.Fprintf(&b, "| Brand mentions | %d |\n", s.BrandMentions)
	fmt.Fprintf(&b, "| Overall visibility | %.1f%% |\n", s.OverallVisibility)
	fmt.Fprintf(&b, "| Average sentiment | %+.2f |\n", s.AvgSentiment)
	fmt.Fprintf(&b, "| Average placement | %.1f |\n", s.AvgPlacement)
	fmt.Fprintf(&b, "| Grounded share | %.1f%% |\n", s.GroundedShare)
	fmt.Fprintf(&b, "| Share of voice | %.2f |\n", s.ShareOfVoice)
	b.WriteString("\n")

	if len(s.ProviderVisibility) > 0 {
		b.WriteString("## Visibility by Provider\n\n")
		b.WriteString("| Provider | Visibility |\n|---|---|\n")
		for _, provider := range sortedKeys(s.ProviderVisibility) {
			fmt.Fprintf(&b, "| %s | %.1f%% |\n", provider, s.ProviderVisibility[provider])
		}
		b.WriteString("\n")
	}

	if len(s.CompetitorVisibility) > 0 {
		b.WriteString("## Competitor Visibility\n\n")
		b.WriteString("| Competitor | Visibility |\n|---|---|\n")
		for _, name := range TopCompetitors(s, 0) {
			fmt.Fprintf(&b, "| %s | %.1f%% |\n", name, s.CompetitorVisibility[name])
		}
		b.WriteString("\n")
	}

	if len(report.Results) > 0 {
		b.WriteString("## Answers\n\n")
		for _, res := range report.Results {
			fmt.Fprintf(&b, "### %s (%s)\n\n", res.Question, res.Provider)
			if res.BrandMentioned {
				fmt.Fprintf(&b, "- Mentioned: yes (%d times)\n", res.TargetMentions)
				if res.PlacementRank != nil {
					fmt.Fprintf(&b, "- Placement: #%d\n", *res.PlacementRank)
				}
				fmt.Fprintf(&b, "- Grounded: %v\n", res.Grounded)
				if res.Sentiment != nil {
					fmt.Fprintf(&b, "- Sentiment: %+.2f\n", *res.Sentiment)
				}
			} else {
				b.WriteString("- Mentioned: no\n")
			}
			if len(res.CompetitorsMentioned) > 0 {
				fmt.Fprintf(&b, "- Competitors: %s\n", strings.Join(res.CompetitorsMentioned, ", "))
			}
			if len(res.Degraded) > 0 {
				fmt.Fprintf(&b, "- Degraded signals: %s\n", strings.Join(res.Degraded, ", "))
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by geo-tracker\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints the headline numbers to stdout.
func (r *Renderer) RenderSummary(report *model.RunReport) {
	s := report.Summary
	fmt.Printf("\nBrand: %s\n", s.BrandName)
	fmt.Printf("Answers: %d, mentions: %d\n", s.TotalAnswers, s.BrandMentions)
	fmt.Printf("Visibility: %.1f%%, sentiment: %+.2f, grounded: %.1f%%\n",
		s.OverallVisibility, s.AvgSentiment, s.GroundedShare)
	for _, provider := range sortedKeys(s.ProviderVisibility) {
		fmt.Printf("  %s: %.1f%%\n", provider, s.ProviderVisibility[provider])
	}
	if top := TopCompetitors(s, 3); len(top) > 0 {
		fmt.Printf("Top competitors: %s\n", strings.Join(top, ", "))
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
