package llm

import (
	"regexp"
	"strings"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://[^\s\)\]]+`)
)

// maxExtractedSources caps fallback extraction so a link-farm answer
// does not flood the citation list.
const maxExtractedSources = 10

// ExtractSources pulls citations out of an answer's text. Markdown
// links contribute URL and title; bare URLs contribute URL only.
// Providers without a structured citation channel rely on this.
func ExtractSources(text string) []model.Citation {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var citations []model.Citation

	add := func(url, title string) {
		url = strings.TrimRight(url, ".,;:!?")
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		citations = append(citations, model.Citation{URL: url, Title: title})
	}

	for _, m := range markdownLinkPattern.FindAllStringSubmatch(text, -1) {
		add(m[2], strings.TrimSpace(m[1]))
		if len(citations) >= maxExtractedSources {
			return citations
		}
	}

	for _, url := range bareURLPattern.FindAllString(text, -1) {
		add(url, "")
		if len(citations) >= maxExtractedSources {
			break
		}
	}

	return citations
}
