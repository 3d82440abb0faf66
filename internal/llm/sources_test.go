package llm

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractSources_MarkdownLinks(t *testing.T) {
	text := "See [Vitamin D test results](https://warentest.example/vitamin-d) for details."

	citations := ExtractSources(text)
	if len(citations) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(citations))
	}
	if citations[0].URL != "https://warentest.example/vitamin-d" {
		t.Errorf("unexpected URL: %s", citations[0].URL)
	}
	if citations[0].Title != "Vitamin D test results" {
		t.Errorf("expected link text as title, got %q", citations[0].Title)
	}
}

func TestExtractSources_BareURLs(t *testing.T) {
	text := "More info at https://example.org/drops. Also https://example.org/other"

	citations := ExtractSources(text)
	if len(citations) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(citations))
	}
	if citations[0].URL != "https://example.org/drops" {
		t.Errorf("trailing punctuation must be stripped, got %s", citations[0].URL)
	}
	if citations[0].Title != "" {
		t.Errorf("bare URL must have no title, got %q", citations[0].Title)
	}
}

func TestExtractSources_MarkdownAndBareDeduplicated(t *testing.T) {
	// The markdown link's URL also matches the bare pattern; it must
	// appear once, with its title.
	text := "[Study](https://example.org/study) and plain https://example.org/study again."

	citations := ExtractSources(text)
	if len(citations) != 1 {
		t.Fatalf("expected 1 deduplicated citation, got %d", len(citations))
	}
	if citations[0].Title != "Study" {
		t.Errorf("markdown title must win, got %q", citations[0].Title)
	}
}

func TestExtractSources_Empty(t *testing.T) {
	if got := ExtractSources(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
	if got := ExtractSources("no links in this answer"); got != nil {
		t.Errorf("expected nil without URLs, got %v", got)
	}
}

func TestExtractSources_Capped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "https://example.org/page-%d ", i)
	}

	citations := ExtractSources(b.String())
	if len(citations) != maxExtractedSources {
		t.Errorf("expected cap at %d citations, got %d", maxExtractedSources, len(citations))
	}
}
