package text

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input, folds diacritics, collapses
// punctuation to single spaces and squeezes whitespace. Idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Fold failure on odd encodings is not fatal, keep the input.
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := true // leading whitespace is dropped

	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			// Punctuation and whitespace collapse to one space.
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// StripHTML extracts visible text from an answer that contains markup,
// skipping script/style content. Plain text passes through unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				b.WriteString(t)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}

// SplitSentences splits raw (pre-normalization) text into sentences so
// that grounding can work at sentence granularity. Simple terminator
// heuristic; very short fragments are dropped.
func SplitSentences(raw string) []string {
	raw = strings.ReplaceAll(raw, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if len(s) >= 3 {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range raw {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			// Only split when followed by whitespace, to avoid
			// breaking on "sunday.de" style tokens.
			if i+1 >= len(raw) || raw[i+1] == ' ' || raw[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}
