package text

import "strings"

// Token is a word in normalized text together with its character
// offset, so that scorers can map mention offsets to word positions.
type Token struct {
	Word   string
	Offset int
}

// Tokenize splits normalized text into tokens with offsets. Input is
// expected to already be normalized (single spaces, no punctuation).
func Tokenize(normalized string) []Token {
	var tokens []Token
	start := -1

	for i, r := range normalized {
		if r == ' ' {
			if start >= 0 {
				tokens = append(tokens, Token{Word: normalized[start:i], Offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Word: normalized[start:], Offset: start})
	}

	return tokens
}

// Words returns just the token words of normalized text.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}

// WordIndexAt returns the index of the token containing the given
// character offset, or the nearest preceding token. Returns -1 when
// there are no tokens.
func WordIndexAt(tokens []Token, offset int) int {
	idx := -1
	for i, tok := range tokens {
		if tok.Offset > offset {
			break
		}
		idx = i
	}
	return idx
}

// SignificantTokens returns lowercase tokens of at least minLen runes,
// splitting on any non-alphanumeric rune. Used for citation overlap.
func SignificantTokens(s string, minLen int) []string {
	var out []string
	var current strings.Builder

	flush := func() {
		if current.Len() >= minLen {
			out = append(out, strings.ToLower(current.String()))
		}
		current.Reset()
	}

	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return out
}
