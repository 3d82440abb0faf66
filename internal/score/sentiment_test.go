package score

import (
	"strings"
	"testing"

	"github.com/varuntyagi83/geo-tracker/internal/text"
)

// offsetsOf returns the offsets of every whole-word occurrence of
// phrase in normalized text, for driving the analyzer in tests.
func offsetsOf(normalized, phrase string) []int {
	return findWhole(normalized, phrase)
}

func TestSentiment_PositiveCue(t *testing.T) {
	a := NewSentimentAnalyzer(10)

	norm := text.Normalize("Sunday Natural offers the best vitamin D drops in Germany.")
	offsets := offsetsOf(norm, "sunday natural")

	score, defined := a.Score(norm, offsets)
	if !defined {
		t.Fatal("expected defined sentiment")
	}
	if score <= 0 {
		t.Errorf("expected positive sentiment for 'best', got %f", score)
	}
}

func TestSentiment_NegativeCue(t *testing.T) {
	a := NewSentimentAnalyzer(10)

	norm := text.Normalize("Sunday Natural has overpriced and unreliable products.")
	offsets := offsetsOf(norm, "sunday natural")

	score, defined := a.Score(norm, offsets)
	if !defined {
		t.Fatal("expected defined sentiment")
	}
	if score >= 0 {
		t.Errorf("expected negative sentiment, got %f", score)
	}
}

func TestSentiment_NeutralFromCancellation(t *testing.T) {
	a := NewSentimentAnalyzer(10)

	norm := text.Normalize("Sunday Natural is excellent but expensive.")
	offsets := offsetsOf(norm, "sunday natural")

	score, defined := a.Score(norm, offsets)
	if !defined {
		t.Fatal("expected defined sentiment: 0.0 from cancellation is a real value")
	}
	if score != 0 {
		t.Errorf("expected exact cancellation to 0.0, got %f", score)
	}
}

func TestSentiment_UndefinedWithoutMentions(t *testing.T) {
	a := NewSentimentAnalyzer(10)

	norm := text.Normalize("The best shops are excellent.")
	if _, defined := a.Score(norm, nil); defined {
		t.Error("expected undefined sentiment with no mention offsets")
	}
	if _, defined := a.Score("", []int{0}); defined {
		t.Error("expected undefined sentiment for empty text")
	}
}

func TestSentiment_Bounds(t *testing.T) {
	a := NewSentimentAnalyzer(10)

	// Stack far more cues than the saturation midpoint.
	norm := text.Normalize("Sunday Natural is excellent amazing outstanding perfect superior wonderful trusted reliable best great")
	offsets := offsetsOf(norm, "sunday natural")

	score, defined := a.Score(norm, offsets)
	if !defined {
		t.Fatal("expected defined sentiment")
	}
	if score < -1.0 || score > 1.0 {
		t.Errorf("sentiment out of bounds: %f", score)
	}
	if score < 0.9 {
		t.Errorf("expected strong saturation near 1.0, got %f", score)
	}
}

func TestSentiment_WindowLimitsContext(t *testing.T) {
	a := NewSentimentAnalyzer(3)

	// The negative cue sits far outside a 3-word window.
	far := strings.Repeat("neutral filler words here ", 5)
	norm := text.Normalize("Sunday Natural ships quickly " + far + " terrible awful")
	offsets := offsetsOf(norm, "sunday natural")

	score, defined := a.Score(norm, offsets)
	if !defined {
		t.Fatal("expected defined sentiment")
	}
	if score < 0 {
		t.Errorf("cues outside the window must not affect the score, got %f", score)
	}
}

func TestSentiment_MeanAcrossMentions(t *testing.T) {
	a := NewSentimentAnalyzer(2)

	// Two disjoint windows with opposite, equally strong cue balance.
	norm := text.Normalize("Excellent amazing Sunday Natural products. Unrelated filler words across many tokens go here. Terrible awful Sunday Natural items.")
	offsets := offsetsOf(norm, "sunday natural")
	if len(offsets) != 2 {
		t.Fatalf("expected 2 mention offsets, got %d", len(offsets))
	}

	score, defined := a.Score(norm, offsets)
	if !defined {
		t.Fatal("expected defined sentiment")
	}
	if score != 0 {
		t.Errorf("expected mean of opposing mentions to be 0.0, got %f", score)
	}
}
