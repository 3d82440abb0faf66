package score

import (
	"testing"

	"github.com/varuntyagi83/geo-tracker/internal/model"
)

func TestGrounding_EmptyCitations(t *testing.T) {
	checker := NewGroundingChecker(4)

	grounded := checker.Grounded("Sunday Natural makes the best drops.", []string{"sunday natural"}, nil)
	if grounded {
		t.Error("expected grounded == false with no citations")
	}

	grounded = checker.Grounded("Sunday Natural makes the best drops.", []string{"sunday natural"}, []model.Citation{})
	if grounded {
		t.Error("expected grounded == false with empty citation list")
	}
}

func TestGrounding_TitleOverlap(t *testing.T) {
	checker := NewGroundingChecker(4)

	raw := "Sunday Natural sells vitamin drops. Other shops exist too."
	citations := []model.Citation{
		{URL: "https://example.org/a", Title: "Best vitamin supplements compared"},
	}

	if !checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("expected title token 'vitamin' to ground the mention sentence")
	}
}

func TestGrounding_URLOverlap(t *testing.T) {
	checker := NewGroundingChecker(4)

	raw := "Sunday Natural sells vitamin drops."
	citations := []model.Citation{
		{URL: "https://warentest.example/vitamin-d-test"},
	}

	if !checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("expected URL token 'vitamin' to ground the mention")
	}
}

func TestGrounding_NoOverlap(t *testing.T) {
	checker := NewGroundingChecker(4)

	raw := "Sunday Natural sells good drops."
	citations := []model.Citation{
		{URL: "https://example.org/weather", Title: "Tomorrow forecast rainfall"},
	}

	if checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("expected no grounding without token overlap")
	}
}

func TestGrounding_SchemeTokenNeverCounts(t *testing.T) {
	checker := NewGroundingChecker(4)

	// "https" appears in the sentence and in every URL; it must not
	// count as evidence overlap.
	raw := "Sunday Natural has a https shop."
	citations := []model.Citation{
		{URL: "https://unrelated.example/page"},
	}

	if checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("URL scheme must not ground a mention")
	}
}

func TestGrounding_StructuredLinkage(t *testing.T) {
	checker := NewGroundingChecker(4)

	// No token overlap, but the provider marks citation 0 as
	// supporting sentence 1.
	raw := "Many shops exist. Sunday Natural is one option."
	citations := []model.Citation{
		{URL: "https://example.org/zzz", SentenceRefs: []int{1}},
	}

	if !checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("expected structured sentence linkage to ground the mention")
	}
}

func TestGrounding_DomainVariantMention(t *testing.T) {
	checker := NewGroundingChecker(4)

	// The brand appears only in its joined domain form; the variant set
	// must carry it, the full phrase alone never matches here.
	raw := "Check sundaynatural.com for vitamin pricing."
	variants := []string{"sunday natural", "sunday", "sundaynatural"}
	citations := []model.Citation{
		{URL: "https://sundaynatural.com/vitamins"},
	}

	if !checker.Grounded(raw, variants, citations) {
		t.Error("expected joined-form variant mention to be grounded by its domain citation")
	}
	if checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("full phrase alone must not match the joined form; the variant set carries it")
	}
}

func TestGrounding_MentionOutsideCitedSentence(t *testing.T) {
	checker := NewGroundingChecker(4)

	// Citation overlaps a sentence that does not contain the target.
	raw := "Vitamin research is advancing. Sunday Natural was founded in Berlin."
	citations := []model.Citation{
		{URL: "https://example.org/x", Title: "Vitamin research news"},
	}

	if checker.Grounded(raw, []string{"sunday natural"}, citations) {
		t.Error("overlap with a non-mention sentence must not ground the brand")
	}
}

func TestGrounding_EmptyText(t *testing.T) {
	checker := NewGroundingChecker(4)
	citations := []model.Citation{{URL: "https://example.org", Title: "anything"}}

	if checker.Grounded("", []string{"sunday natural"}, citations) {
		t.Error("expected grounded == false for empty text")
	}
}
