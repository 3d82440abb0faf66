package score

import "strings"

// Polarity cue lexicons. Deliberately small and generic: the analyzer
// is a deterministic heuristic over word lists, not a classifier.

var defaultPositiveCues = strings.Fields(`
accurate affordable amazing appreciated award balanced beloved best
better bioavailable certified clean clear comfortable convenient
dependable effective efficient enjoyable established excellent
exceptional fair famous fast favorite favourite flawless fresh friendly
generous gentle good great healthy helpful ideal impeccable
impressive innovative leading loved loyal outstanding perfect pleasant
popular positive powerful praised precise preferred premium pure
quality recommended refreshing reliable renowned reputable respected
rigorous robust safe satisfied secure smooth solid strong succeeded
successful superior tasty terrific thorough top transparent trusted
trustworthy valuable vegan verified wholesome winning wonderful
`)

var defaultNegativeCues = strings.Fields(`
avoid awful bad banned broken cheap complaint complaints concerning
contaminated costly critical criticized deceptive defective
disappointed disappointing dirty dishonest doubtful expensive failed
failing fake faulty flawed fraudulent harmful harsh inaccurate
inadequate inconsistent ineffective inferior insufficient lacking
lawsuit limited mediocre misleading missing negative outdated overhyped
overpriced poor problem problematic problems questionable recalled
refund rejected risky scam shady slow struggled struggling subpar sued
terrible toxic unclear underwhelming unhealthy unknown unproven
unreliable unsafe untested untrustworthy weak worse worst worthless
`)

// buildLexicon turns a word list into a lookup set.
func buildLexicon(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
