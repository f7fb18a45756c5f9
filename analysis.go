package morphan

import "strings"

// Analysis is one hypothesis about a surface form.
type Analysis struct {
	Prefix string
	Stem   string
	Suffix string
	Lexeme string
	Tag    Tag
	// Pattern is the stem→lexeme transformation that produced Lexeme.
	Pattern Pattern
	// Raw is the unnormalized score.
	Raw float64
	// Score is Raw divided by the sum of Raw over all analyses of the word.
	Score float64
}

// Segmentation returns the split proposed by a.
func (a Analysis) Segmentation() Segmentation {
	return Segmentation{Prefix: a.Prefix, Stem: a.Stem, Suffix: a.Suffix}
}

// compareAnalyses orders analyses by (prefix, stem, suffix, lexeme, tag).
// Scores are not compared.
func compareAnalyses(a, b Analysis) int {
	if c := strings.Compare(a.Prefix, b.Prefix); c != 0 {
		return c
	}
	if c := strings.Compare(a.Stem, b.Stem); c != 0 {
		return c
	}
	if c := strings.Compare(a.Suffix, b.Suffix); c != 0 {
		return c
	}
	if c := strings.Compare(a.Lexeme, b.Lexeme); c != 0 {
		return c
	}
	return compareTags(a.Tag, b.Tag)
}

// rank orders by descending score, then by compareAnalyses.
func rank(a, b Analysis) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	}
	return compareAnalyses(a, b)
}

// BestAnalysis returns the analysis with the highest score. Among equal
// top scores the first in (prefix, stem, suffix, lexeme, tag) order wins.
// ok is false when analyses holds no analysis with a positive score.
func BestAnalysis(analyses []Analysis) (best Analysis, ok bool) {
	for _, a := range analyses {
		if a.Score <= 0 {
			continue
		}
		if !ok || rank(a, best) < 0 {
			best, ok = a, true
		}
	}
	return best, ok
}
