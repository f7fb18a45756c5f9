package morphan

import (
	"slices"
	"unicode/utf8"
)

// Analyze returns every analysis of word supported by the training data,
// best first. A word with no analysis yields an empty result and no error.
func (m *Model) Analyze(word string) ([]Analysis, error) {
	idx := m.index()
	if idx == nil {
		return nil, ErrNotTrained
	}
	if idx.cache != nil {
		if cached, ok := idx.cache.Get(word); ok {
			return slices.Clone(cached), nil
		}
	}
	analyses, err := m.analyze(idx, word)
	if err != nil {
		return nil, err
	}
	if idx.cache != nil {
		idx.cache.Add(word, slices.Clone(analyses))
	}
	return analyses, nil
}

// analyze is the uncached search:
//  1. split word with every prefix/suffix pair of the inventory
//  2. try each pattern learned from stems of the same length
//  3. keep each tag of the pattern whose lexeme set contains the result
func (m *Model) analyze(idx *index, word string) ([]Analysis, error) {
	var analyses []Analysis
	for _, seg := range m.affixes.Segment(word) {
		for _, p := range idx.patternsByLen[utf8.RuneCountInString(seg.Stem)] {
			lexeme, ok, err := ApplyPattern(seg.Stem, p)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			for _, t := range idx.tagsByPattern[p] {
				if !idx.attested(t, lexeme) {
					continue
				}
				analyses = append(analyses, Analysis{
					Prefix:  seg.Prefix,
					Stem:    seg.Stem,
					Suffix:  seg.Suffix,
					Lexeme:  lexeme,
					Tag:     t,
					Pattern: p,
					Raw:     idx.score(lexeme, patternTag{p, t}),
				})
			}
		}
	}
	if len(analyses) == 0 {
		return nil, nil
	}
	normalizeAnalyses(analyses)
	slices.SortFunc(analyses, rank)
	return analyses, nil
}

// Best analyzes word and returns its best analysis; ok is false when the
// word has none.
func (m *Model) Best(word string) (a Analysis, ok bool, err error) {
	analyses, err := m.Analyze(word)
	if err != nil {
		return Analysis{}, false, err
	}
	a, ok = BestAnalysis(analyses)
	return a, ok, nil
}
