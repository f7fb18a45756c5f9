package morphan

import (
	"slices"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// patternTag keys the pattern/tag co-occurrence counts.
type patternTag struct {
	Pattern Pattern
	Tag     Tag
}

// index holds everything learned from one training corpus.
// It is built by Train and never modified afterwards.
type index struct {
	// corpusSize is the number of training words, the denominator of
	// every frequency estimate.
	corpusSize int

	// lexemeFreq maps lexeme → occurrence count.
	lexemeFreq map[string]int

	// tagFreq maps tag → occurrence count. Not used for scoring.
	tagFreq map[Tag]int

	// patternTagFreq maps (pattern, tag) → co-occurrence count.
	patternTagFreq map[patternTag]int

	// tagsByPattern maps pattern → every tag seen with it, sorted.
	tagsByPattern map[Pattern][]Tag

	// lexemesByTag maps tag → set of lexemes seen with it.
	lexemesByTag map[Tag]map[string]struct{}

	// patternsByLen maps stem length in runes → patterns derived from
	// stems of that length, sorted.
	patternsByLen map[int][]Pattern

	// cache memoizes Analyze per surface form; nil when disabled.
	cache *lru.Cache[string, []Analysis]
}

func newIndex() *index {
	return &index{
		lexemeFreq:     make(map[string]int),
		tagFreq:        make(map[Tag]int),
		patternTagFreq: make(map[patternTag]int),
		tagsByPattern:  make(map[Pattern][]Tag),
		lexemesByTag:   make(map[Tag]map[string]struct{}),
		patternsByLen:  make(map[int][]Pattern),
	}
}

// add records one training word.
func (x *index) add(w Word) {
	p := DerivePattern(w.Stem, w.Lexeme)
	x.corpusSize++
	x.lexemeFreq[w.Lexeme]++
	x.tagFreq[w.Tag]++
	x.addLexeme(w.Tag, w.Lexeme)
	if _, seen := x.tagsByPattern[p]; !seen {
		n := utf8.RuneCountInString(w.Stem)
		x.patternsByLen[n] = append(x.patternsByLen[n], p)
	}
	x.addPatternTag(patternTag{p, w.Tag}, 1)
}

func (x *index) addLexeme(t Tag, lexeme string) {
	set, ok := x.lexemesByTag[t]
	if !ok {
		set = make(map[string]struct{})
		x.lexemesByTag[t] = set
	}
	set[lexeme] = struct{}{}
}

func (x *index) addPatternTag(pt patternTag, n int) {
	if x.patternTagFreq[pt] == 0 {
		x.tagsByPattern[pt.Pattern] = append(x.tagsByPattern[pt.Pattern], pt.Tag)
	}
	x.patternTagFreq[pt] += n
}

// merge folds o into x. Every update is a counter sum or a set union, so
// the merge order of partial indices does not matter.
func (x *index) merge(o *index) {
	x.corpusSize += o.corpusSize
	for lex, n := range o.lexemeFreq {
		x.lexemeFreq[lex] += n
	}
	for t, n := range o.tagFreq {
		x.tagFreq[t] += n
	}
	for t, set := range o.lexemesByTag {
		for lex := range set {
			x.addLexeme(t, lex)
		}
	}
	for n, patterns := range o.patternsByLen {
		for _, p := range patterns {
			if _, seen := x.tagsByPattern[p]; !seen {
				x.patternsByLen[n] = append(x.patternsByLen[n], p)
				// reserve the key so the pattern is not listed twice
				x.tagsByPattern[p] = nil
			}
		}
	}
	for pt, n := range o.patternTagFreq {
		x.addPatternTag(pt, n)
	}
}

// sort puts every slice in a fixed order so that analysis does not depend
// on map iteration order.
func (x *index) sort() {
	for _, patterns := range x.patternsByLen {
		slices.SortFunc(patterns, func(a, b Pattern) int { return strings.Compare(string(a), string(b)) })
	}
	for _, tags := range x.tagsByPattern {
		slices.SortFunc(tags, compareTags)
	}
}

func (x *index) attested(t Tag, lexeme string) bool {
	_, ok := x.lexemesByTag[t][lexeme]
	return ok
}

// score is the product of the lexeme and pattern/tag relative frequencies.
// It only ranks the analyses of one word; it is not a joint probability.
func (x *index) score(lexeme string, pt patternTag) float64 {
	n := float64(x.corpusSize)
	return float64(x.lexemeFreq[lexeme]) / n * float64(x.patternTagFreq[pt]) / n
}
