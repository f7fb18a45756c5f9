package morphan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	got := Segment("DCTBA", []string{"", "D"}, []string{"", "A"})
	assert.ElementsMatch(t, []Segmentation{
		{"D", "CTB", "A"},
		{"", "DCTB", "A"},
		{"D", "CTBA", ""},
		{"", "DCTBA", ""},
	}, got)
}

func TestSegmentNonEmptyStem(t *testing.T) {
	got := Segment("DA", []string{"", "D"}, []string{"", "A"})
	assert.ElementsMatch(t, []Segmentation{
		{"", "DA", ""},
		{"D", "A", ""},
		{"", "D", "A"},
	}, got)

	assert.Empty(t, Segment("", []string{""}, []string{""}))
	assert.Empty(t, Segment("CTB", nil, []string{""}))
}

func TestSegmentProperties(t *testing.T) {
	prefixes := []string{"", "D", "DL", "DB", "B", "W", "WD", "L", "LD"}
	suffixes := []string{"", "J", "H", "HJ", "N", "WN", "JN", "K", "T", "A"}
	words := []string{"DCTBA", "WDLBJTHJ", "LDMLKN", "A", "DD", "BJTWN", "W"}
	for _, word := range words {
		got := Segment(word, prefixes, suffixes)
		require.LessOrEqual(t, len(got), len(prefixes)*len(suffixes))
		for _, s := range got {
			assert.Equal(t, word, s.Prefix+s.Stem+s.Suffix)
			assert.NotEmpty(t, s.Stem)
		}
	}
}

func TestNewAffixInventory(t *testing.T) {
	inv := NewAffixInventory([]string{"D", "", "D", "B"}, []string{"A", "A", ""})
	assert.Equal(t, []string{"", "B", "D"}, inv.Prefixes)
	assert.Equal(t, []string{"", "A"}, inv.Suffixes)
	assert.Len(t, inv.Segment("DCTBA"), 4)
}
