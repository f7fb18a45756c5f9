package morphan

import (
	"slices"
	"strings"
)

// AffixInventory is the closed set of prefixes and suffixes a model may
// strip from a surface form. Both lists should contain "" when bare stems
// are possible.
type AffixInventory struct {
	Prefixes []string `yaml:"prefixes" json:"prefixes"`
	Suffixes []string `yaml:"suffixes" json:"suffixes"`
}

// NewAffixInventory returns an inventory with sorted, deduplicated copies
// of prefixes and suffixes.
func NewAffixInventory(prefixes, suffixes []string) AffixInventory {
	return AffixInventory{
		Prefixes: uniqueSorted(prefixes),
		Suffixes: uniqueSorted(suffixes),
	}
}

// Segment enumerates the segmentations of word allowed by the inventory.
func (a AffixInventory) Segment(word string) []Segmentation {
	return Segment(word, a.Prefixes, a.Suffixes)
}

// Segmentation is one way of splitting a surface form.
type Segmentation struct {
	Prefix, Stem, Suffix string
}

// Segment returns every (prefix, stem, suffix) split of word where prefix
// is in prefixes, suffix is in suffixes and the stem is not empty.
func Segment(word string, prefixes, suffixes []string) []Segmentation {
	var out []Segmentation
	for _, s := range suffixes {
		if !strings.HasSuffix(word, s) {
			continue
		}
		for _, p := range prefixes {
			if !strings.HasPrefix(word, p) || len(word) <= len(p)+len(s) {
				continue
			}
			out = append(out, Segmentation{
				Prefix: p,
				Stem:   word[len(p) : len(word)-len(s)],
				Suffix: s,
			})
		}
	}
	return out
}

func uniqueSorted(ss []string) []string {
	out := slices.Clone(ss)
	slices.Sort(out)
	return slices.Compact(out)
}
