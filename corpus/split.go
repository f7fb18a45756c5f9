package corpus

import (
	"github.com/linksyr/morphan"
)

// Tagged strips corpus-specific annotations, leaving the records a
// morphan.Model trains and tests on.
func Tagged(words []Word) []morphan.Word {
	out := make([]morphan.Word, len(words))
	for i, w := range words {
		out[i] = w.Word
	}
	return out
}

// Affixes collects the prefixes and suffixes observed in words. The empty
// affix is always included.
func Affixes(words []morphan.Word) morphan.AffixInventory {
	prefixes := []string{""}
	suffixes := []string{""}
	for _, w := range words {
		prefixes = append(prefixes, w.Prefix)
		suffixes = append(suffixes, w.Suffix)
	}
	return morphan.NewAffixInventory(prefixes, suffixes)
}

// Split returns the first ratio of words for training and the rest for
// testing. ratio is clamped to [0, 1].
func Split(words []morphan.Word, ratio float64) (train, test []morphan.Word) {
	ratio = min(max(ratio, 0), 1)
	n := int(float64(len(words)) * ratio)
	return words[:n], words[n:]
}
