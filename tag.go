package morphan

import (
	"fmt"
	"strings"
)

// Category is the grammatical category (part of speech).
type Category uint8

// Conjugation is the verbal conjugation (stem formation).
type Conjugation uint8

// Aspect is the verbal aspect.
type Aspect uint8

// State is the nominal state.
type State uint8

// Person is the grammatical person.
type Person uint8

// Number is the grammatical number.
type Number uint8

// Gender is the grammatical gender.
type Gender uint8

var (
	categoryNames = []string{
		"verb", "participle", "noun", "pronoun", "numeral",
		"adjective", "particle", "adverb", "idiom",
	}
	conjugationNames = []string{
		"n/a", "peal", "ethpeal", "pael", "ethpael", "aphel", "ettaphal",
		"shaphel", "eshtaphal", "saphel", "estaphal", "pauel", "ethpaual",
		"paiel", "ethpaial", "palpal", "ethpalpal", "palpel", "ethpalpal2",
		"pamel", "ethpamel", "parel", "ethparal", "pali", "ethpali",
		"pahli", "ethpahli", "taphel", "ethaphal",
	}
	aspectNames = []string{
		"n/a", "perfect", "imperfect", "imperative", "infinitive", "participle",
	}
	stateNames  = []string{"n/a", "absolute", "construct", "emphatic"}
	personNames = []string{"n/a", "first", "second", "third"}
	numberNames = []string{"n/a", "singular", "plural"}
	genderNames = []string{"n/a", "common", "masculine", "feminine"}
)

func (v Category) String() string    { return enumName(categoryNames, uint8(v)) }
func (v Conjugation) String() string { return enumName(conjugationNames, uint8(v)) }
func (v Aspect) String() string      { return enumName(aspectNames, uint8(v)) }
func (v State) String() string       { return enumName(stateNames, uint8(v)) }
func (v Person) String() string      { return enumName(personNames, uint8(v)) }
func (v Number) String() string      { return enumName(numberNames, uint8(v)) }
func (v Gender) String() string      { return enumName(genderNames, uint8(v)) }

// Tag is the seven-field grammatical analysis of a word. Tags are
// comparable and are used directly as map keys.
type Tag struct {
	Category    Category
	Conjugation Conjugation
	Aspect      Aspect
	State       State
	Person      Person
	Number      Number
	Gender      Gender
}

// TagField describes one of the seven tag fields and its closed value set.
type TagField struct {
	Name   string
	Values []string
}

// TagFields lists the tag fields in Tag order.
var TagFields = []TagField{
	{"grammatical_category", categoryNames},
	{"verbal_conjugation", conjugationNames},
	{"aspect", aspectNames},
	{"state", stateNames},
	{"person", personNames},
	{"number", numberNames},
	{"gender", genderNames},
}

// Values returns the raw field values in Tag order.
func (t Tag) Values() [7]uint8 {
	return [7]uint8{
		uint8(t.Category), uint8(t.Conjugation), uint8(t.Aspect),
		uint8(t.State), uint8(t.Person), uint8(t.Number), uint8(t.Gender),
	}
}

// NewTag builds a Tag from raw field values in Tag order, checking each
// against its enumeration.
func NewTag(v [7]uint8) (Tag, error) {
	for i, f := range TagFields {
		if int(v[i]) >= len(f.Values) {
			return Tag{}, fmt.Errorf("%s: value %d out of range [0,%d)", f.Name, v[i], len(f.Values))
		}
	}
	return Tag{
		Category:    Category(v[0]),
		Conjugation: Conjugation(v[1]),
		Aspect:      Aspect(v[2]),
		State:       State(v[3]),
		Person:      Person(v[4]),
		Number:      Number(v[5]),
		Gender:      Gender(v[6]),
	}, nil
}

// String renders the tag as "|"-separated value names, e.g.
// "noun|n/a|n/a|emphatic|n/a|singular|masculine".
func (t Tag) String() string {
	v := t.Values()
	parts := make([]string, len(v))
	for i, f := range TagFields {
		parts[i] = enumName(f.Values, v[i])
	}
	return strings.Join(parts, tagSeparator)
}

const tagSeparator = "|"

// ParseTag parses the output of Tag.String.
func ParseTag(s string) (Tag, error) {
	parts := strings.Split(s, tagSeparator)
	if len(parts) != len(TagFields) {
		return Tag{}, fmt.Errorf("parse tag %q: want %d fields, got %d", s, len(TagFields), len(parts))
	}
	var v [7]uint8
	for i, f := range TagFields {
		idx := -1
		for j, name := range f.Values {
			if name == parts[i] {
				idx = j
				break
			}
		}
		if idx < 0 {
			return Tag{}, fmt.Errorf("parse tag %q: unknown %s %q", s, f.Name, parts[i])
		}
		v[i] = uint8(idx)
	}
	return NewTag(v)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(b []byte) error {
	parsed, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("?%d", v)
}

// compareTags orders tags field by field.
func compareTags(a, b Tag) int {
	av, bv := a.Values(), b.Values()
	for i := range av {
		if av[i] != bv[i] {
			if av[i] < bv[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
