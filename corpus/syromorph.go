// Package corpus reads the SyroMorph annotated New Testament into tagged
// word records for training and evaluating a morphan.Model.
//
// The file holds one verse per line and words separated by spaces. Each
// word is the consonantal surface form, a bar, and 23 '#'-separated
// annotation fields:
//
//	CTBA|CTBA#CTBA#CTB###0#0#0#3#1#0#2#0#0#2#0#0#2#0#0#0#0#0
//
// Fields 0–4 are strings (stem, lexeme, root, prefix, suffix), field 5 is
// the seyame flag and fields 6–22 are indices into closed enumerations.
package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/linksyr/morphan"
)

const (
	fieldStem = iota
	fieldLexeme
	fieldRoot
	fieldPrefix
	fieldSuffix
	fieldSeyame
	fieldConjugation
	fieldAspect
	fieldState
	fieldNumber
	fieldPerson
	fieldGender
	fieldPronounType
	fieldDemonstrative
	fieldNounType
	fieldNumeralType
	fieldParticipleType
	fieldCategory
	fieldSuffixContraction
	fieldSuffixGender
	fieldSuffixPerson
	fieldSuffixNumber
	fieldFeminineHeDot
	numFields
)

// firstFeature is the first enumerated annotation field.
const firstFeature = fieldConjugation

// featureSizes gives the enumeration size of fields 6–22.
var featureSizes = [numFields - firstFeature]int{
	fieldConjugation - firstFeature:       29,
	fieldAspect - firstFeature:            6,
	fieldState - firstFeature:             4,
	fieldNumber - firstFeature:            3,
	fieldPerson - firstFeature:            4,
	fieldGender - firstFeature:            4,
	fieldPronounType - firstFeature:       4,
	fieldDemonstrative - firstFeature:     3,
	fieldNounType - firstFeature:          3,
	fieldNumeralType - firstFeature:       4,
	fieldParticipleType - firstFeature:    3,
	fieldCategory - firstFeature:          9,
	fieldSuffixContraction - firstFeature: 3,
	fieldSuffixGender - firstFeature:      3,
	fieldSuffixPerson - firstFeature:      4,
	fieldSuffixNumber - firstFeature:      2,
	fieldFeminineHeDot - firstFeature:     2,
}

// Features holds the raw values of the enumerated annotation fields 6–22.
type Features [numFields - firstFeature]uint8

// Word is one annotated corpus token.
type Word struct {
	morphan.Word
	Root     string
	Seyame   int
	Features Features
	Location Location
}

// Supertag joins prefix, part of speech and suffix with '+', leaving out
// empty parts.
func (w Word) Supertag() string {
	var parts []string
	for _, p := range []string{w.Prefix, w.Tag.Category.String(), w.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "+")
}

func (w Word) String() string { return w.Surface }

// Verse is one line of the corpus.
type Verse struct {
	Label VerseLabel
	Words []Word
}

// ParseError reports a malformed corpus line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corpus line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseWord parses one "SURFACE|annotations" token, already transliterated.
func ParseWord(s string) (Word, error) {
	surface, ann, ok := strings.Cut(s, "|")
	if !ok {
		return Word{}, fmt.Errorf("word %q: missing '|'", s)
	}
	fields := strings.Split(ann, "#")
	if len(fields) != numFields {
		return Word{}, fmt.Errorf("word %q: want %d annotation fields, got %d", s, numFields, len(fields))
	}

	w := Word{Root: fields[fieldRoot]}
	w.Surface = surface
	w.Stem = fields[fieldStem]
	w.Lexeme = fields[fieldLexeme]
	w.Prefix = fields[fieldPrefix]
	w.Suffix = fields[fieldSuffix]

	seyame, err := strconv.Atoi(fields[fieldSeyame])
	if err != nil {
		return Word{}, fmt.Errorf("word %q: seyame: %w", s, err)
	}
	w.Seyame = seyame

	for i := range w.Features {
		v, err := strconv.ParseUint(fields[firstFeature+i], 10, 8)
		if err != nil {
			return Word{}, fmt.Errorf("word %q: field %d: %w", s, firstFeature+i, err)
		}
		if int(v) >= featureSizes[i] {
			return Word{}, fmt.Errorf("word %q: field %d: value %d out of range [0,%d)", s, firstFeature+i, v, featureSizes[i])
		}
		w.Features[i] = uint8(v)
	}

	tag, err := morphan.NewTag(w.Features.tag())
	if err != nil {
		return Word{}, fmt.Errorf("word %q: %w", s, err)
	}
	w.Tag = tag
	return w, nil
}

// tag projects the features onto the seven tag fields, in morphan.Tag order.
func (f Features) tag() [7]uint8 {
	return [7]uint8{
		f[fieldCategory-firstFeature],
		f[fieldConjugation-firstFeature],
		f[fieldAspect-firstFeature],
		f[fieldState-firstFeature],
		f[fieldPerson-firstFeature],
		f[fieldNumber-firstFeature],
		f[fieldGender-firstFeature],
	}
}

// Reader reads verses from a SyroMorph file.
type Reader struct {
	sc     *bufio.Scanner
	tr     Transliteration
	labels []VerseLabel
	line   int
}

// NewReader returns a Reader converting text with tr.
func NewReader(r io.Reader, tr Transliteration) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Reader{sc: sc, tr: tr, labels: verseLabels()}
}

// Read returns the next verse, or io.EOF after the last one. Lines past
// the end of the New Testament are ignored.
func (r *Reader) Read() (Verse, error) {
	if r.line >= len(r.labels) || !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Verse{}, err
		}
		return Verse{}, io.EOF
	}
	label := r.labels[r.line]
	r.line++

	tokens := strings.Fields(r.tr.Apply(r.sc.Text()))
	v := Verse{Label: label, Words: make([]Word, 0, len(tokens))}
	for i, tok := range tokens {
		w, err := ParseWord(tok)
		if err != nil {
			return Verse{}, &ParseError{Line: r.line, Err: err}
		}
		w.Location = Location{VerseLabel: label, Word: i + 1}
		v.Words = append(v.Words, w)
	}
	return v, nil
}

// ReadAll reads every verse from rd.
func ReadAll(rd io.Reader, tr Transliteration) ([]Verse, error) {
	r := NewReader(rd, tr)
	var verses []Verse
	for {
		v, err := r.Read()
		if errors.Is(err, io.EOF) {
			return verses, nil
		}
		if err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
}

// Open maps the corpus file at path and reads all of its verses.
func Open(path string, tr Transliteration) ([]Verse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer data.Unmap()

	verses, err := ReadAll(bytes.NewReader(data), tr)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return verses, nil
}

// Words flattens verses into their words, in corpus order.
func Words(verses []Verse) []Word {
	var words []Word
	for _, v := range verses {
		words = append(words, v.Words...)
	}
	return words
}
