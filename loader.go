package morphan

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// modelMagic starts every saved model file.
const modelMagic = "MRP1"

// snapshot is the serialized form of a trained model.
type snapshot struct {
	Affixes     AffixInventory
	CorpusSize  int
	Lexemes     []lexemeCount
	Tags        []tagCount
	PatternTags []patternTagCount
	Attested    []tagLexemes
}

type lexemeCount struct {
	Lexeme string
	N      int
}

type tagCount struct {
	Tag Tag
	N   int
}

type patternTagCount struct {
	Pattern Pattern
	Tag     Tag
	N       int
}

type tagLexemes struct {
	Tag     Tag
	Lexemes []string
}

// Save writes the trained model to w: a magic header followed by a
// gzip-compressed gob stream.
func (m *Model) Save(w io.Writer) error {
	idx := m.index()
	if idx == nil {
		return ErrNotTrained
	}
	if _, err := io.WriteString(w, modelMagic); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	zw := gzip.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(takeSnapshot(m.affixes, idx)); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress model: %w", err)
	}
	return nil
}

// SaveFile writes the trained model to path.
func (m *Model) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := m.Save(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a model written by Save. opts configure the returned model
// the same way as for New; the affix inventory comes from the file.
func Load(r io.Reader, opts ...Option) (*Model, error) {
	header := make([]byte, len(modelMagic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if string(header) != modelMagic {
		return nil, errors.New("morphan: not a model file")
	}
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decompress model: %w", err)
	}
	defer zr.Close()

	var snap snapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	idx, err := snap.index()
	if err != nil {
		return nil, err
	}
	m := New(snap.Affixes, opts...)
	m.install(idx)
	return m, nil
}

// LoadFile maps path read-only and decodes the model from it.
func LoadFile(path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer data.Unmap()

	m, err := Load(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

func takeSnapshot(affixes AffixInventory, idx *index) *snapshot {
	snap := &snapshot{
		Affixes:    affixes,
		CorpusSize: idx.corpusSize,
	}
	for lex, n := range idx.lexemeFreq {
		snap.Lexemes = append(snap.Lexemes, lexemeCount{lex, n})
	}
	slices.SortFunc(snap.Lexemes, func(a, b lexemeCount) int { return strings.Compare(a.Lexeme, b.Lexeme) })

	for t, n := range idx.tagFreq {
		snap.Tags = append(snap.Tags, tagCount{t, n})
	}
	slices.SortFunc(snap.Tags, func(a, b tagCount) int { return compareTags(a.Tag, b.Tag) })

	for pt, n := range idx.patternTagFreq {
		snap.PatternTags = append(snap.PatternTags, patternTagCount{pt.Pattern, pt.Tag, n})
	}
	slices.SortFunc(snap.PatternTags, func(a, b patternTagCount) int {
		if c := strings.Compare(string(a.Pattern), string(b.Pattern)); c != 0 {
			return c
		}
		return compareTags(a.Tag, b.Tag)
	})

	for t, set := range idx.lexemesByTag {
		lexemes := make([]string, 0, len(set))
		for lex := range set {
			lexemes = append(lexemes, lex)
		}
		slices.Sort(lexemes)
		snap.Attested = append(snap.Attested, tagLexemes{t, lexemes})
	}
	slices.SortFunc(snap.Attested, func(a, b tagLexemes) int { return compareTags(a.Tag, b.Tag) })
	return snap
}

// index rebuilds the training index. Patterns are checked on the way in,
// so a damaged file fails here rather than during analysis.
func (s *snapshot) index() (*index, error) {
	idx := newIndex()
	idx.corpusSize = s.CorpusSize
	for _, lc := range s.Lexemes {
		idx.lexemeFreq[lc.Lexeme] = lc.N
	}
	for _, tc := range s.Tags {
		idx.tagFreq[tc.Tag] = tc.N
	}
	for _, tl := range s.Attested {
		for _, lex := range tl.Lexemes {
			idx.addLexeme(tl.Tag, lex)
		}
	}
	for _, ptc := range s.PatternTags {
		if _, seen := idx.tagsByPattern[ptc.Pattern]; !seen {
			n, err := ptc.Pattern.SourceLen()
			if err != nil {
				return nil, fmt.Errorf("decode model: %w", err)
			}
			idx.patternsByLen[n] = append(idx.patternsByLen[n], ptc.Pattern)
		}
		idx.addPatternTag(patternTag{ptc.Pattern, ptc.Tag}, ptc.N)
	}
	idx.sort()
	return idx, nil
}
