// Package morphan is a trainable morphological analyzer. It learns from a
// corpus of tagged words how surface forms split into prefix, stem and
// suffix, and how stems relate to their lexemes, using nothing but
// frequency counts. Untagged words are then analyzed by recombining what
// was seen in training.
package morphan

import (
	"fmt"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Word is one tagged token of a training or gold corpus.
type Word struct {
	Surface string
	Stem    string
	Lexeme  string
	Prefix  string
	Suffix  string
	Tag     Tag
}

// Segmentation returns the gold split of w.
func (w Word) Segmentation() Segmentation {
	return Segmentation{Prefix: w.Prefix, Stem: w.Stem, Suffix: w.Suffix}
}

// minChunk is the smallest share of the corpus handed to one training worker.
const minChunk = 4096

// Model holds the affix inventory and, once trained, the training index.
// A Model is safe for concurrent use; Train may run concurrently with
// Analyze, which then sees either the old or the new index.
type Model struct {
	affixes AffixInventory
	workers int

	mu  sync.RWMutex
	idx *index

	// cacheSize bounds the per-index Analyze cache; 0 disables it.
	cacheSize int

	progress func(done, total int)
}

// Option configures a Model.
type Option func(*Model)

// WithWorkers sets the number of goroutines used by Train and Test.
// n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(m *Model) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		m.workers = n
	}
}

// WithCacheSize enables an LRU cache of up to n analyzed words.
func WithCacheSize(n int) Option {
	return func(m *Model) {
		m.cacheSize = max(n, 0)
	}
}

// install attaches a fresh result cache to idx and makes it current.
// A cache lives and dies with its index, so a lookup that started on the
// previous index can never fill the new one.
func (m *Model) install(idx *index) {
	if m.cacheSize > 0 {
		cache, err := lru.New[string, []Analysis](m.cacheSize)
		if err != nil {
			panic(fmt.Sprintf("morphan: analysis cache of size %d: %v", m.cacheSize, err))
		}
		idx.cache = cache
	}
	m.mu.Lock()
	m.idx = idx
	m.mu.Unlock()
}

// WithProgress registers fn to be called as Test evaluates words.
// fn may be called from several goroutines at once.
func WithProgress(fn func(done, total int)) Option {
	return func(m *Model) { m.progress = fn }
}

// New returns an untrained model that segments words with affixes.
func New(affixes AffixInventory, opts ...Option) *Model {
	m := &Model{
		affixes: NewAffixInventory(affixes.Prefixes, affixes.Suffixes),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Affixes returns the model's affix inventory.
func (m *Model) Affixes() AffixInventory {
	return AffixInventory{
		Prefixes: append([]string(nil), m.affixes.Prefixes...),
		Suffixes: append([]string(nil), m.affixes.Suffixes...),
	}
}

// Trained reports whether Train has been called.
func (m *Model) Trained() bool {
	return m.index() != nil
}

// Train builds the training index from words, replacing any previous one.
func (m *Model) Train(words []Word) {
	m.install(buildIndex(words, m.workers))
}

func (m *Model) index() *index {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.idx
}

// buildIndex splits words into chunks, indexes them in parallel and
// merges the partial indices.
func buildIndex(words []Word, workers int) *index {
	chunks := min(max(workers, 1), max(len(words)/minChunk, 1))
	if chunks == 1 {
		idx := newIndex()
		for _, w := range words {
			idx.add(w)
		}
		idx.sort()
		return idx
	}

	parts := make([]*index, chunks)
	size := (len(words) + chunks - 1) / chunks
	var wg sync.WaitGroup
	for i := range parts {
		lo := min(i*size, len(words))
		hi := min(lo+size, len(words))
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx := newIndex()
			for _, w := range words[lo:hi] {
				idx.add(w)
			}
			parts[i] = idx
		}()
	}
	wg.Wait()

	idx := parts[0]
	for _, p := range parts[1:] {
		idx.merge(p)
	}
	idx.sort()
	return idx
}

// Stats summarizes the size of a trained index.
type Stats struct {
	CorpusSize  int `json:"corpus_size"`
	Lexemes     int `json:"lexemes"`
	Tags        int `json:"tags"`
	Patterns    int `json:"patterns"`
	PatternTags int `json:"pattern_tags"`
	StemLengths int `json:"stem_lengths"`
}

// Stats reports index sizes, or ErrNotTrained.
func (m *Model) Stats() (Stats, error) {
	idx := m.index()
	if idx == nil {
		return Stats{}, ErrNotTrained
	}
	return Stats{
		CorpusSize:  idx.corpusSize,
		Lexemes:     len(idx.lexemeFreq),
		Tags:        len(idx.tagFreq),
		Patterns:    len(idx.tagsByPattern),
		PatternTags: len(idx.patternTagFreq),
		StemLengths: len(idx.patternsByLen),
	}, nil
}

// TagFrequency returns how many training words carried t.
func (m *Model) TagFrequency(t Tag) int {
	idx := m.index()
	if idx == nil {
		return 0
	}
	return idx.tagFreq[t]
}

// LexemeFrequency returns how many training words had lexeme.
func (m *Model) LexemeFrequency(lexeme string) int {
	idx := m.index()
	if idx == nil {
		return 0
	}
	return idx.lexemeFreq[lexeme]
}
