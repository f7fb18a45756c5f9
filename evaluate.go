package morphan

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Scores tallies agreement between predicted and gold analyses.
// Each counter is independent; divide by Total for accuracy.
type Scores struct {
	// Total is the size of the gold corpus.
	Total int `json:"total"`
	// Evaluated is the number of gold words actually processed; it is
	// below Total only when Test was cancelled.
	Evaluated int `json:"evaluated"`

	Lexeme       int `json:"lexeme"`
	POS          int `json:"pos"`
	POSLexeme    int `json:"pos_lexeme"`
	Segmentation int `json:"segmentation"`
	SegLexeme    int `json:"seg_lexeme"`
	Tag          int `json:"tag"`
	Full         int `json:"full"`
}

func (s *Scores) add(o Scores) {
	s.Evaluated += o.Evaluated
	s.Lexeme += o.Lexeme
	s.POS += o.POS
	s.POSLexeme += o.POSLexeme
	s.Segmentation += o.Segmentation
	s.SegLexeme += o.SegLexeme
	s.Tag += o.Tag
	s.Full += o.Full
}

// tally compares a predicted analysis with the gold word.
func (s *Scores) tally(a Analysis, gold Word) {
	lex := a.Lexeme == gold.Lexeme
	pos := a.Tag.Category == gold.Tag.Category
	seg := a.Segmentation() == gold.Segmentation()
	tag := a.Tag == gold.Tag
	s.Lexeme += b2i(lex)
	s.POS += b2i(pos)
	s.POSLexeme += b2i(pos && lex)
	s.Segmentation += b2i(seg)
	s.SegLexeme += b2i(seg && lex)
	s.Tag += b2i(tag)
	s.Full += b2i(seg && lex && tag)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Percent returns 100*n/Total, or 0 for an empty corpus.
func (s Scores) Percent(n int) float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.Total)
}

// Report formats the seven accuracies, one per line.
func (s Scores) Report() string {
	var sb strings.Builder
	for _, row := range []struct {
		label string
		n     int
	}{
		{"Lexemes recognized:", s.Lexeme},
		{"Part of speech recognized:", s.POS},
		{"PoS and lexeme recognized:", s.POSLexeme},
		{"Segmentation recognized:", s.Segmentation},
		{"Lexemes and segmentation:", s.SegLexeme},
		{"Tags recognized:", s.Tag},
		{"All recognized:", s.Full},
	} {
		fmt.Fprintf(&sb, "%-28s%6.2f %%\n", row.label, s.Percent(row.n))
	}
	return sb.String()
}

// Test analyzes every gold word and counts how often the best analysis
// agrees with the gold annotation. Words without an analysis count only
// towards Total. When ctx is done before every word was evaluated, Test
// stops and returns the tallies so far together with ctx's cause.
func (m *Model) Test(ctx context.Context, gold []Word) (Scores, error) {
	if !m.Trained() {
		return Scores{}, ErrNotTrained
	}

	workers := max(min(m.workers, len(gold)), 1)
	jobs := make(chan Word)
	partial := make([]Scores, workers)
	errs := make([]error, workers)
	var done atomic.Int64

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range jobs {
				a, ok, err := m.Best(w.Surface)
				if err != nil {
					errs[i] = fmt.Errorf("analyze %q: %w", w.Surface, err)
					cancel()
					return
				}
				partial[i].Evaluated++
				if ok {
					partial[i].tally(a, w)
				}
				if m.progress != nil {
					m.progress(int(done.Add(1)), len(gold))
				}
			}
		}()
	}

feed:
	for _, w := range gold {
		select {
		case jobs <- w:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	scores := Scores{Total: len(gold)}
	for _, p := range partial {
		scores.add(p)
	}
	for _, err := range errs {
		if err != nil {
			return scores, err
		}
	}
	if scores.Evaluated == scores.Total {
		return scores, nil
	}
	return scores, context.Cause(ctx)
}
