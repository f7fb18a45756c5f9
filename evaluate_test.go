package morphan

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestNotTrained(t *testing.T) {
	_, err := New(testAffixes).Test(context.Background(), testCorpus())
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestTestUnanalyzable(t *testing.T) {
	m := trainedModel(t, testCorpus())
	gold := []Word{
		noun("QQQQQQQ", "", "QQQQQQQ", "", "QQQQQQQ"),
		verb("ZBN", "", "ZBN", "", "ZBN"),
	}
	got, err := m.Test(context.Background(), gold)
	require.NoError(t, err)
	assert.Equal(t, Scores{Total: 2, Evaluated: 2}, got)
}

func TestTestEmptyGold(t *testing.T) {
	m := trainedModel(t, testCorpus())
	got, err := m.Test(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, Scores{}, got)
	assert.Equal(t, 0.0, got.Percent(got.Full))
}

func TestTestPerfect(t *testing.T) {
	m := trainedModel(t, testCorpus())
	gold := []Word{
		noun("CTBA", "", "CTBA", "", "CTBA"),
		verb("DCTB", "D", "CTB", "", "CTB"),
	}
	got, err := m.Test(context.Background(), gold)
	require.NoError(t, err)
	assert.Equal(t, Scores{
		Total: 2, Evaluated: 2,
		Lexeme: 2, POS: 2, POSLexeme: 2,
		Segmentation: 2, SegLexeme: 2,
		Tag: 2, Full: 2,
	}, got)
}

func TestTestIndependentCounters(t *testing.T) {
	m := trainedModel(t, testCorpus())

	plural := tagNoun
	plural.Number = 2
	gold := []Word{
		// only the number differs from the best analysis
		{Surface: "CTBA", Stem: "CTBA", Lexeme: "CTBA", Tag: plural},
		// right lexeme and tag, wrong segmentation
		{Surface: "DCTB", Prefix: "", Stem: "DCTB", Lexeme: "CTB", Tag: tagVerb},
		// right segmentation only
		{Surface: "CTBA", Stem: "CTBA", Lexeme: "KTB", Tag: tagVerb},
	}
	got, err := m.Test(context.Background(), gold)
	require.NoError(t, err)
	assert.Equal(t, Scores{
		Total:        3,
		Evaluated:    3,
		Lexeme:       2,
		POS:          2,
		POSLexeme:    2,
		Segmentation: 2,
		SegLexeme:    1,
		Tag:          1,
		Full:         0,
	}, got)
}

func TestTestCancelled(t *testing.T) {
	m := trainedModel(t, testCorpus(), WithWorkers(2))
	gold := make([]Word, 1000)
	for i := range gold {
		gold[i] = noun("CTBA", "", "CTBA", "", "CTBA")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := m.Test(ctx, gold)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1000, got.Total)
	assert.Less(t, got.Evaluated, got.Total)
	assert.Equal(t, got.Evaluated, got.Full)
}

func TestTestWorkersAgree(t *testing.T) {
	var gold []Word
	for range 50 {
		gold = append(gold, testCorpus()...)
		gold = append(gold, noun("DCTBA", "D", "CTBA", "", "CTBA"), verb("ZBN", "", "ZBN", "", "ZBN"))
	}

	one := trainedModel(t, testCorpus(), WithWorkers(1))
	many := trainedModel(t, testCorpus(), WithWorkers(8))
	want, err := one.Test(context.Background(), gold)
	require.NoError(t, err)
	got, err := many.Test(context.Background(), gold)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 350, got.Total)
	assert.Equal(t, 300, got.Full)
}

func TestTestProgress(t *testing.T) {
	var calls, last atomic.Int64
	m := trainedModel(t, testCorpus(), WithWorkers(3), WithProgress(func(done, total int) {
		calls.Add(1)
		if done == total {
			last.Store(int64(done))
		}
	}))
	gold := testCorpus()
	_, err := m.Test(context.Background(), gold)
	require.NoError(t, err)
	assert.Equal(t, int64(len(gold)), calls.Load())
	assert.Equal(t, int64(len(gold)), last.Load())
}

func TestScoresReport(t *testing.T) {
	s := Scores{Total: 4, Evaluated: 4, Lexeme: 3, POS: 4, Full: 1}
	assert.Equal(t, 75.0, s.Percent(s.Lexeme))

	lines := strings.Split(strings.TrimSuffix(s.Report(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Lexemes recognized:          75.00 %", lines[0])
	assert.Equal(t, "Part of speech recognized:  100.00 %", lines[1])
	assert.Equal(t, "All recognized:              25.00 %", lines[6])
}

func TestTestCancelledAfterLastWord(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := trainedModel(t, testCorpus(), WithWorkers(2), WithProgress(func(done, total int) {
		if done == total {
			cancel()
		}
	}))

	gold := testCorpus()
	got, err := m.Test(ctx, gold)
	require.NoError(t, err)
	assert.Equal(t, len(gold), got.Evaluated)
	assert.Equal(t, len(gold), got.Full)
}
