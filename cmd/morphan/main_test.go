package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linksyr/morphan"
	"github.com/linksyr/morphan/corpus"
)

var nounTag = morphan.Tag{Category: 2, State: 3, Number: 1, Gender: 2}

func testModel() *morphan.Model {
	m := morphan.New(morphan.AffixInventory{
		Prefixes: []string{"", "D"},
		Suffixes: []string{"", "A"},
	}, morphan.WithWorkers(2))
	m.Train([]morphan.Word{
		{Surface: "CTBA", Stem: "CTBA", Lexeme: "CTBA", Tag: nounTag},
		{Surface: "DCTBA", Prefix: "D", Stem: "CTBA", Lexeme: "CTBA", Tag: nounTag},
	})
	return m
}

func TestVerifyFlags(t *testing.T) {
	cmd := trainCmd()
	err := verifyFlags(cmd, "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-out")

	require.NoError(t, cmd.Flag.Parse([]string{"-out", filepath.Join(t.TempDir(), "model.mrp")}))
	assert.NoError(t, verifyFlags(cmd, "out"))

	assert.Error(t, verifyFlags(cmd, "no-such-flag"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MORPHAN_CONFIG", "")
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, corpus.WIT, cfg.Corpus.Transliteration)

	path := filepath.Join(t.TempDir(), "morphan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus:\n  transliteration: syriac\n"), 0o644))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, corpus.Syriac, cfg.Corpus.Transliteration)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEvaluate(t *testing.T) {
	gold := []morphan.Word{
		{Surface: "CTBA", Stem: "CTBA", Lexeme: "CTBA", Tag: nounTag},
		{Surface: "DCTBA", Prefix: "D", Stem: "CTBA", Lexeme: "CTBA", Tag: nounTag},
	}
	scores, err := evaluate(context.Background(), testModel(), gold)
	require.NoError(t, err)
	assert.Equal(t, 2, scores.Full)
}

func TestEvaluateInterrupted(t *testing.T) {
	gold := make([]morphan.Word, 1000)
	for i := range gold {
		gold[i] = morphan.Word{Surface: "CTBA", Stem: "CTBA", Lexeme: "CTBA", Tag: nounTag}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scores, err := evaluate(ctx, testModel(), gold)
	require.NoError(t, err)
	assert.Equal(t, 1000, scores.Total)
	assert.Equal(t, scores.Evaluated, scores.Full)
}

func TestEvaluateFailure(t *testing.T) {
	untrained := morphan.New(morphan.AffixInventory{Prefixes: []string{""}, Suffixes: []string{""}})
	_, err := evaluate(context.Background(), untrained, nil)
	assert.ErrorIs(t, err, morphan.ErrNotTrained)
}
