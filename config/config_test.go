package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linksyr/morphan/corpus"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "morphan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, filepath.Join("data", "syromorph.txt"), cfg.CorpusPath())
	assert.Equal(t, corpus.WIT, cfg.Corpus.Transliteration)
	assert.Contains(t, cfg.Affixes.Prefixes, "")
	assert.Contains(t, cfg.Affixes.Prefixes, "WDL")
	assert.Contains(t, cfg.Affixes.Suffixes, "N>")
	assert.Len(t, cfg.ModelOptions(), 2)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
corpus:
  datadir: /srv/syriac
  transliteration: syriac
affixes:
  prefixes: ["D", "W", "D"]
  suffixes: ["", "A"]
model:
  workers: 4
  train_ratio: 0.8
server:
  addr: ":9090"
  allowed_origins: ["https://example.org"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/syriac/syromorph.txt", cfg.CorpusPath())
	assert.Equal(t, corpus.Syriac, cfg.Corpus.Transliteration)
	assert.Equal(t, []string{"D", "W"}, cfg.Affixes.Prefixes)
	assert.Equal(t, []string{"", "A"}, cfg.Affixes.Suffixes)
	assert.Equal(t, 4, cfg.Model.Workers)
	assert.Equal(t, 0.8, cfg.Model.TrainRatio)
	assert.Equal(t, 10000, cfg.Model.CacheSize)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "model:\n  cache_size: 0\n")
	t.Setenv(EnvPath, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Model.CacheSize)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"ratio", "model:\n  train_ratio: 1.5\n", "train_ratio"},
		{"cache", "model:\n  cache_size: -1\n", "cache_size"},
		{"filename", "corpus:\n  filename: \"\"\n", "corpus.filename"},
		{"transliteration", "corpus:\n  transliteration: latin\n", "transliteration"},
		{"syntax", "model: [\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Model.TrainRatio = 0
	cfg.Model.CacheSize = -5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "train_ratio")
	assert.Contains(t, err.Error(), "cache_size")
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	line := "CTBA|CTBA#CTBA#CTB###0#0#0#3#1#0#2#0#0#2#0#0#2#0#0#0#0#0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nt.txt"), []byte(line), 0o644))

	cfg := Default()
	cfg.Corpus.DataDir = dir
	cfg.Corpus.Filename = "nt.txt"
	words, err := cfg.LoadCorpus()
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "KTB>", words[0].Surface)

	cfg.Corpus.Filename = "missing.txt"
	_, err = cfg.LoadCorpus()
	assert.Error(t, err)
}
