// Package config loads the YAML settings shared by the morphan commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/linksyr/morphan"
	"github.com/linksyr/morphan/corpus"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "MORPHAN_CONFIG"

// Config is the root of a morphan.yaml file.
type Config struct {
	Corpus  Corpus                 `yaml:"corpus"`
	Affixes morphan.AffixInventory `yaml:"affixes"`
	Model   Model                  `yaml:"model"`
	Server  Server                 `yaml:"server"`
}

// Corpus locates the SyroMorph file.
type Corpus struct {
	DataDir         string                 `yaml:"datadir"`
	Filename        string                 `yaml:"filename"`
	Transliteration corpus.Transliteration `yaml:"transliteration"`
}

// Model holds training and analysis options.
type Model struct {
	Workers   int `yaml:"workers"`
	CacheSize int `yaml:"cache_size"`
	// TrainRatio is the share of the corpus used for training by eval.
	TrainRatio float64 `yaml:"train_ratio"`
}

// Server holds HTTP options.
type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the built-in configuration, including the affixes
// observed in the SyroMorph New Testament.
func Default() *Config {
	return &Config{
		Corpus: Corpus{
			DataDir:         "data",
			Filename:        "syromorph.txt",
			Transliteration: corpus.WIT,
		},
		Affixes: morphan.NewAffixInventory(
			[]string{"", "D", "DL", "DB", "DD", "B", "WLD", "DLD", "WBD", "WB", "L",
				"W", "WD", "BD", "WDB", "LDL", "WL", "LD", "WDL"},
			[]string{"", "JHJ", "WNNJ", "WNH", "J", "KJ", "WNKJ", "JWHJ", "WH", "HTJ",
				"WNJHJ", "W", "HWN", "KJN", "WHJN", "HJN", "WNJ", "WKWN", "WHWN",
				"NN", "WHJ", "N>", "JN", "WNKWN", "HJKWN", "T", "JHWN", "TWN",
				"NK", "JH", "HJK", "JNJ", "HJH", "JKWN", "JHJN", "WK", "JKJ",
				"NJHJ", "WNN", "K", "H", "KWN", "JKJN", "WN", "JK", "HWHJ", "NJ",
				"WKJ", "WNK", "N", "HJ"},
		),
		Model: Model{
			CacheSize:  10000,
			TrainRatio: 0.9,
		},
		Server: Server{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads path over the defaults. An empty path falls back to
// $MORPHAN_CONFIG, and to the defaults alone when that is unset too.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Affixes = morphan.NewAffixInventory(cfg.Affixes.Prefixes, cfg.Affixes.Suffixes)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Corpus.Filename == "" {
		errs = append(errs, errors.New("corpus.filename is empty"))
	}
	if len(c.Affixes.Prefixes) == 0 || len(c.Affixes.Suffixes) == 0 {
		errs = append(errs, errors.New("affixes: prefixes and suffixes must not be empty"))
	}
	if c.Model.TrainRatio <= 0 || c.Model.TrainRatio > 1 {
		errs = append(errs, fmt.Errorf("model.train_ratio %v not in (0,1]", c.Model.TrainRatio))
	}
	if c.Model.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("model.cache_size %d is negative", c.Model.CacheSize))
	}
	return errors.Join(errs...)
}

// CorpusPath joins the corpus directory and file name.
func (c *Config) CorpusPath() string {
	return filepath.Join(c.Corpus.DataDir, c.Corpus.Filename)
}

// LoadCorpus reads the configured corpus file as tagged words.
func (c *Config) LoadCorpus() ([]morphan.Word, error) {
	verses, err := corpus.Open(c.CorpusPath(), c.Corpus.Transliteration)
	if err != nil {
		return nil, err
	}
	return corpus.Tagged(corpus.Words(verses)), nil
}

// ModelOptions turns the model section into morphan options.
func (c *Config) ModelOptions() []morphan.Option {
	return []morphan.Option{
		morphan.WithWorkers(c.Model.Workers),
		morphan.WithCacheSize(c.Model.CacheSize),
	}
}
