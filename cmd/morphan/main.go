// Command morphan trains, applies and evaluates morphological models.
//
//	morphan train   -config morphan.yaml -out model.mrp
//	morphan analyze -model model.mrp [-n 5] WORD...
//	morphan eval    -config morphan.yaml [-ratio 0.9]
//	morphan affixes -config morphan.yaml
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/linksyr/morphan/config"
)

var app = &commander.Command{
	UsageLine: os.Args[0] + " <command> [options]",
	Short:     "trainable morphological analyzer",
	Subcommands: []*commander.Command{
		trainCmd(),
		analyzeCmd(),
		evalCmd(),
		affixesCmd(),
	},
	Flag: *flag.NewFlagSet("morphan", flag.ExitOnError),
}

func main() {
	if err := app.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

// verifyFlags fails when one of the required string flags is unset.
func verifyFlags(cmd *commander.Command, required ...string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			return fmt.Errorf("%s: required flag -%s not set", cmd.Name(), name)
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Println("Configuration")
	log.Printf("Corpus:         \t%s", cfg.CorpusPath())
	log.Printf("Transliteration:\t%s", cfg.Corpus.Transliteration)
	log.Printf("Prefixes:       \t%d", len(cfg.Affixes.Prefixes))
	log.Printf("Suffixes:       \t%d", len(cfg.Affixes.Suffixes))
	log.Printf("Workers:        \t%d", cfg.Model.Workers)
	log.Println()
	return cfg, nil
}
