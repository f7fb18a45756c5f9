package main

import (
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/linksyr/morphan"
)

var (
	trainConfig string
	trainOut    string
)

func runTrain(cmd *commander.Command, args []string) error {
	if err := verifyFlags(cmd, "out"); err != nil {
		return err
	}
	cfg, err := loadConfig(trainConfig)
	if err != nil {
		return err
	}

	log.Printf("Reading corpus %s", cfg.CorpusPath())
	words, err := cfg.LoadCorpus()
	if err != nil {
		return err
	}
	m := morphan.New(cfg.Affixes, cfg.ModelOptions()...)
	m.Train(words)
	stats, err := m.Stats()
	if err != nil {
		return err
	}
	log.Printf("Trained on %d words: %d lexemes, %d tags, %d patterns",
		stats.CorpusSize, stats.Lexemes, stats.Tags, stats.Patterns)

	if err := m.SaveFile(trainOut); err != nil {
		return err
	}
	log.Printf("Wrote model to %s", trainOut)
	return nil
}

func trainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runTrain,
		UsageLine: "train -out <model file> [options]",
		Short:     "train a model on the whole configured corpus",
		Long: `
train a model on the whole configured corpus and save it

	$ morphan train -config morphan.yaml -out model.mrp

`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&trainConfig, "config", "", "configuration file")
	cmd.Flag.StringVar(&trainOut, "out", "", "output model file")
	return cmd
}
