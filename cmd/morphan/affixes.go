package main

import (
	"fmt"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/linksyr/morphan/corpus"
)

var affixesConfig string

func runAffixes(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig(affixesConfig)
	if err != nil {
		return err
	}
	words, err := cfg.LoadCorpus()
	if err != nil {
		return err
	}
	inv := corpus.Affixes(words)
	fmt.Printf("prefixes (%d): %s\n", len(inv.Prefixes), quoteAll(inv.Prefixes))
	fmt.Printf("suffixes (%d): %s\n", len(inv.Suffixes), quoteAll(inv.Suffixes))
	return nil
}

func quoteAll(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(q, ", ")
}

func affixesCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runAffixes,
		UsageLine: "affixes [options]",
		Short:     "list the prefixes and suffixes observed in the corpus",
		Long: `
list the prefixes and suffixes observed in the configured corpus, in a
form that can be pasted into the affixes section of morphan.yaml

	$ morphan affixes -config morphan.yaml

`,
		Flag: *flag.NewFlagSet("affixes", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&affixesConfig, "config", "", "configuration file")
	return cmd
}
