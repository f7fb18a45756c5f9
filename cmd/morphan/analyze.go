package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/linksyr/morphan"
)

var (
	analyzeModel string
	analyzeTop   int
)

func runAnalyze(cmd *commander.Command, args []string) error {
	if err := verifyFlags(cmd, "model"); err != nil {
		return err
	}
	if len(args) == 0 {
		cmd.Usage()
		return errors.New("no words given")
	}
	m, err := morphan.LoadFile(analyzeModel)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	for _, word := range args {
		analyses, err := m.Analyze(word)
		if err != nil {
			return err
		}
		if len(analyses) == 0 {
			fmt.Fprintf(tw, "%s\t(no analysis)\n", word)
			continue
		}
		if analyzeTop > 0 && len(analyses) > analyzeTop {
			analyses = analyses[:analyzeTop]
		}
		for _, a := range analyses {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.4f\n",
				word, a.Prefix, a.Stem, a.Suffix, a.Lexeme, a.Tag, a.Score)
		}
	}
	return nil
}

func analyzeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runAnalyze,
		UsageLine: "analyze -model <model file> [options] WORD...",
		Short:     "print the ranked analyses of words",
		Long: `
print the ranked analyses of words, one line per analysis:
word, prefix, stem, suffix, lexeme, tag and normalized score

	$ morphan analyze -model model.mrp -n 3 DCTBA

`,
		Flag: *flag.NewFlagSet("analyze", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&analyzeModel, "model", "", "model file written by train")
	cmd.Flag.IntVar(&analyzeTop, "n", 0, "show at most n analyses per word; 0 = all")
	return cmd
}
