package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/linksyr/morphan"
	"github.com/linksyr/morphan/corpus"
)

var (
	evalConfig  string
	evalRatio   float64
	evalTimeout time.Duration
)

func runEval(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig(evalConfig)
	if err != nil {
		return err
	}
	if evalRatio > 0 {
		cfg.Model.TrainRatio = evalRatio
	}

	words, err := cfg.LoadCorpus()
	if err != nil {
		return err
	}
	train, test := corpus.Split(words, cfg.Model.TrainRatio)
	log.Printf("Training on %d words, testing on %d", len(train), len(test))

	step := max(len(test)/20, 1)
	opts := append(cfg.ModelOptions(), morphan.WithProgress(func(done, total int) {
		if done%step == 0 || done == total {
			log.Printf("word %d of %d (%.2f%%)", done, total, 100*float64(done)/float64(total))
		}
	}))
	m := morphan.New(cfg.Affixes, opts...)
	m.Train(train)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if evalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, evalTimeout)
		defer cancel()
	}

	scores, err := evaluate(ctx, m, test)
	if err != nil {
		return err
	}
	fmt.Print(scores.Report())
	return nil
}

// evaluate runs m.Test. An interrupt or timeout is not an error: the
// scores of the words evaluated so far are kept.
func evaluate(ctx context.Context, m *morphan.Model, gold []morphan.Word) (morphan.Scores, error) {
	scores, err := m.Test(ctx, gold)
	if err != nil && ctx.Err() == nil {
		return scores, err
	}
	if err != nil {
		log.Printf("Evaluation stopped after %d of %d words: %v", scores.Evaluated, scores.Total, err)
	}
	return scores, nil
}

func evalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runEval,
		UsageLine: "eval [options]",
		Short:     "train on the head of the corpus and evaluate on the tail",
		Long: `
train on the first part of the configured corpus, analyze the rest and
report lexeme, part of speech, segmentation and tag accuracy

	$ morphan eval -config morphan.yaml -ratio 0.9

`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&evalConfig, "config", "", "configuration file")
	cmd.Flag.Float64Var(&evalRatio, "ratio", 0, "share of the corpus used for training (overrides model.train_ratio)")
	cmd.Flag.DurationVar(&evalTimeout, "timeout", 0, "stop evaluating after this long and report partial results")
	return cmd
}
