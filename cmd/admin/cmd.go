package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/saulo-duarte/academy-functions/internal/records"
	"github.com/saulo-duarte/academy-functions/internal/reshuffle"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out            io.Writer
	defaultWorkers int
	newShuffler    func(workers int, categories []records.Category) reshuffle.Service
	migrate        func(ctx context.Context) error
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  shuffle-quizzes [-workers N] [-categories lessons,sprints,modules] - shuffle stored quiz answers")
	fmt.Fprintln(cli.out, "  migrate - install the AI rate limit table and function")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	shuffleCmd := flag.NewFlagSet("shuffle-quizzes", flag.ContinueOnError)
	shuffleCmd.SetOutput(cli.out)
	shuffleWorkers := shuffleCmd.Int("workers", cli.defaultWorkers, "How many records to rewrite concurrently.")
	shuffleCategories := shuffleCmd.String("categories", "", "Comma separated tables to shuffle. Defaults to all.")

	switch args[1] {
	case "shuffle-quizzes":
		if err := shuffleCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *shuffleWorkers < 1 {
			shuffleCmd.Usage()
			return errHelp
		}
		categories, err := parseCategories(*shuffleCategories)
		if err != nil {
			return err
		}
		return cli.shuffleQuizzes(ctx, *shuffleWorkers, categories)
	case "migrate":
		return cli.migrate(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) shuffleQuizzes(ctx context.Context, workers int, categories []records.Category) error {
	summary, err := cli.newShuffler(workers, categories).Run(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func parseCategories(s string) ([]records.Category, error) {
	if strings.TrimSpace(s) == "" {
		return records.AllCategories, nil
	}

	var out []records.Category
	for _, part := range strings.Split(s, ",") {
		c := records.Category(strings.TrimSpace(part))
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %q", records.ErrInvalidCategory, c)
		}
		out = append(out, c)
	}
	return out, nil
}
