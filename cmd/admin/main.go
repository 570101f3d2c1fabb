package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/ratelimit"
	"github.com/saulo-duarte/academy-functions/internal/records"
	"github.com/saulo-duarte/academy-functions/internal/reshuffle"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	errAndDie(err)
	config.InitLogger(cfg)

	ctx := context.Background()
	db, err := config.Connect(ctx, cfg.DatabaseDSN)
	errAndDie(err)

	repo := records.NewRepository(db)
	cli := commandLine{
		out:            os.Stdout,
		defaultWorkers: cfg.ShuffleWorkers,
		newShuffler: func(workers int, categories []records.Category) reshuffle.Service {
			return reshuffle.NewService(repo, reshuffle.WithWorkers(workers), reshuffle.WithCategories(categories...))
		},
		migrate: func(ctx context.Context) error {
			return ratelimit.EnsureSchema(ctx, db)
		},
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			config.Logger.WithError(err).Error("admin command failed")
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		config.Logger.Fatal(err)
	}
}
