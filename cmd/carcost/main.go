package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/iudanet/carcost/internal/client/cli"
	"github.com/iudanet/carcost/internal/client/history"
	"github.com/iudanet/carcost/internal/client/iocli"
	"github.com/iudanet/carcost/internal/client/render"
	"github.com/iudanet/carcost/internal/client/storage"
	"github.com/iudanet/carcost/internal/client/storage/boltdb"
	"github.com/iudanet/carcost/internal/client/storage/memory"
	"github.com/iudanet/carcost/internal/client/storage/sqlite"
	"github.com/iudanet/carcost/internal/config"
	"github.com/iudanet/carcost/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги, приоритет: флаги > CARCOST_* > .env > значения по умолчанию
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return int(subcommands.ExitSuccess)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx := context.Background()

	kv, closer, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return int(subcommands.ExitFailure)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	stdio := iocli.NewStdio()

	renderer, err := render.NewTerminal(stdio,
		render.WithStyle(cfg.Style),
		render.WithLanguage(cfg.Lang),
		render.WithCurrency(cfg.Currency),
		render.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	store := history.NewStore(kv,
		history.WithLogger(logger),
		history.WithTimestampFormat(render.TimestampFormatter(cfg.Lang)),
	)

	commander := subcommands.NewCommander(flag.CommandLine, "carcost")
	cli.New(stdio, store, renderer, cfg.Currency).Register(commander)

	return int(commander.Execute(ctx))
}

// openStorage открывает хранилище истории выбранного типа
func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendBolt:
		s, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendSQLite:
		s, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendMemory:
		s := memory.New()
		return s, s, nil
	default:
		return nil, nil, errors.New("unknown storage backend: " + cfg.Backend)
	}
}

func printVersion() {
	fmt.Printf("Car Import Cost Calculator\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
