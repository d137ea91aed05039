// Package main реализует planetary-cli для управления схемой и начальными данными.
//
//	planetary-cli db_create   создать таблицы
//	planetary-cli db_drop     удалить таблицы
//	planetary-cli db_seed     записать Mercury, Venus, Earth и тестового пользователя
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/planetary-api/internal/config"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/migrations"
	seedservice "github.com/magabrotheeeer/planetary-api/internal/services/seed"
	"github.com/magabrotheeeer/planetary-api/internal/storage/repository"
)

const usage = `usage: planetary-cli <db_create|db_drop|db_seed>`

func main() {
	flag.Usage = func() { fmt.Fprintln(flag.CommandLine.Output(), usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), cfg, logger, os.Stdout); err != nil {
		logger.Error("command failed", slog.String("command", flag.Arg(0)), sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	if _, ok := commands[command]; !ok {
		return fmt.Errorf("unknown command %q, %s", command, usage)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", sl.Err(err))
		}
	}()

	return commands[command](ctx, db, logger, out)
}

type command func(ctx context.Context, db *repository.Storage, logger *slog.Logger, out io.Writer) error

var commands = map[string]command{
	"db_create": func(_ context.Context, db *repository.Storage, _ *slog.Logger, out io.Writer) error {
		if err := migrations.Up(db.DB); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "Database Created")
		return err
	},
	"db_drop": func(_ context.Context, db *repository.Storage, _ *slog.Logger, out io.Writer) error {
		if err := migrations.Down(db.DB); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "Database Dropped")
		return err
	},
	"db_seed": func(ctx context.Context, db *repository.Storage, logger *slog.Logger, out io.Writer) error {
		if err := seedservice.NewSeedService(db, logger).Seed(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "Database Seeded")
		return err
	},
}
