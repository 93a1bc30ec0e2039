package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/contactbook/backend/internal/config"
	"github.com/contactbook/backend/internal/logging"
	"github.com/contactbook/backend/internal/repository"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   create the contacts table if it does not exist
  reset       drop the contacts table and recreate it`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.Database.PostgresURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	repo := repository.NewPgContactRepository(pool)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
	case "reset":
		if err := repo.DropSchema(ctx); err != nil {
			logging.Fatal("drop failed", "error", err)
		}
		slog.Info("contacts table dropped")
	default:
		usage()
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		logging.Fatal("migrate failed", "error", err)
	}
	slog.Info("contacts table ready")
}
