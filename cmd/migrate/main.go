package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/glowbook-dev/glowbook/backend/internal/config"
	"github.com/glowbook-dev/glowbook/backend/internal/migrations"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database connection pool", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		os.Exit(1)
	}

	if err := migrations.Up(ctx, db); err != nil {
		logger.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}

	version, err := migrations.Version(ctx, db)
	if err != nil {
		logger.Error("failed to read the migration version", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied", "version", version)
}
