package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coinherald/coinherald/internal/app"
	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/infra/db"
	"github.com/coinherald/coinherald/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(&cfg.Logger)

	pool, err := db.NewPool(&cfg.Postgres)
	if err != nil {
		log.Error("postgres init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Error("schema init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	application, err := app.NewApp(*cfg, log, pool)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
	}

	log.Info("coinherald stopped")
}
