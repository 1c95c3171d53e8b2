package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/app"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/config"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.New(&cfg.Logger)

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("crypto-portfolio-service stopped")
}
