package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vmunix/reelcat/internal/catalog"
	"github.com/vmunix/reelcat/internal/config"
	"github.com/vmunix/reelcat/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// The dataset is read exactly once; a bad file means nothing is served.
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"path", cfg.Catalog.Path,
		"films", cat.Len(),
		"characters", len(cat.Characters()),
	)

	handler, err := server.NewHandler(server.Deps{
		Catalog: cat,
		Config:  cfg,
		Version: version,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting reelcatd",
		"version", version,
		"config", configPath,
		"addr", cfg.Addr(),
		"metrics", cfg.Metrics.Enabled,
	)

	runner := server.NewRunner(handler, server.Config{Addr: cfg.Addr()}, logger.With("component", "server"))
	return runner.Run(ctx)
}
