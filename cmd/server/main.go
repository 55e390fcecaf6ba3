package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/medsimlab/clinsim/internal/config"
	"github.com/medsimlab/clinsim/internal/database"
	"github.com/medsimlab/clinsim/internal/migrations"
	"github.com/medsimlab/clinsim/internal/narrative"
	"github.com/medsimlab/clinsim/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if err := os.MkdirAll(cfg.DBDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	dbPath := filepath.Join(cfg.DBDir, "clinsim.db")
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", dbPath)

	// --- Narrative generator ---
	var gen narrative.Generator
	if cfg.SimulateURL != "" {
		gen = narrative.NewClient(cfg.SimulateURL, cfg.SimulateToken)
		logger.Info("narrative generator configured", "url", cfg.SimulateURL)
	} else {
		logger.Warn("SIMULATE_URL not set, sessions run engine-only")
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, db, server.NewSQLiteStore(db), gen, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
