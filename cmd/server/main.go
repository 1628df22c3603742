package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/lumina/internal/config"
	"github.com/iudanet/lumina/internal/logger"
	"github.com/iudanet/lumina/internal/server"
	"github.com/iudanet/lumina/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env-file", ".env", "Path to .env file (optional)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if err := run(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "lumina-server: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	cfg, err := config.LoadServer(envFile)
	if err != nil {
		return err
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}()

	srv, err := server.New(cfg, store, log, Version)
	if err != nil {
		return err
	}

	log.Info("lumina server starting",
		slog.String("version", Version),
		slog.String("db", cfg.DBPath))

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Lumina Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
