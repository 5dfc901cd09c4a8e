package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wholesale-admin/internal/cli"
	"wholesale-admin/internal/config"
	"wholesale-admin/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	app, err := cli.New(cfg, log, os.Stdout, os.Stdin)
	if err != nil {
		log.Error("Failed to initialize console", zap.Error(err))
		os.Exit(1)
	}

	// Ctrl+C cancels in-flight requests instead of killing mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(app.Run(ctx, os.Args[1:]))
}
