// Package main runs a mock Trendyol seller API for local development. It
// serves canned catalog, product, order and finance responses so the CLI
// can be pointed at it with --base-url instead of the live gateway.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/donaldgifford/trendyol-seller/internal/config"
	"github.com/donaldgifford/trendyol-seller/internal/mockapi"
	"github.com/donaldgifford/trendyol-seller/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	port := flag.Int("port", 0, "port to listen on (overrides config)")
	cursorAfter := flag.Int("cursor-after", 0, "first page that carries a nextPageToken (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.MockServer.Port = *port
	}
	if *cursorAfter > 0 {
		cfg.MockServer.CursorAfter = *cursorAfter
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("mock server stopped", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads path when given; otherwise every setting takes its
// default. Credentials are not required to run the mock.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse(nil)
	}
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return config.Parse(data)
}

// run serves until ctx is done, then shuts the server down gracefully.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	srv := mockapi.New(cfg.MockServer, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.MockServerAddr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down mock server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down mock server: %w", err)
	}
	return <-errCh
}
