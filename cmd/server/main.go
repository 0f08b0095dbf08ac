package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sandwichsociety/pointsite/internal/config"
	"github.com/sandwichsociety/pointsite/internal/content"
	"github.com/sandwichsociety/pointsite/internal/diag"
	"github.com/sandwichsociety/pointsite/internal/logging"
	"github.com/sandwichsociety/pointsite/internal/points"
	"github.com/sandwichsociety/pointsite/internal/sheets"
	"github.com/sandwichsociety/pointsite/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"sheets_configured", cfg.Sheets.Configured(),
		"sheets_range", cfg.Sheets.Range(),
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Build the data-source client when configured. The site still comes up
	// without it; the points endpoint reports the missing configuration.
	ctx := context.Background()
	var client *sheets.Client
	if cfg.Sheets.Configured() {
		client, err = sheets.NewClient(ctx, sheets.Config{
			SpreadsheetID:       cfg.Sheets.SpreadsheetID,
			ServiceAccountEmail: cfg.Sheets.ServiceAccountEmail,
			PrivateKey:          cfg.Sheets.PrivateKey,
		})
		if err != nil {
			slog.Error("failed to create sheets client", "error", err)
			os.Exit(1)
		}
		slog.Info("sheets client ready", "spreadsheet_id", cfg.Sheets.SpreadsheetID)
	} else {
		slog.Warn("sheets connection not configured; points lookups will fail until it is")
	}

	// Resolver and diagnostics share the client
	var resolver *points.Resolver
	var prober *diag.Prober
	if client != nil {
		resolver = points.NewResolver(client, cfg.Sheets.Range())
		prober = diag.NewProber(client, cfg.Sheets)
	} else {
		resolver = points.NewResolver(nil, cfg.Sheets.Range())
		prober = diag.NewProber(nil, cfg.Sheets)
	}

	// Load the page copy
	site, err := content.Load()
	if err != nil {
		slog.Error("failed to load site content", "error", err)
		os.Exit(1)
	}

	// Create server with config
	server := web.NewServer(resolver, prober, site, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
