package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mveiros/ironwood-companion/internal/boost"
	"github.com/mveiros/ironwood-companion/internal/calculator"
	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/config"
	"github.com/mveiros/ironwood-companion/internal/database"
	"github.com/mveiros/ironwood-companion/internal/history"
	"github.com/mveiros/ironwood-companion/internal/leaderboard"
	"github.com/mveiros/ironwood-companion/internal/market"
	"github.com/mveiros/ironwood-companion/internal/profile"
	"github.com/mveiros/ironwood-companion/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.NewFromDir(cfg.CatalogDir)
	if err != nil {
		slog.Error("Failed to load item catalog", "dir", cfg.CatalogDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Item catalog loaded", "skills", len(cat.Skills()))

	calcService, err := calculator.NewService(cat, boost.DefaultTables())
	if err != nil {
		slog.Error("Failed to build calculator service", "error", err)
		os.Exit(1)
	}

	connString := cfg.GetDBConnString()
	if err := database.Migrate(ctx, connString); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(ctx, connString)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	profileClient := profile.NewHTTPClient(cfg.GameAPIBaseURL, cfg.GameAPITimeout)
	profileService := profile.NewService(profileClient, profile.DefaultCacheSize, cfg.ProfileCacheTTL)

	marketClient := market.NewHTTPClient(cfg.GameAPIBaseURL, cfg.GameAPITimeout)
	marketService := market.NewService(marketClient, cat, cfg.MarketCacheTTL)

	leaderboardClient := leaderboard.NewHTTPClient(cfg.GameAPIBaseURL, cfg.GameAPITimeout)
	leaderboardService := leaderboard.NewService(leaderboardClient)

	historyService := history.NewService(history.NewPostgresRepository(dbPool))

	srv := server.NewServer(cfg.Port, cfg.Version, dbPool, calcService, profileService, marketService, leaderboardService, historyService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
