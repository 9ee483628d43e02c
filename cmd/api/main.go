package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kurihiro0119/github-user-finder/internal/api"
	"github.com/kurihiro0119/github-user-finder/internal/collector"
	"github.com/kurihiro0119/github-user-finder/internal/config"
	"github.com/kurihiro0119/github-user-finder/internal/storage"
	"github.com/kurihiro0119/github-user-finder/internal/storage/postgres"
	"github.com/kurihiro0119/github-user-finder/internal/storage/sqlite"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	// Initialize GitHub collector
	coll, err := collector.NewGitHubCollector(cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		logger.Fatal("failed to initialize GitHub client", "err", err)
	}

	// Initialize lookup history
	var store storage.Storage
	switch cfg.StorageType {
	case "postgres":
		store, err = postgres.NewPostgresStorage(cfg.PostgresURL)
		if err != nil {
			logger.Fatal("failed to initialize PostgreSQL storage", "err", err)
		}
	case "sqlite":
		store, err = sqlite.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("failed to initialize SQLite storage", "err", err)
		}
	}
	if store != nil {
		defer store.Close()
	}

	// Initialize handler
	handler := api.NewHandler(coll, store, logger)

	// Setup routes
	router := api.SetupRoutes(handler, logger)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	logger.Info("starting server", "addr", addr, "storage", cfg.StorageType)

	if err := router.Run(addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
