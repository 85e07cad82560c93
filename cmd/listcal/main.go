package main

import (
	"context"
	"log"
	"log/slog"

	"listcal/internal/config"
	"listcal/internal/db"
	"listcal/internal/list"
	"listcal/internal/logging"
	"listcal/internal/slot"
	slotfile "listcal/internal/slot/file"
	slotsqlite "listcal/internal/slot/sqlite"
	"listcal/internal/suggest"
	suggestclaude "listcal/internal/suggest/claude"
	"listcal/internal/web"
	"listcal/internal/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	store, closeStore, err := newSlotStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		return
	}
	defer closeStore()

	repo := list.NewRepository(context.Background(), store, logger)

	server := web.NewServer(repo, templates.FS, newSuggester(cfg, logger), logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newSlotStore(cfg *config.Config, logger *slog.Logger) (slot.Store, func(), error) {
	switch cfg.StorageBackend {
	case "file":
		logger.Info("using file storage backend", "path", cfg.DataPath)
		store, err := slotfile.New(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default:
		logger.Info("using sqlite storage backend", "path", cfg.DBPath)
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
		return slotsqlite.New(database), closeDB, nil
	}
}

func newSuggester(cfg *config.Config, logger *slog.Logger) suggest.Suggester {
	switch cfg.SuggestBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when SUGGEST_BACKEND=claude; suggestions disabled")
			return nil
		}
		logger.Info("using Claude suggestion backend", "model", cfg.ClaudeModel)
		return suggestclaude.New(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	default:
		return nil
	}
}
