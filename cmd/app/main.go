package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mossholt/cardforge/internal/catalog"
	"github.com/mossholt/cardforge/internal/config"
	"github.com/mossholt/cardforge/internal/database"
	"github.com/mossholt/cardforge/internal/database/postgres"
	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/game"
	"github.com/mossholt/cardforge/internal/generator"
	"github.com/mossholt/cardforge/internal/handler"
	"github.com/mossholt/cardforge/internal/logger"
	"github.com/mossholt/cardforge/internal/metrics"
	"github.com/mossholt/cardforge/internal/persist"
	"github.com/mossholt/cardforge/internal/repository"
	"github.com/mossholt/cardforge/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections, 30*time.Minute, time.Hour)
	if err != nil {
		logger.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	saves := postgres.NewSavesRepository(pool)

	ctx := context.Background()
	gameConfig, configChanged, err := loadGameConfig(ctx, saves)
	if err != nil {
		logger.Error("Failed to load game config", "error", err)
		os.Exit(1)
	}

	progress, err := loadProgress(ctx, saves)
	if err != nil {
		logger.Error("Failed to load progress", "error", err)
		os.Exit(1)
	}

	synchronizer := persist.NewSynchronizer(saves,
		persist.WithWriteErrorHook(metrics.RecordPersistenceFailure))

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	deadLetterPath := os.Getenv("DEAD_LETTER_PATH")
	if deadLetterPath == "" {
		deadLetterPath = "deadletter.jsonl"
	}
	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		logger.Error("Failed to open dead letter file", "error", err)
		os.Exit(1)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: 3,
		RetryDelay: time.Second,
		DeadLetter: deadLetter,
	})

	gameService := game.NewService(gameConfig, progress,
		generator.NewFactory(), synchronizer, publisher)

	// The load-time merge can introduce new default cards or backfill
	// sections; persist the reconciled catalog so the next load sees it.
	if configChanged {
		synchronizer.Schedule(repository.NamespaceConfig,
			gameService.Snapshots()[repository.NamespaceConfig])
	}

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, gameService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}

	if err := synchronizer.Shutdown(shutdownCtx, gameService.Snapshots()); err != nil {
		logger.Error("Persistence shutdown failed", "error", err)
	}
}

// loadGameConfig fetches the saved catalog and reconciles it with this
// build's defaults. A missing save yields the defaults. The changed flag
// reports whether the reconciled catalog needs writing back.
func loadGameConfig(ctx context.Context, saves repository.Saves) (domain.GameConfig, bool, error) {
	payload, err := saves.Get(ctx, repository.NamespaceConfig, repository.SaveKeyMain)
	if err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			cfg, changed := catalog.Reconcile(nil)
			return cfg, changed, nil
		}
		return domain.GameConfig{}, false, err
	}

	var saved domain.GameConfig
	if err := json.Unmarshal(payload, &saved); err != nil {
		return domain.GameConfig{}, false, err
	}

	cfg, changed := catalog.Reconcile(&saved)
	return cfg, changed, nil
}

// loadProgress fetches the saved progress. A missing save yields a fresh
// start with the starting gold balance.
func loadProgress(ctx context.Context, saves repository.Saves) (domain.Progress, error) {
	payload, err := saves.Get(ctx, repository.NamespaceProgress, repository.SaveKeyMain)
	if err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			return game.LoadProgress(nil)
		}
		return domain.Progress{}, err
	}
	return game.LoadProgress(payload)
}
