package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/editorbox/EditorBox_Go/internal/config"
	"github.com/editorbox/EditorBox_Go/internal/database"
	"github.com/editorbox/EditorBox_Go/internal/database/postgres"
	"github.com/editorbox/EditorBox_Go/internal/entitlement"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/handler"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/note"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/server"
	"github.com/editorbox/EditorBox_Go/internal/subscription"
	"github.com/editorbox/EditorBox_Go/internal/throttle"
	"github.com/editorbox/EditorBox_Go/internal/worker"
)

const (
	dbMaxConns       = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownDeadline = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString, dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	bus := event.NewMemoryBus()
	policy := monetization.NewPolicy(bus)

	progressionService := progression.NewService(
		postgres.NewProgressRepository(pool),
		throttle.New(throttle.DefaultWindow, throttle.DefaultMaxEntries),
		policy,
		bus,
	)
	entitlementService := entitlement.NewService(postgres.NewEntitlementRepository(pool), progressionService, bus)
	subscriptionService := subscription.NewService(progressionService, entitlementService, subscription.StaticVerifier{}, bus)
	noteService := note.NewService(postgres.NewNoteRepository(pool), progressionService)

	// One reconcile up front so the default theme exists before traffic.
	if err := entitlementService.Reconcile(context.Background()); err != nil {
		slog.Error("Initial entitlement reconcile failed", "error", err)
	}

	subscriptionWorker := worker.NewSubscriptionWorker(subscriptionService, cfg.SubscriptionRefreshInterval)
	subscriptionWorker.Start(context.Background())
	defer subscriptionWorker.Stop()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, server.Services{
		Note:         noteService,
		Progression:  progressionService,
		Entitlement:  entitlementService,
		Subscription: subscriptionService,
		Policy:       policy,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
