package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"packmule/internal/api"
	"packmule/internal/config"
	"packmule/internal/middleware"
	"packmule/internal/service"
	"packmule/internal/storage"
	"packmule/internal/storage/sqlite"
	"packmule/internal/suggest"
	"packmule/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	// The store handle is constructed here and passed by reference to
	// everything that needs it; its lifecycle is owned by this composition
	// root.
	manager := &storage.RecoveryManager{
		Open:     func() (storage.Store, error) { return sqlite.New(cfg.DBPath) },
		Destroy:  func() error { return sqlite.Destroy(cfg.DBPath) },
		Attempts: cfg.StoreOpenRetries,
		Backoff:  cfg.StoreRetryBackoff,
	}
	store, recovered, err := manager.OpenWithRecovery(context.Background())
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	if recovered {
		// Surface to the app layer as "your local data could not be
		// loaded"; the core has already logged and counted the event.
		slog.Warn("local data was reset during corruption recovery", "database", cfg.DBPath)
	}
	slog.Info("storage initialized", "database", cfg.DBPath)

	var suggestClient *suggest.Client
	if cfg.SuggestBaseURL != "" {
		suggestClient = suggest.NewClient(cfg.SuggestBaseURL)
	}

	svc := service.NewTripService(store)
	server := api.NewServer(svc, suggestClient)

	handler := middleware.Logging(middleware.CORS(server.Handler()))
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
