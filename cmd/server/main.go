// PickHealth - Corporate Meal Matching Demo Server
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

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/pickhealth/platform/internal/api"
	"github.com/pickhealth/platform/internal/assist"
	"github.com/pickhealth/platform/internal/auth"
	"github.com/pickhealth/platform/internal/config"
	"github.com/pickhealth/platform/internal/kv"
	"github.com/pickhealth/platform/internal/middleware"
	"github.com/pickhealth/platform/internal/seed"
	"github.com/pickhealth/platform/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize persistence.
	var backend kv.Store
	if cfg.DBPath != "" {
		backend, err = kv.NewSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("DB_PATH empty, running on the in-memory store")
		backend = kv.NewMemory()
	}
	defer func() {
		if closeErr := backend.Close(); closeErr != nil {
			slog.Error("Failed to close store", "error", closeErr)
		}
	}()

	records := store.New(backend)
	if err := records.Ping(context.Background()); err != nil {
		slog.Error("Store health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Record store ready")

	if cfg.SeedDemoData {
		if err := seed.Providers(context.Background(), records); err != nil {
			slog.Error("Failed to seed demo providers", "error", err)
			os.Exit(1)
		}
	}

	// Initialize services.
	authSvc := auth.NewService(records)
	engine := assist.NewEngine()

	// Initialize handlers.
	baseHandler := api.NewHandler(authSvc, records)
	authHandler := api.NewAuthHandler(baseHandler)
	directoryHandler := api.NewDirectoryHandler(baseHandler)
	assistHandler := assist.NewHandler(engine, cfg.AssistReplyDelay, cfg.AssistReplyJitter)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))

	authHandler.RegisterRoutes(r)
	directoryHandler.RegisterRoutes(r)
	assistHandler.RegisterRoutes(r)

	// Chat widget websocket endpoint.
	r.Get("/ws/assist", assistHandler.ServeWS)

	// Create server.
	// Note: the chat websocket is long-lived, so no WriteTimeout.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
