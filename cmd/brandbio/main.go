// Package main is the entry point for the BrandBiography server.
// It loads configuration, opens the JSON-file storage, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandbio/internal/analytics"
	"brandbio/internal/cache"
	"brandbio/internal/config"
	"brandbio/internal/handlers"
	"brandbio/internal/render"
	"brandbio/internal/router"
	"brandbio/internal/storage"
	"brandbio/internal/store"
	"brandbio/internal/uploads"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data_dir", cfg.DataDir,
	)

	// Open the JSON-file collection storage.
	db, err := storage.New(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	// Prepare the image upload directory.
	uploadsDir, err := uploads.New(cfg.UploadsDir)
	if err != nil {
		slog.Error("failed to prepare uploads dir", "error", err)
		os.Exit(1)
	}

	// Connect the optional Valkey page cache. The site runs fine without
	// it; a configured-but-unreachable cache is a startup error.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	} else {
		slog.Info("page cache disabled, no VALKEY_HOST configured")
		pageCache = cache.NewPageCache(nil, 0)
	}

	// Initialize the HTML template renderer for the public pages.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores and the read-side aggregator.
	resourceStore := store.NewResourceStore(db, uploadsDir)
	demoStore := store.NewDemoStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	aggregator := analytics.New(resourceStore, demoStore, testimonialStore)

	// Create handler groups with their dependencies.
	api := handlers.NewAPI(resourceStore, demoStore, testimonialStore, aggregator,
		uploadsDir, pageCache, cfg.AdminPassword, cfg.AdminPasswordHash)
	public := handlers.NewPublic(renderer, resourceStore, testimonialStore, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, public, cfg.CORSOrigin, uploadsDir.Root())

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// multipart image uploads on slow connections.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
