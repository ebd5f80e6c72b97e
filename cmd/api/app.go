package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cosmicmatch/internal/config"
	"cosmicmatch/internal/ephemeris"
	"cosmicmatch/internal/location"
	"cosmicmatch/internal/providers/openai"
	"cosmicmatch/internal/reading"
	"cosmicmatch/internal/render"
	"cosmicmatch/internal/store"
	"cosmicmatch/internal/timezone"

	_ "cosmicmatch/docs" // Ensure docs are imported
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	readingService reading.Service
	closers        []io.Closer
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	zones, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone data: %w", err)
	}

	reports, err := store.New(ctx, cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open report store: %w", err)
	}

	readingSvc := reading.NewReadingService(
		ephemeris.NewResolver(zones, logger),
		location.NewLocationService(cfg.Geocoder, logger),
		openai.NewClient(cfg.LLM, logger),
		render.New(cfg.Report),
		reports,
		cfg.Store.TTL,
		logger,
	)

	if cfg.LLM.APIKey == "" {
		logger.Warn("no LLM API key configured, reading generation will fail")
	}
	logger.Info("report store ready", "driver", cfg.Store.Driver, "ttl", cfg.Store.TTL)

	return newApp(cfg, logger, readingSvc, reports), nil
}

// newApp builds the router around already constructed services
func newApp(cfg *config.Config, logger *slog.Logger, readingSvc reading.Service, closers ...io.Closer) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		readingService: readingSvc,
		closers:        closers,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		app.close()
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	app.close()
	return err
}

func (app *App) close() {
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Error("failed to close resource", "error", err)
		}
	}
}
