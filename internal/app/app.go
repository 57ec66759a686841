// Package app wires configuration, logging, metrics, the pipeline and the
// HTTP transport into a runnable server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"finlens/internal/config"
	"finlens/internal/infrastructure"
	"finlens/internal/middleware"
	"finlens/internal/pipeline"
	"finlens/internal/services"
	handlers "finlens/internal/transport/http"
)

// Version is set at build time.
var Version = "dev"

// Application is the main application container.
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *infrastructure.Metrics
	Pipeline *pipeline.Pipeline
	Router   chi.Router
	Server   *http.Server
}

// NewApplication builds the application from the config file at path.
func NewApplication(configPath string) (*Application, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	metrics, err := infrastructure.InitializeMetrics(logger)
	if err != nil {
		return nil, fmt.Errorf("initialize metrics: %w", err)
	}

	app := &Application{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Pipeline: pipeline.New(logger, metrics, cfg.Pipeline.CacheSize),
	}
	app.setupRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(a.Logger))
	r.Use(middleware.Recoverer(a.Logger))
	if a.Config.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimit(a.Config.Server.RateLimit.RPS, a.Config.Server.RateLimit.Burst))
	}

	analysisService := services.NewAnalysisService(a.Pipeline, a.Logger, a.Config.Pipeline.DefaultYears)
	healthService := services.NewHealthService(Version)

	analysisHandler := handlers.NewAnalysisHandler(analysisService, a.Logger, a.Config.Pipeline.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(healthService, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", analysisHandler.Routes())
		r.Get("/health", healthHandler.HealthCheck)
	})
	r.Handle("/metrics", a.Metrics.Handler())

	a.Router = r
}

// Run starts the server and blocks until an interrupt arrives or the
// server fails.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		a.Logger.InfoContext(ctx, "server starting",
			slog.String("addr", a.Server.Addr),
			slog.String("version", Version))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		a.Logger.InfoContext(ctx, "shutdown signal received", slog.String("signal", sig.String()))
		return a.Stop(ctx)
	}
}

// Stop gracefully shuts down the server and flushes metrics.
func (a *Application) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := a.Metrics.Shutdown(shutdownCtx); err != nil {
		a.Logger.WarnContext(ctx, "metrics shutdown failed", slog.String("error", err.Error()))
	}
	infrastructure.CloseLogFile()

	a.Logger.InfoContext(ctx, "server stopped")
	return nil
}
