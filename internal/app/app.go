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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studentportfolio/internal/config"
	apierrors "studentportfolio/internal/errors"
	"studentportfolio/internal/infrastructure"
	customMiddleware "studentportfolio/internal/middleware"
	"studentportfolio/internal/services"
	"studentportfolio/internal/sheets"
	handlers "studentportfolio/internal/transport/http"
)

const (
	VERSION = "1.0.0"
	AppName = "Student Portfolio API"
)

// Application represents the main application container
type Application struct {
	Config           *config.Config
	Router           *chi.Mux
	Server           *http.Server
	Source           sheets.Source
	PortfolioService *services.PortfolioService
	HealthService    *services.HealthService
	Registry         *prometheus.Registry
	Logger           *slog.Logger
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", VERSION),
		slog.String("source_mode", cfg.Source.Mode))

	app := &Application{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initializeServices(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices wires the sheet source and the application services
func (a *Application) initializeServices(ctx context.Context) error {
	source, err := a.newSource(ctx)
	if err != nil {
		return err
	}
	a.Source = source

	a.PortfolioService = services.NewPortfolioService(source, a.Config.Source, a.Logger)
	a.HealthService = services.NewHealthService(VERSION, a.Config.Source.Mode, a.Logger)

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return nil
}

// newSource builds the configured sheet source
func (a *Application) newSource(ctx context.Context) (sheets.Source, error) {
	switch a.Config.Source.Mode {
	case config.SourceModeGoogle:
		return sheets.NewGoogleSource(ctx,
			a.Config.Source.SpreadsheetID,
			a.Config.Source.APIKey,
			a.Config.Source.FetchRPS,
			a.Logger,
		)
	case config.SourceModeWorkbook:
		return sheets.NewWorkbookSource(a.Config.Source.WorkbookPath, a.Logger), nil
	default:
		return nil, fmt.Errorf("unknown source mode: %s", a.Config.Source.Mode)
	}
}

// setupRouter configures the Chi router with middleware and routes
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	errorHandler := apierrors.NewErrorHandler(a.Logger, false)
	metrics := customMiddleware.NewMetrics(a.Registry)

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(metrics.Handler)
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(a.Config.Server.RequestTimeout))

	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		healthHandler := handlers.NewHealthHandler(a.HealthService)
		r.Mount("/health", healthHandler.Routes())

		portfolioHandler := handlers.NewPortfolioHandler(a.PortfolioService, a.Logger, errorHandler)
		r.Mount("/portfolio", portfolioHandler.Routes())
	})

	// Prometheus endpoint stays outside the API group
	r.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))

	a.Router = r
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start starts the HTTP server
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting server",
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		a.Logger.ErrorContext(ctx, "Error closing log file", slog.String("error", err.Error()))
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
