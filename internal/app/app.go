// Package app provides the application lifecycle management for the
// social-publisher service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/api"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/config"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/database"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/filters"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/logger"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/metrics"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/redis"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/transformer"
)

const (
	// DefaultShutdownTimeout is the default timeout for graceful shutdown
	DefaultShutdownTimeout = 30 * time.Second

	defaultIdleTimeout = 120 * time.Second
)

// trackedPlatforms are the platforms the metrics tracker aggregates
// stats for. Unknown platforms are still counted, just not aggregated.
var trackedPlatforms = []string{
	transformer.PlatformTwitter,
	transformer.PlatformInstagram,
	transformer.PlatformFacebook,
	transformer.PlatformPinterest,
}

// App represents the social-publisher application with all its dependencies
type App struct {
	config      *config.Config
	logger      logger.Logger
	db          *sqlx.DB
	redisClient *goredis.Client
	registry    *filters.Registry
	httpServer  *http.Server
	version     string
}

// Options contains configuration for creating a new App
type Options struct {
	ConfigPath string
	Version    string
}

// New creates a new App instance with all dependencies initialized
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	appLogger = appLogger.With(
		logger.String("service", "social-publisher"),
		logger.String("version", opts.Version),
	)

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		_ = appLogger.Sync()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	repo := database.NewRepository(db)

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		_ = appLogger.Sync()
		_ = db.Close()
		return nil, fmt.Errorf("connect to Redis: %w", err)
	}

	tracker := metrics.NewTracker(redisClient, trackedPlatforms, appLogger)
	registry := filters.NewRegistry()

	service := transformer.NewService(transformer.Deps{
		Store:    repo,
		Registry: registry,
		Logger:   appLogger,
		Metrics:  tracker,
	})

	router := api.NewRouter(repo, service, tracker, registry, appLogger)
	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return &App{
		config:      cfg,
		logger:      appLogger,
		db:          db,
		redisClient: redisClient,
		registry:    registry,
		httpServer:  httpServer,
		version:     opts.Version,
	}, nil
}

// Registry exposes the filter registry so callers can add custom
// filters before Run.
func (a *App) Registry() *filters.Registry {
	return a.registry
}

// Run starts the HTTP server and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		a.logger.Info("Starting social-publisher API server",
			logger.String("address", a.config.Server.Address),
			logger.Bool("debug", a.config.Debug),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		a.logger.Info("Shutting down gracefully", logger.String("signal", sig.String()))
		a.shutdownHTTPServer()
		return nil
	case err := <-serverErr:
		a.logger.Error("Server error", logger.Error(err))
		return err
	case <-ctx.Done():
		a.shutdownHTTPServer()
		return ctx.Err()
	}
}

// shutdownHTTPServer gracefully shuts down the HTTP server
func (a *App) shutdownHTTPServer() {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", logger.Error(err))
	} else {
		a.logger.Info("HTTP server stopped")
	}
}

// Close cleans up resources
func (a *App) Close() error {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("Failed to close Redis client", logger.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("Failed to close database", logger.Error(err))
		}
	}
	return a.logger.Sync()
}
