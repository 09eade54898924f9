// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	otelmetric "go.opentelemetry.io/otel/metric"

	chestHTTP "github.com/petrilli/aletheia/internal/chest/http"
	chestRepository "github.com/petrilli/aletheia/internal/chest/repository"
	chestService "github.com/petrilli/aletheia/internal/chest/service"
	chestUsecase "github.com/petrilli/aletheia/internal/chest/usecase"
	"github.com/petrilli/aletheia/internal/config"
	"github.com/petrilli/aletheia/internal/http"
	"github.com/petrilli/aletheia/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services and Repositories
	keyService chestService.KeyService
	blobStore  *chestRepository.BlobStore

	// Use Cases
	chestUseCase chestUsecase.ChestUseCase

	// Handlers
	chestHandler *chestHTTP.ChestHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	keyServiceInit      sync.Once
	blobStoreInit       sync.Once
	chestUseCaseInit    sync.Once
	chestHandlerInit    sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server instance with the router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance.
// It returns nil when metrics are disabled in the configuration.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Close KMS keepers if initialized
	if c.keyService != nil {
		if err := c.keyService.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("key service close: %w", err))
		}
	}

	// Close the bucket if initialized
	if c.blobStore != nil {
		if err := c.blobStore.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("blob store close: %w", err))
		}
	}

	// Shutdown metrics provider if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the OpenTelemetry metrics provider with a
// Prometheus exporter.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder. When metrics are
// disabled it returns a no-op recorder so callers never need nil checks.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return businessMetrics, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	store, err := c.BlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get blob store for http server: %w", err)
	}

	chestHandler, err := c.ChestHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get chest handler for http server: %w", err)
	}

	server := http.NewServer(store, c.config.ServerHost, c.config.ServerPort, logger)

	var meterProvider otelmetric.MeterProvider
	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		meterProvider = provider.MeterProvider()
	}

	server.SetupRouter(c.config, chestHandler, meterProvider)

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
