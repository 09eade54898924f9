// Package http provides the HTTP server, routing, and middleware for the
// secrets API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	chesthttp "github.com/petrilli/aletheia/internal/chest/http"
	"github.com/petrilli/aletheia/internal/chest/usecase"
	"github.com/petrilli/aletheia/internal/config"
	"github.com/petrilli/aletheia/internal/metrics"
)

// Server represents the HTTP API server.
type Server struct {
	store  usecase.ObjectStore
	logger *slog.Logger
	router *gin.Engine
	server *http.Server
}

// NewServer creates a new HTTP server. The object store is used by the
// readiness endpoint to verify that the backing bucket is still reachable.
func NewServer(
	store usecase.ObjectStore,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		store:  store,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter configures the Gin router with middleware and API routes.
// Must be called before Start.
func (s *Server) SetupRouter(
	cfg *config.Config,
	chestHandler *chesthttp.ChestHandler,
	meterProvider otelmetric.MeterProvider,
) {
	router := gin.New()

	// Recovery first so panics in handlers and later middleware are caught
	router.Use(gin.Recovery())

	// Request IDs for log correlation
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))

	// Structured request logging
	router.Use(CustomLoggerMiddleware(s.logger))

	// HTTP metrics when a meter provider is configured
	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	// CORS is disabled by default, see cors.go
	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Per-IP rate limiting
	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Secret operations
	router.GET("/v1/secrets", chestHandler.ListHandler)
	router.POST("/v1/secrets/*name", chestHandler.CreateOrUpdateHandler)
	router.GET("/v1/secrets/*name", chestHandler.GetHandler)
	router.DELETE("/v1/secrets/*name", chestHandler.DeleteHandler)

	s.router = router
}

// GetHandler returns the configured router as an http.Handler.
// Primarily used by tests that serve the API through httptest.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its backing bucket.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"bucket": "ok"}

	ready := true
	if s.store == nil {
		components["bucket"] = "error"
		ready = false
	} else if ok, err := s.store.IsAccessible(c.Request.Context()); err != nil || !ok {
		components["bucket"] = "error"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}

	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
