package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/numbertheory/internal/api/http"
	"github.com/GriffinCanCode/numbertheory/internal/api/middleware"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/config"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/logging"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory"
	"github.com/GriffinCanCode/numbertheory/internal/service"
)

// Server wires the registry, middleware and handlers behind one HTTP listener
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server with the given configuration
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Initializing number theory server",
		zap.String("addr", cfg.Server.Addr()),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	metrics := monitoring.NewMetrics()

	serviceRegistry := service.NewRegistry()
	provider := numbertheory.NewProvider(
		numbertheory.WithLogger(logger.Named("ntp")),
		numbertheory.WithMetrics(metrics),
	)
	if err := serviceRegistry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register number theory provider: %w", err)
	}
	logger.Info("Registered service provider", zap.String("service", numbertheory.ServiceID))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Named("http")))
	router.Use(monitoring.Middleware(metrics))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.Origins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.Origins
	}
	router.Use(middleware.CORS(corsCfg))

	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	apihttp.NewHandlers(serviceRegistry, metrics, logger.Named("api")).RegisterRoutes(router)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		http: &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: router,
		},
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry exposes the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the HTTP server and blocks until it stops. A graceful Shutdown
// makes Run return nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, bounded by the configured timeout
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	_ = s.logger.Sync()
	return err
}

func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	return logging.New(logging.Config{Level: cfg.Level, Development: cfg.Development})
}
