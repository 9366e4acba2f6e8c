package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/filearchitect/desktop/backend/internal/api/http"
	"github.com/filearchitect/desktop/backend/internal/api/middleware"
	"github.com/filearchitect/desktop/backend/internal/domain/templates"
	"github.com/filearchitect/desktop/backend/internal/infrastructure/config"
	"github.com/filearchitect/desktop/backend/internal/infrastructure/logging"
	"github.com/filearchitect/desktop/backend/internal/infrastructure/monitoring"
	"github.com/filearchitect/desktop/backend/internal/infrastructure/tracing"
	"github.com/filearchitect/desktop/backend/internal/platform"
	"github.com/filearchitect/desktop/backend/internal/providers/filesystem"
	"github.com/filearchitect/desktop/backend/internal/providers/system"
	"github.com/filearchitect/desktop/backend/internal/service"
)

// Version is reported by the health endpoint
var Version = "dev"

// Options replaces collaborators that are otherwise built from the config
type Options struct {
	Logger *logging.Logger
	Shell  platform.Shell
}

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	store    *templates.Store
	tracer   *tracing.Tracer
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	return New(cfg, Options{})
}

// New creates a server, preferring the collaborators in opts
func New(cfg *config.Config, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
	}

	logger.Info("Initializing File Architect backend",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("version", Version),
	)

	// Metrics first, the providers report into them
	metrics := monitoring.NewMetrics()
	tracer := tracing.New("backend", logger.Component("tracing"))

	shell := opts.Shell
	if shell == nil {
		shell = platform.NewNative(logger.Component("platform"))
	}
	if cfg.Templates.DocumentsDir != "" {
		shell = platform.Fixed{Shell: shell, Dir: cfg.Templates.DocumentsDir}
		logger.Info("Using configured documents directory", zap.String("dir", cfg.Templates.DocumentsDir))
	}

	store := templates.NewStore(shell, templates.Config{
		ProductName: cfg.Templates.ProductName,
		Subdir:      cfg.Templates.Subdir,
	}, logger.Component("templates")).WithMetrics(metrics)

	registry := service.NewRegistry(logger.Component("registry")).WithMetrics(metrics)
	if err := registerProviders(registry, cfg, shell, store, metrics, logger); err != nil {
		tracer.Close()
		return nil, err
	}

	// Seeding failures leave the store usable, so they do not stop startup
	if err := store.InitializeApp(); err != nil {
		logger.Warn("Failed to initialize template store", zap.Error(err))
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.AllowOrigins)))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, metrics, logger.Component("http"), Version)
	handlers.Register(router)

	logger.Info("Server initialized successfully", zap.Strings("commands", registry.Commands()))

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry: registry,
		store:    store,
		tracer:   tracer,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the command registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves until Shutdown is called
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and flushes
// spans and logs
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return err
}

func registerProviders(registry *service.Registry, cfg *config.Config, shell platform.Shell,
	store *templates.Store, metrics *monitoring.Metrics, logger *logging.Logger) error {

	providers := []service.Provider{
		filesystem.New(logger.Component("filesystem"), cfg.Archive.MaxEntries, metrics),
		templates.NewProvider(store),
		system.NewProvider(shell, logger.Component("system")),
	}

	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("failed to register %s provider: %w", p.Definition().ID, err)
		}
	}
	return nil
}
