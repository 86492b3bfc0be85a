package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/WebDesk/backend/internal/api/http"
	"github.com/GriffinCanCode/WebDesk/backend/internal/api/middleware"
	"github.com/GriffinCanCode/WebDesk/backend/internal/api/ws"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/desktop"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/window"
	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/monitoring"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	desk    *desktop.Desktop
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
	httpSrv *nethttp.Server
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return NewWithLogger(cfg, logger)
}

// NewWithLogger creates a server that logs through logger
func NewWithLogger(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	logger.Info("Initializing WebDesk server",
		zap.String("port", cfg.Server.Port),
		zap.String("catalog", cfg.Desktop.Catalog),
		zap.Any("bounds", cfg.Desktop.Bounds()),
	)

	metrics := monitoring.NewMetrics()

	cat, err := catalog.Load(cfg.Desktop.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		zap.Int("dock_apps", len(cat.Dock)),
		zap.Int("icons", len(cat.Icons)),
		zap.Int("menus", len(cat.Menus)),
		zap.Int("launchpad_apps", len(cat.Launchpad)),
	)

	desk, err := desktop.New(cat, desktop.Options{
		Bounds:        cfg.Desktop.Bounds(),
		Window:        window.DefaultOptions(),
		ClockInterval: cfg.Desktop.ClockInterval,
		Logger:        logger.Logger,
		Recorder:      metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create desktop: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.Origins...)))
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

	http.NewHandlers(desk, logger.Logger).Register(router)
	http.NewMetricsHandlers(metrics).Register(router)

	wsHandler := ws.NewHandler(desk, logger.Logger, metrics, cfg.CORS.Origins)
	router.GET("/stream", wsHandler.HandleConnection)

	logger.Info("Server initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		router:  router,
		desk:    desk,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
		httpSrv: &nethttp.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		},
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Router exposes the configured engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Desktop exposes the desktop the server drives
func (s *Server) Desktop() *desktop.Desktop {
	return s.desk
}

// Run starts the clock and serves HTTP until Close is called
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ln)
}

// Serve starts the clock and serves HTTP on ln until Close is called
func (s *Server) Serve(ln net.Listener) error {
	s.desk.Start(s.ctx)
	s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))

	if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	s.cancel()
	// Ends every open stream so Shutdown does not wait on hijacked conns
	s.desk.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	var err error
	if err = s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		err = fmt.Errorf("failed to shut down http server: %w", err)
	}

	_ = s.logger.Sync()
	return err
}
