package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/handlers"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/metrics"
)

const apiPrefix = "/api/v1"

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

func NewServer(cfg *config.Configuration, health HealthChecker, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg.Server.ServerMode == config.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	logger := zap.L().Named("http")
	engine.Use(
		handlers.RequestID(),
		ginzap.GinzapWithConfig(logger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			SkipPaths:  []string{"/health", "/metrics"},
			Context: func(c *gin.Context) []zap.Field {
				return []zap.Field{zap.String("request_id", handlers.RequestIDFrom(c))}
			},
		}),
		ginzap.RecoveryWithZap(logger, true),
		metrics.Middleware(),
	)

	engine.GET("/health", healthHandler(health))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group(apiPrefix)
	if cfg.Auth.Enabled {
		auth, err := NewAuthenticator(cfg.Auth.Secret)
		if err != nil {
			return nil, err
		}
		api.Use(BearerAuth(auth))
	}
	registerHandlerFn(api)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "not found", RequestID: handlers.RequestIDFrom(c)})
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server fails or is stopped. A stopped server returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	zap.S().Named("server").Infow("starting http server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop waits for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("stopping http server")
	return s.srv.Shutdown(ctx)
}

func healthHandler(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := health.Ping(ctx); err != nil {
			zap.S().Named("server").Warnw("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, v1.HealthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
		c.JSON(http.StatusOK, v1.HealthResponse{Status: "ok", Database: "ok"})
	}
}
