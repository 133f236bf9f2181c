package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/handlers"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/server"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/services"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/store"
	"github.com/cyclonite69/shadowcheck-static-sub002/pkg/scheduler"
)

func NewServeCommand(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP query service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfg.Server.ServerMode, "mode", cfg.Server.ServerMode, "server mode (dev, prod)")
	fs.IntVar(&cfg.Server.HTTPPort, "port", cfg.Server.HTTPPort, "HTTP listen port")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", cfg.Server.ShutdownTimeout, "graceful shutdown deadline")
	fs.IntVar(&cfg.Server.Workers, "workers", cfg.Server.Workers, "analytics workers")
	return cmd
}

func serve(ctx context.Context, cfg *config.Configuration) error {
	log := zap.S().Named("serve")

	pool, err := store.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	st := store.NewStore(pool)
	defer st.Close()

	sched := scheduler.NewScheduler[services.Aggregate](cfg.Server.Workers)
	defer sched.Close()

	networkSrv := services.NewNetworkService(st.Networks(), sched, cfg.Query)
	srv, err := server.NewServer(cfg, st, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, handlers.New(networkSrv))
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
