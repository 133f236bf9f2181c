package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
)

// PoolConfig parses the connection string and applies the pool settings.
func PoolConfig(cfg config.Database) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	if cfg.ConnectTimeout > 0 {
		pc.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	pc.ConnConfig.Tracer = NewQueryLogger(zap.S().Named("store"))

	return pc, nil
}

// NewPool connects to PostgreSQL, retrying with exponential backoff until the
// database answers a ping or MaxConnectElapsed runs out.
func NewPool(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	pc, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	log := zap.S().Named("store")
	connect := func() (*pgxpool.Pool, error) {
		pool, err := pgxpool.NewWithConfig(ctx, pc)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to create postgres pool: %w", err))
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		return pool, nil
	}

	pool, err := backoff.Retry(ctx, connect,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(cfg.MaxConnectElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warnw("database not ready", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Infow("connected to postgres", "host", pc.ConnConfig.Host, "database", pc.ConnConfig.Database, "max_conns", pc.MaxConns)
	return pool, nil
}
