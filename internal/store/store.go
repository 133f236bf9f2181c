package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the part of a pgx pool the stores read through.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store provides access to all storage repositories.
type Store struct {
	pool     *pgxpool.Pool
	networks *NetworkStore
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:     pool,
		networks: NewNetworkStore(pool),
	}
}

func (s *Store) Networks() *NetworkStore {
	return s.networks
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}
