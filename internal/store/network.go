package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Row is one result row keyed by column name.
type Row = map[string]any

// NetworkStore executes compiled network queries.
type NetworkStore struct {
	db Querier
}

func NewNetworkStore(db Querier) *NetworkStore {
	return &NetworkStore{db: db}
}

// Rows runs a compiled query and collects every row.
func (s *NetworkStore) Rows(ctx context.Context, sql string, args []any) ([]Row, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if out == nil {
		out = []Row{}
	}
	return out, nil
}

// Count runs a compiled count query.
func (s *NetworkStore) Count(ctx context.Context, sql string, args []any) (int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count networks: %w", err)
	}
	return total, nil
}
