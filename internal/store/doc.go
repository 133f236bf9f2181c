// Package store implements the data access layer for the shadowcheck service.
//
// The store never builds SQL. It executes statements compiled by internal/query
// against PostgreSQL/PostGIS through a pgx connection pool.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                        NetworkStore                             │
//	│              Rows(sql, args)      Count(sql, args)              │
//	├─────────────────────────────────────────────────────────────────┤
//	│                 pgxpool.Pool (QueryLogger tracer)               │
//	│                             ▼                                   │
//	│   app.observations, app.api_network_explorer_mv,                │
//	│   app.network_threat_scores, app.network_tags,                  │
//	│   app.location_markers, app.radio_manufacturers                 │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	NewPool(ctx, cfg.Database)
//	    ├── PoolConfig      → parse URL, pool sizes, attach QueryLogger
//	    └── backoff.Retry   → create pool + ping until MaxConnectElapsed
//
//	NewStore(pool)
//	    └── NetworkStore over the pool
//
// # NetworkStore
//
//   - Rows(ctx, sql, args) → []Row, one map per row keyed by column name
//   - Count(ctx, sql, args) → int64 from a single COUNT(*) row
//
// Rows are returned as maps because every query shape selects a different
// column set; the handlers serialize them as they come.
//
// # QueryLogger
//
// All statements pass through a pgx QueryTracer that logs SQL, argument count,
// duration and affected rows at debug level under the "store" logger.
package store
