// Package query compiles normalized network filters into parameterized PostgreSQL.
//
// A Builder owns one request. It normalizes and validates at construction and
// compiles exactly once; later Build calls return ErrBuilderConsumed.
//
// # Compilation Flow
//
//	NewBuilder(filters, enabled)
//	    ├── filters.Normalize   → typed Filters + EnabledFlags
//	    └── filters.Validate    → []ValidationError
//
//	Build*(opts)
//	    ├── chooseStrategy      → no_filter | network_only | full
//	    ├── compileRowFilters   → identity, radio, security, temporal, quality, spatial
//	    ├── compileNetworkFilters → observation count, threat, stationary
//	    ├── assemble            → CTEs + select (squirrel, ? placeholders)
//	    └── render              → one pass renumbering to $1..$N
//
// # Strategies
//
//	┌──────────────┬───────────────────────────────┬──────────────────────────────┐
//	│  Strategy    │  Chosen when                  │  Reads                       │
//	├──────────────┼───────────────────────────────┼──────────────────────────────┤
//	│  no_filter   │  no flag enabled              │  api_network_explorer_mv     │
//	│  network_only│  every enabled key is         │  api_network_explorer_mv     │
//	│              │  answerable per network       │  + threat scores, tags       │
//	│  full        │  anything else                │  observations → CTE pipeline │
//	└──────────────┴───────────────────────────────┴──────────────────────────────┘
//
// # Full Path CTEs
//
//	home           singleton home location (only when distance needs it)
//	filtered_obs   observations passing every row predicate
//	obs_rollup     counts, first/last seen, signal stats per bssid
//	obs_latest     DISTINCT ON latest observation per bssid
//	obs_centroids  centroid and time span per bssid
//	obs_spatial    max distance from centroid and stationary confidence
//	network_filter bssids passing network predicates (observation shapes only)
//
// # Shapes
//
//   - BuildNetworkList: one row per network, sorted, LIMIT/OFFSET
//   - BuildNetworkCount: COUNT(*) over the same relation
//   - BuildGeospatial: observation points, newest first
//   - BuildAnalytics: radio_types, signal_strength, security, temporal, top_networks
//
// Every enabled key lands in either AppliedFilters or IgnoredFilters of the
// returned QueryResult. Unsupported dimensions are ignored with a warning, never
// an error.
package query
