// Package config defines the configuration structure for the shadowcheck service.
//
// Defaults come from `default:` struct tags applied by creasty/defaults. The CLI
// binds every field to a flag and cobrautil syncs flags with SHADOWCHECK_* env
// variables through viper. Validate checks the result with validator tags.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - PostgreSQL pool settings
//	├── Query          - Page sizes, limits and stationary confidence weights
//	├── Auth           - Bearer token authentication
//	├── LogFormat      - console | json
//	└── LogLevel       - debug | info | warn | error
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ "prod" runs gin in release mode        │
//	│ HTTPPort         │ 8000    │ HTTP listen port                       │
//	│ ShutdownTimeout  │ 10s     │ Graceful shutdown deadline             │
//	│ Workers          │ 5       │ Analytics scheduler workers            │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Database Configuration
//
//	┌───────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field             │ Default │ Description                            │
//	├───────────────────┼─────────┼────────────────────────────────────────┤
//	│ URL               │ local   │ postgres:// connection string          │
//	│ MaxConns          │ 10      │ Pool size                              │
//	│ MinConns          │ 2       │ Idle connections kept open             │
//	│ ConnectTimeout    │ 5s      │ Per attempt                            │
//	│ MaxConnectElapsed │ 30s     │ Total retry budget at startup          │
//	└───────────────────┴─────────┴────────────────────────────────────────┘
//
// # Query Configuration
//
//	┌────────────────────┬─────────┬──────────────────────────────────────┐
//	│ Field              │ Default │ Description                          │
//	├────────────────────┼─────────┼──────────────────────────────────────┤
//	│ DefaultPageSize    │ 50      │ Network list page size               │
//	│ MaxPageSize        │ 500     │ Upper bound for pageSize             │
//	│ GeospatialLimit    │ 5000    │ Default observation points           │
//	│ MaxGeospatialLimit │ 50000   │ Upper bound for limit                │
//	│ TopNetworks        │ 10      │ Rows in the top_networks aggregate   │
//	│ Stationary         │         │ geo.StationaryParams weights         │
//	└────────────────────┴─────────┴──────────────────────────────────────┘
package config
