// Package server provides the HTTP server for the shadowcheck service.
//
// The server uses the Gin web framework. Mode "prod" switches gin to release
// mode; "dev" keeps debug output.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server :8000                     │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  RequestID (X-Request-ID)                               │  │
//	│  │  Logger (ginzap, "http" logger, request_id field)       │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  │  Metrics (shadowcheck_http_requests_total)              │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /health      database ping                                   │
//	│  /metrics     prometheus                                      │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  BearerAuth (only when Auth.Enabled)                    │  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, store, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() { errCh <- srv.Start(ctx) }()   // blocks, nil after Stop
//	<-shutdownCh
//	srv.Stop(ctx)                              // graceful shutdown
//
// # Authentication
//
// With Auth.Enabled the API group requires "Authorization: Bearer <token>"
// where the token is an HS256 JWT signed with Auth.Secret. Missing, expired
// or foreign tokens get 401 with an ErrorResponse body. /health and /metrics
// stay open.
package server
