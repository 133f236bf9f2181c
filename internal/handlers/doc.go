// Package handlers implements the HTTP API layer for the shadowcheck service.
//
// Handlers decode the request body, convert it with the api/v1 helpers, call
// the NetworkService and encode the response. They never build SQL.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - JSON decoding (goccy/go-json)                                │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Result-to-API conversion                                     │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                  services.NetworkService                        │
//	└─────────────────────────────────────────────────────────────────┘
//
// Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router.Group("/api/v1"), handler)
//
// # API Endpoints
//
//	┌────────┬──────────────────────┬─────────────────────────────────────────┐
//	│ Method │ Endpoint             │ Description                             │
//	├────────┼──────────────────────┼─────────────────────────────────────────┤
//	│ POST   │ /networks/search     │ Paginated network list with total       │
//	│ POST   │ /networks/geospatial │ Observation points for the map          │
//	│ POST   │ /networks/analytics  │ All aggregates for the same filters     │
//	│ POST   │ /filters/explain     │ Compiled SQL, params and report         │
//	│ GET    │ /filters/schema      │ Filter keys, dimensions and vocabulary  │
//	└────────┴──────────────────────┴─────────────────────────────────────────┘
//
// Every query response embeds the transparency report: appliedFilters,
// ignoredFilters, warnings and strategy.
//
// # Error Handling
//
//	┌─────────────────────────┬────────┬──────────────────────────────────┐
//	│ Error                   │ Status │ Body                             │
//	├─────────────────────────┼────────┼──────────────────────────────────┤
//	│ malformed JSON          │ 400    │ {"error": "invalid request ..."} │
//	│ ValidationFailedError   │ 400    │ {"errors": [{field, message}]}   │
//	│ UnsupportedShapeError   │ 400    │ {"error": ...}                   │
//	│ context cancelled       │ 503    │ {"error": "request cancelled"}   │
//	│ anything else           │ 500    │ {"error": "failed to ..."}       │
//	└─────────────────────────┴────────┴──────────────────────────────────┘
//
// 500 responses carry the request id from the RequestID middleware; the
// underlying error is logged, not returned.
package handlers
