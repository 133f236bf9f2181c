// Package services implements the business logic layer for the shadowcheck service.
//
// Services sit between the HTTP handlers and the store. They turn a raw filter
// request into compiled statements with internal/query, execute them through the
// store and record compilation metrics.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	NetworkService
//	    ├── query.Builder ───► one per compiled statement
//	    ├── NetworkReader ───► store.NetworkStore (pgx)
//	    └── Scheduler ───────► analytics fan-out
//
// # NetworkService
//
//	┌────────────┬───────────────────────────────┬──────────────────────────────┐
//	│ Method     │ Builders                      │ Executes                     │
//	├────────────┼───────────────────────────────┼──────────────────────────────┤
//	│ List       │ list + count                  │ Rows, Count                  │
//	│ Geospatial │ geospatial                    │ Rows                         │
//	│ Analytics  │ one per aggregate (5)         │ Rows, in parallel            │
//	│ Explain    │ one, any shape                │ nothing                      │
//	└────────────┴───────────────────────────────┴──────────────────────────────┘
//
// Builders are single use, so List compiles the page and the total from two
// builders over the same request. Analytics validates once up front and then
// schedules one work item per aggregate; each work item builds its own query.
//
// Pagination:
//   - page defaults to 1
//   - pageSize defaults to Query.DefaultPageSize and is capped at Query.MaxPageSize
//   - geospatial limit defaults to Query.GeospatialLimit and is capped at Query.MaxGeospatialLimit
//
// Errors:
//   - ValidationFailedError: the request failed filter validation, nothing ran
//   - UnsupportedShapeError: Explain was asked for an unknown shape
//   - wrapped store errors otherwise
package services
