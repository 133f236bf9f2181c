package v1

import (
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

// FilterPayload is the filter body shared by every query endpoint.
type FilterPayload struct {
	Filters map[string]any `json:"filters"`
	Enabled map[string]any `json:"enabled"`
}

type SortItem struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

type NetworkSearchRequest struct {
	FilterPayload
	Sort     []SortItem `json:"sort,omitempty"`
	Page     *int       `json:"page,omitempty"`
	PageSize *int       `json:"pageSize,omitempty"`
}

type GeospatialRequest struct {
	FilterPayload
	Bssids []string `json:"bssids,omitempty"`
	Limit  *int     `json:"limit,omitempty"`
}

type ExplainRequest struct {
	FilterPayload
	Shape  string     `json:"shape,omitempty"`
	Kind   string     `json:"kind,omitempty"`
	Sort   []SortItem `json:"sort,omitempty"`
	Limit  *int       `json:"limit,omitempty"`
	Offset *int       `json:"offset,omitempty"`
	Bssids []string   `json:"bssids,omitempty"`
}

// Report is the transparency report attached to every compiled query.
type Report struct {
	AppliedFilters []models.AppliedFilter `json:"appliedFilters"`
	IgnoredFilters []models.IgnoredFilter `json:"ignoredFilters"`
	Warnings       []string               `json:"warnings"`
	Strategy       models.Strategy        `json:"strategy"`
}

type NetworkSearchResponse struct {
	Report
	Networks  []map[string]any `json:"networks"`
	Page      int              `json:"page"`
	PageSize  int              `json:"pageSize"`
	PageCount int              `json:"pageCount"`
	Total     int64            `json:"total"`
}

type GeospatialResponse struct {
	Report
	Points []map[string]any `json:"points"`
}

type Aggregate struct {
	Report
	Rows []map[string]any `json:"rows"`
}

type AnalyticsResponse struct {
	Aggregates map[string]Aggregate `json:"aggregates"`
}

type ExplainResponse struct {
	Report
	Sql    string `json:"sql"`
	Params []any  `json:"params"`
}

type FilterSchemaResponse struct {
	Filters []filters.KeySpec `json:"filters"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type ValidationErrorResponse struct {
	Errors []models.ValidationError `json:"errors"`
}
