package v1

import (
	"strings"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/query"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/services"
)

func (p FilterPayload) ToRequest() services.FilterRequest {
	return services.FilterRequest{Filters: p.Filters, Enabled: p.Enabled}
}

// ToSortParams converts API sort items. Direction "desc" (any case) sorts descending.
func ToSortParams(items []SortItem) []query.SortParam {
	params := make([]query.SortParam, 0, len(items))
	for _, s := range items {
		if s.Field == "" {
			continue
		}
		params = append(params, query.SortParam{Field: s.Field, Desc: strings.EqualFold(s.Direction, "desc")})
	}
	return params
}

func NewReport(r *models.QueryResult) Report {
	return Report{
		AppliedFilters: nonNil(r.AppliedFilters),
		IgnoredFilters: nonNil(r.IgnoredFilters),
		Warnings:       nonNil(r.Warnings),
		Strategy:       r.Strategy,
	}
}

func NewNetworkSearchResponse(r *services.ListResult) NetworkSearchResponse {
	pageSize := int(r.PageSize)
	pageCount := 1
	if pageSize > 0 {
		pageCount = max(int((r.Total+int64(pageSize)-1)/int64(pageSize)), 1)
	}
	return NetworkSearchResponse{
		Report:    NewReport(r.Report),
		Networks:  nonNil(r.Networks),
		Page:      int(r.Page),
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     r.Total,
	}
}

func NewGeospatialResponse(r *services.GeospatialResult) GeospatialResponse {
	return GeospatialResponse{Report: NewReport(r.Report), Points: nonNil(r.Points)}
}

func NewAnalyticsResponse(r *services.AnalyticsResult) AnalyticsResponse {
	resp := AnalyticsResponse{Aggregates: make(map[string]Aggregate, len(r.Aggregates))}
	for kind, a := range r.Aggregates {
		resp.Aggregates[string(kind)] = Aggregate{Report: NewReport(a.Report), Rows: nonNil(a.Rows)}
	}
	return resp
}

func NewExplainResponse(r *models.QueryResult) ExplainResponse {
	return ExplainResponse{Report: NewReport(r), Sql: r.SQL, Params: nonNil(r.Params)}
}

func (r NetworkSearchRequest) ToParams() services.ListParams {
	return services.ListParams{
		FilterRequest: r.ToRequest(),
		Sort:          ToSortParams(r.Sort),
		Page:          positive(r.Page),
		PageSize:      positive(r.PageSize),
	}
}

func (r GeospatialRequest) ToParams() services.GeospatialParams {
	return services.GeospatialParams{
		FilterRequest: r.ToRequest(),
		BSSIDs:        r.Bssids,
		Limit:         positive(r.Limit),
	}
}

func (r ExplainRequest) ToParams() services.ExplainParams {
	return services.ExplainParams{
		FilterRequest: r.ToRequest(),
		Shape:         query.Shape(r.Shape),
		Kind:          query.AnalyticsKind(r.Kind),
		Sort:          ToSortParams(r.Sort),
		Limit:         positive(r.Limit),
		Offset:        positive(r.Offset),
		BSSIDs:        r.Bssids,
	}
}

func positive(v *int) uint64 {
	if v == nil || *v < 0 {
		return 0
	}
	return uint64(*v)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
