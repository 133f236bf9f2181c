package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/metrics"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/query"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/store"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
	"github.com/cyclonite69/shadowcheck-static-sub002/pkg/scheduler"
)

// NetworkReader executes compiled statements.
type NetworkReader interface {
	Rows(ctx context.Context, sql string, args []any) ([]store.Row, error)
	Count(ctx context.Context, sql string, args []any) (int64, error)
}

// FilterRequest is the raw filter payload of every query endpoint.
type FilterRequest struct {
	Filters map[string]any
	Enabled map[string]any
}

type ListParams struct {
	FilterRequest
	Sort     []query.SortParam
	Page     uint64
	PageSize uint64
}

type ListResult struct {
	Networks []store.Row
	Total    int64
	Page     uint64
	PageSize uint64
	Report   *models.QueryResult
}

type GeospatialParams struct {
	FilterRequest
	BSSIDs []string
	Limit  uint64
}

type GeospatialResult struct {
	Points []store.Row
	Report *models.QueryResult
}

type Aggregate struct {
	Kind   query.AnalyticsKind
	Rows   []store.Row
	Report *models.QueryResult
}

type AnalyticsResult struct {
	Aggregates map[query.AnalyticsKind]Aggregate
}

type ExplainParams struct {
	FilterRequest
	Shape  query.Shape
	Kind   query.AnalyticsKind
	Sort   []query.SortParam
	Limit  uint64
	Offset uint64
	BSSIDs []string
}

type NetworkService struct {
	networks NetworkReader
	sched    *scheduler.Scheduler[Aggregate]
	cfg      config.Query
}

func NewNetworkService(networks NetworkReader, sched *scheduler.Scheduler[Aggregate], cfg config.Query) *NetworkService {
	return &NetworkService{networks: networks, sched: sched, cfg: cfg}
}

func (s *NetworkService) builder(r FilterRequest) *query.Builder {
	return query.NewBuilder(r.Filters, r.Enabled, query.WithStationaryParams(s.cfg.Stationary))
}

// compile runs one build and records its metrics.
func compile(shape query.Shape, build func() (*models.QueryResult, error)) (*models.QueryResult, error) {
	r, err := build()
	if err != nil {
		if srvErrors.IsValidationFailedError(err) {
			metrics.ValidationFailuresTotal.Inc()
		}
		return nil, err
	}
	metrics.RecordCompilation(string(shape), r)
	return r, nil
}

// List returns one page of networks and the total matching count. The list and
// the count are compiled by separate builders from the same request.
func (s *NetworkService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	page := max(params.Page, 1)
	pageSize := params.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	pageSize = min(pageSize, s.cfg.MaxPageSize)

	listed, err := compile(query.ShapeList, func() (*models.QueryResult, error) {
		return s.builder(params.FilterRequest).BuildNetworkList(query.ListOptions{
			Sort:   params.Sort,
			Limit:  pageSize,
			Offset: (page - 1) * pageSize,
		})
	})
	if err != nil {
		return nil, err
	}

	counted, err := compile(query.ShapeCount, func() (*models.QueryResult, error) {
		c, err := s.builder(params.FilterRequest).BuildNetworkCount()
		if err != nil {
			return nil, err
		}
		return &models.QueryResult{SQL: c.SQL, Params: c.Params, Strategy: c.Strategy}, nil
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.networks.Rows(ctx, listed.SQL, listed.Params)
	metrics.ObserveQuery(string(query.ShapeList), start)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}

	start = time.Now()
	total, err := s.networks.Count(ctx, counted.SQL, counted.Params)
	metrics.ObserveQuery(string(query.ShapeCount), start)
	if err != nil {
		return nil, fmt.Errorf("failed to count networks: %w", err)
	}

	return &ListResult{
		Networks: rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Report:   listed,
	}, nil
}

// Geospatial returns observation points for map rendering.
func (s *NetworkService) Geospatial(ctx context.Context, params GeospatialParams) (*GeospatialResult, error) {
	limit := params.Limit
	if limit == 0 {
		limit = s.cfg.GeospatialLimit
	}
	limit = min(limit, s.cfg.MaxGeospatialLimit)

	compiled, err := compile(query.ShapeGeospatial, func() (*models.QueryResult, error) {
		return s.builder(params.FilterRequest).BuildGeospatial(query.GeospatialOptions{BSSIDs: params.BSSIDs, Limit: limit})
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.networks.Rows(ctx, compiled.SQL, compiled.Params)
	metrics.ObserveQuery(string(query.ShapeGeospatial), start)
	if err != nil {
		return nil, fmt.Errorf("failed to load observation points: %w", err)
	}

	return &GeospatialResult{Points: rows, Report: compiled}, nil
}

// Analytics computes every dashboard aggregate in parallel. Each aggregate is
// compiled by its own builder on a scheduler worker.
func (s *NetworkService) Analytics(ctx context.Context, req FilterRequest) (*AnalyticsResult, error) {
	if problems := s.builder(req).ValidationErrors(); len(problems) > 0 {
		metrics.ValidationFailuresTotal.Inc()
		return nil, srvErrors.NewValidationFailedError(problems)
	}

	futures := make([]*scheduler.Future[Aggregate], 0, len(query.AnalyticsKinds))
	for _, kind := range query.AnalyticsKinds {
		futures = append(futures, s.sched.AddWork(func(ctx context.Context) (Aggregate, error) {
			return s.aggregate(ctx, req, kind)
		}))
	}

	result := &AnalyticsResult{Aggregates: make(map[query.AnalyticsKind]Aggregate, len(futures))}
	var firstErr error
	for _, f := range futures {
		r := f.Wait(ctx)
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		result.Aggregates[r.Data.Kind] = r.Data
	}
	if firstErr != nil {
		return nil, firstErr
	}

	zap.S().Named("network_service").Debugw("analytics computed", "aggregates", len(result.Aggregates))
	return result, nil
}

func (s *NetworkService) aggregate(ctx context.Context, req FilterRequest, kind query.AnalyticsKind) (Aggregate, error) {
	compiled, err := compile(query.ShapeAnalytics, func() (*models.QueryResult, error) {
		return s.builder(req).BuildAnalytics(kind, query.AnalyticsOptions{Limit: s.cfg.TopNetworks})
	})
	if err != nil {
		return Aggregate{}, err
	}

	start := time.Now()
	rows, err := s.networks.Rows(ctx, compiled.SQL, compiled.Params)
	metrics.ObserveQuery(string(query.ShapeAnalytics), start)
	if err != nil {
		return Aggregate{}, fmt.Errorf("failed to compute %s: %w", kind, err)
	}

	return Aggregate{Kind: kind, Rows: rows, Report: compiled}, nil
}

// Explain compiles a query without executing it.
func (s *NetworkService) Explain(params ExplainParams) (*models.QueryResult, error) {
	b := s.builder(params.FilterRequest)

	shape := params.Shape
	if shape == "" {
		shape = query.ShapeList
	}

	return compile(shape, func() (*models.QueryResult, error) {
		switch shape {
		case query.ShapeList:
			return b.BuildNetworkList(query.ListOptions{Sort: params.Sort, Limit: params.Limit, Offset: params.Offset})
		case query.ShapeCount:
			c, err := b.BuildNetworkCount()
			if err != nil {
				return nil, err
			}
			return &models.QueryResult{SQL: c.SQL, Params: c.Params, Strategy: c.Strategy}, nil
		case query.ShapeGeospatial:
			return b.BuildGeospatial(query.GeospatialOptions{BSSIDs: params.BSSIDs, Limit: params.Limit})
		case query.ShapeAnalytics:
			kind := params.Kind
			if kind == "" {
				kind = query.AnalyticsRadioTypes
			}
			return b.BuildAnalytics(kind, query.AnalyticsOptions{Limit: params.Limit})
		default:
			return nil, srvErrors.NewUnsupportedShapeError(string(shape))
		}
	})
}
