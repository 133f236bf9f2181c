package query

import (
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/util"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
	"github.com/cyclonite69/shadowcheck-static-sub002/pkg/geo"
)

const (
	DefaultListLimit       = 50
	DefaultGeospatialLimit = 5000
	DefaultTopNetworks     = 10
)

// ErrBuilderConsumed is returned by every Build call after the first.
var ErrBuilderConsumed error = srvErrors.NewBuilderConsumedError()

type Shape string

const (
	ShapeList       Shape = "list"
	ShapeCount      Shape = "count"
	ShapeGeospatial Shape = "geospatial"
	ShapeAnalytics  Shape = "analytics"
)

type AnalyticsKind string

const (
	AnalyticsRadioTypes     AnalyticsKind = "radio_types"
	AnalyticsSignalStrength AnalyticsKind = "signal_strength"
	AnalyticsSecurity       AnalyticsKind = "security"
	AnalyticsTemporal       AnalyticsKind = "temporal"
	AnalyticsTopNetworks    AnalyticsKind = "top_networks"
)

var AnalyticsKinds = []AnalyticsKind{
	AnalyticsRadioTypes,
	AnalyticsSignalStrength,
	AnalyticsSecurity,
	AnalyticsTemporal,
	AnalyticsTopNetworks,
}

type ListOptions struct {
	Sort   []SortParam
	Limit  uint64
	Offset uint64
}

type GeospatialOptions struct {
	BSSIDs []string
	Limit  uint64
}

type AnalyticsOptions struct {
	Limit uint64
}

type Option func(*Builder)

// WithStationaryParams overrides the scoring params. Params with a zero or
// negative divisor are ignored and the defaults stay in place.
func WithStationaryParams(p geo.StationaryParams) Option {
	return func(b *Builder) {
		if p.Usable() {
			b.stationary = p
		}
	}
}

// Builder compiles one filter request into one SQL statement. Filters are
// normalized and validated at construction; a Builder serves a single Build call.
type Builder struct {
	filters    models.Filters
	enabled    models.EnabledFlags
	problems   []models.ValidationError
	stationary geo.StationaryParams
	consumed   bool
}

// NewBuilder normalizes raw request input and validates it.
func NewBuilder(rawFilters, rawEnabled map[string]any, opts ...Option) *Builder {
	f, e := filters.Normalize(rawFilters, rawEnabled)
	return NewBuilderFromFilters(f, e, opts...)
}

// NewBuilderFromFilters validates already normalized filters.
func NewBuilderFromFilters(f models.Filters, e models.EnabledFlags, opts ...Option) *Builder {
	b := &Builder{
		filters:    f,
		enabled:    e,
		stationary: geo.DefaultStationaryParams(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.problems = filters.Validate(f, e)
	return b
}

func (b *Builder) ValidationErrors() []models.ValidationError {
	return b.problems
}

func (b *Builder) Strategy() models.Strategy {
	return chooseStrategy(b.enabled)
}

func (b *Builder) begin() (*compileContext, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	if len(b.problems) > 0 {
		return nil, srvErrors.NewValidationFailedError(b.problems)
	}
	return &compileContext{
		filters:    b.filters,
		enabled:    b.enabled,
		strategy:   chooseStrategy(b.enabled),
		stationary: b.stationary,
	}, nil
}

func (b *Builder) build(shape Shape, assemble func(c *compileContext) (statement, error)) (*models.QueryResult, error) {
	c, err := b.begin()
	if err != nil {
		return nil, err
	}

	stmt, err := assemble(c)
	if err != nil {
		return nil, err
	}

	sql, args, err := stmt.render()
	if err != nil {
		return nil, err
	}

	zap.S().Named("query_builder").Debugw("compiled query",
		"shape", shape,
		"strategy", c.strategy,
		"applied", len(c.report.applied),
		"ignored", len(c.report.ignored),
		"params", len(args))

	return c.report.result(sql, args, c.strategy), nil
}

// BuildNetworkList compiles a paged network list.
func (b *Builder) BuildNetworkList(opts ListOptions) (*models.QueryResult, error) {
	return b.build(ShapeList, func(c *compileContext) (statement, error) {
		ctes, body := c.networkRelation(true)
		limit := opts.Limit
		if limit == 0 {
			limit = DefaultListLimit
		}
		body = body.OrderBy(c.orderBy(opts.Sort)...).Suffix("LIMIT ? OFFSET ?", limit, opts.Offset)
		return statement{ctes: ctes, body: body}, nil
	})
}

// BuildNetworkCount compiles the row count matching a network list.
func (b *Builder) BuildNetworkCount() (*models.CountQuery, error) {
	r, err := b.build(ShapeCount, func(c *compileContext) (statement, error) {
		ctes, networks := c.networkRelation(false)
		body := sq.Select("COUNT(*) AS total").FromSelect(networks, "n")
		return statement{ctes: ctes, body: body}, nil
	})
	if err != nil {
		return nil, err
	}
	return &models.CountQuery{SQL: r.SQL, Params: r.Params, Strategy: r.Strategy}, nil
}

// BuildGeospatial compiles observation points for map rendering.
func (b *Builder) BuildGeospatial(opts GeospatialOptions) (*models.QueryResult, error) {
	return b.build(ShapeGeospatial, func(c *compileContext) (statement, error) {
		ctes, from, preds := c.observationScope()

		body := columns(sq.Select(),
			"o.bssid",
			"o.ssid",
			"o.lat",
			"o.lon",
			"o.level AS signal",
			"o.accuracy",
			"o.time AS observed_at",
			sq.Alias(sqlexpr.RadioTypeExpr(sqlexpr.ObservationRadio("o")), "type"),
			sq.Alias(sqlexpr.SecurityExpr("o.radio_capabilities"), "security"),
			"o.radio_frequency AS frequency",
			sq.Alias(sqlexpr.ChannelExpr("o.radio_frequency"), "channel"),
		).From(from).Where("o.lat IS NOT NULL AND o.lon IS NOT NULL")
		body = where(body, preds)

		if selected := util.UpperUnique(opts.BSSIDs); len(selected) > 0 {
			body = body.Where(sqlexpr.In(sq.Expr("UPPER(o.bssid)"), selected))
		}

		limit := opts.Limit
		if limit == 0 {
			limit = DefaultGeospatialLimit
		}
		body = body.OrderBy("o.time DESC", "o.bssid ASC").Suffix("LIMIT ?", limit)
		return statement{ctes: ctes, body: body}, nil
	})
}

// BuildAnalytics compiles one dashboard aggregate.
func (b *Builder) BuildAnalytics(kind AnalyticsKind, opts AnalyticsOptions) (*models.QueryResult, error) {
	return b.build(ShapeAnalytics, func(c *compileContext) (statement, error) {
		if kind == AnalyticsTemporal {
			ctes, from, preds := c.observationScope()
			body := sq.Select(
				"DATE_TRUNC('day', o.time) AS day",
				"COUNT(*) AS observations",
				"COUNT(DISTINCT o.bssid) AS networks",
			).From(from)
			body = where(body, preds).GroupBy("1").OrderBy("1")
			return statement{ctes: ctes, body: body}, nil
		}

		var body sq.SelectBuilder
		from := cteNetworks + " n"
		switch kind {
		case AnalyticsRadioTypes:
			body = sq.Select("n.type AS label", "COUNT(*) AS count").From(from).GroupBy("n.type").OrderBy("count DESC", "label ASC")
		case AnalyticsSecurity:
			body = sq.Select("n.security AS label", "COUNT(*) AS count").From(from).GroupBy("n.security").OrderBy("count DESC", "label ASC")
		case AnalyticsSignalStrength:
			body = sq.Select().Column(sq.Alias(sqlexpr.SignalBucketExpr("n.signal"), "label")).Column("COUNT(*) AS count").
				From(from).GroupBy("1").OrderBy("count DESC", "label ASC")
		case AnalyticsTopNetworks:
			limit := opts.Limit
			if limit == 0 {
				limit = DefaultTopNetworks
			}
			body = sq.Select("n.bssid", "n.ssid", "n.observations AS count").From(from).
				OrderBy("n.observations DESC NULLS LAST", "n.bssid ASC").Suffix("LIMIT ?", limit)
		default:
			return statement{}, srvErrors.NewUnsupportedShapeError(string(ShapeAnalytics) + "/" + string(kind))
		}

		ctes, networks := c.networkRelation(false)
		return statement{ctes: append(ctes, cte{name: cteNetworks, query: networks}), body: body}, nil
	})
}
