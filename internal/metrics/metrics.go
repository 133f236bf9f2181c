package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

var (
	CompilationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowcheck_compilations_total",
			Help: "Total number of compiled queries",
		},
		[]string{"shape", "strategy"},
	)

	FiltersAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowcheck_filters_applied_total",
			Help: "Total number of filters applied, by dimension",
		},
		[]string{"dimension"},
	)

	FiltersIgnoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowcheck_filters_ignored_total",
			Help: "Total number of enabled filters that were ignored, by reason",
		},
		[]string{"reason"},
	)

	ValidationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shadowcheck_validation_failures_total",
			Help: "Total number of requests rejected by filter validation",
		},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shadowcheck_query_duration_seconds",
			Help:    "Duration of query execution in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"shape"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shadowcheck_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordCompilation counts a compiled query and its transparency report.
func RecordCompilation(shape string, r *models.QueryResult) {
	CompilationsTotal.WithLabelValues(shape, string(r.Strategy)).Inc()
	for _, a := range r.AppliedFilters {
		FiltersAppliedTotal.WithLabelValues(string(a.Dimension)).Inc()
	}
	for _, i := range r.IgnoredFilters {
		FiltersIgnoredTotal.WithLabelValues(string(i.Reason)).Inc()
	}
}

func ObserveQuery(shape string, start time.Time) {
	QueryDuration.WithLabelValues(shape).Observe(time.Since(start).Seconds())
}

// Middleware returns a gin middleware that counts HTTP requests by route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
