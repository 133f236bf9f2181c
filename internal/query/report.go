package query

import (
	"fmt"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

// reporter collects the transparency report of one compilation. Every enabled
// key ends up in exactly one of applied or ignored.
type reporter struct {
	applied  []models.AppliedFilter
	ignored  []models.IgnoredFilter
	warnings []string
}

func (r *reporter) apply(key models.FilterKey, value any) {
	r.applied = append(r.applied, models.AppliedFilter{
		Dimension: filters.DimensionOf(key),
		Field:     key,
		Value:     value,
	})
}

func (r *reporter) ignore(key models.FilterKey, reason models.IgnoreReason) {
	r.ignored = append(r.ignored, models.IgnoredFilter{
		Dimension: filters.DimensionOf(key),
		Field:     key,
		Reason:    reason,
	})
}

func (r *reporter) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *reporter) result(sql string, params []any, strategy models.Strategy) *models.QueryResult {
	return &models.QueryResult{
		SQL:            sql,
		Params:         params,
		AppliedFilters: append([]models.AppliedFilter{}, r.applied...),
		IgnoredFilters: append([]models.IgnoredFilter{}, r.ignored...),
		Warnings:       append([]string{}, r.warnings...),
		Strategy:       strategy,
	}
}
