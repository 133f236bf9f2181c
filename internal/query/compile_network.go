package query

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
)

// compileNetworkFilters compiles the predicates that need per-network values.
func (c *compileContext) compileNetworkFilters(t networkTargets) []sq.Sqlizer {
	f := c.filters
	var preds []sq.Sqlizer

	if c.active(models.FilterObservationCountMin) {
		preds = append(preds, sqlexpr.Compare(t.observations, ">=", *f.ObservationCountMin))
		c.report.apply(models.FilterObservationCountMin, *f.ObservationCountMin)
	}
	if c.active(models.FilterObservationCountMax) {
		preds = append(preds, sqlexpr.Compare(t.observations, "<=", *f.ObservationCountMax))
		c.report.apply(models.FilterObservationCountMax, *f.ObservationCountMax)
	}

	if c.active(models.FilterThreatScoreMin) {
		preds = append(preds, sqlexpr.Compare(t.threatScore, ">=", *f.ThreatScoreMin))
		c.report.apply(models.FilterThreatScoreMin, *f.ThreatScoreMin)
	}
	if c.active(models.FilterThreatScoreMax) {
		preds = append(preds, sqlexpr.Compare(t.threatScore, "<=", *f.ThreatScoreMax))
		c.report.apply(models.FilterThreatScoreMax, *f.ThreatScoreMax)
	}

	if c.active(models.FilterThreatCategories) {
		if valid := c.members(models.FilterThreatCategories, f.ThreatCategories); valid != nil {
			preds = append(preds, sqlexpr.In(t.threatLevel, valid))
			c.report.apply(models.FilterThreatCategories, valid)
		}
	}

	preds = c.stationaryRange(t, preds, models.FilterStationaryConfidenceMin, ">=", f.StationaryConfidenceMin)
	preds = c.stationaryRange(t, preds, models.FilterStationaryConfidenceMax, "<=", f.StationaryConfidenceMax)

	return preds
}

func (c *compileContext) stationaryRange(t networkTargets, preds []sq.Sqlizer, key models.FilterKey, op string, v *float64) []sq.Sqlizer {
	if !c.active(key) {
		return preds
	}
	c.report.apply(key, *v)
	return append(preds, sqlexpr.Compare(t.stationary, op, *v))
}
