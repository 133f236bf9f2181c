package query

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

// networkRelation compiles the filters into a one-row-per-network select for
// the chosen strategy, together with the CTEs it reads from.
func (c *compileContext) networkRelation(withLatest bool) ([]cte, sq.SelectBuilder) {
	switch c.strategy {
	case models.StrategyNoFilter:
		return nil, materializedNetworks(withLatest)

	case models.StrategyNetworkOnly:
		p := c.compileRowFilters(networkColumns("ne"))
		net := c.compileNetworkFilters(materializedTargets())
		b := p.apply(materializedNetworks(withLatest))
		return nil, where(b, net)

	default:
		p := c.compileRowFilters(observationColumns("o"))
		ctes := append(observationCTEs(p), aggregationCTEs(c.stationary)...)
		net := c.compileNetworkFilters(aggregatedTargets())
		return ctes, where(aggregatedNetworks(), net)
	}
}

// observationScope compiles the filters into a relation of observation rows
// aliased o, for the shapes that return or bucket individual sightings.
func (c *compileContext) observationScope() ([]cte, string, []sq.Sqlizer) {
	switch c.strategy {
	case models.StrategyNoFilter:
		return nil, tableObservations + " o", nil

	case models.StrategyNetworkOnly:
		p := c.compileRowFilters(networkColumns("ne"))
		net := c.compileNetworkFilters(materializedTargets())
		networks := materializedJoins(sq.Select("ne.bssid").From(tableNetworks + " ne"))
		networks = where(p.apply(networks), net)
		return nil, tableObservations + " o", []sq.Sqlizer{sq.Expr("o.bssid IN (?)", networks)}

	default:
		p := c.compileRowFilters(observationColumns("o"))
		ctes := observationCTEs(p)
		net := c.compileNetworkFilters(aggregatedTargets())
		if len(net) == 0 {
			return ctes, cteFiltered + " o", nil
		}

		ctes = append(ctes, aggregationCTEs(c.stationary)...)
		networks := where(aggregatedJoins(sq.Select("r.bssid").From(cteRollup+" r")), net)
		ctes = append(ctes, cte{name: cteNetworkFilter, query: networks})
		return ctes, cteFiltered + " o", []sq.Sqlizer{
			sq.Expr("o.bssid IN (SELECT bssid FROM " + cteNetworkFilter + ")"),
		}
	}
}
