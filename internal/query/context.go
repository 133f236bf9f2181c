package query

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
	"github.com/cyclonite69/shadowcheck-static-sub002/pkg/geo"
)

// compileContext is the mutable state of a single compilation. It is owned by
// one Builder and never shared.
type compileContext struct {
	filters    models.Filters
	enabled    models.EnabledFlags
	strategy   models.Strategy
	stationary geo.StationaryParams
	report     reporter
}

// active reports whether key should be compiled. An enabled key without a value
// is recorded as ignored. Call it once per key per compilation.
func (c *compileContext) active(key models.FilterKey) bool {
	if !c.enabled.Enabled(key) {
		return false
	}
	if !c.filters.Has(key) {
		c.report.ignore(key, models.ReasonEnabledWithoutValue)
		return false
	}
	return true
}

// members keeps the recognized values of a set filter. With none left the key
// is recorded as ignored and nil is returned.
func (c *compileContext) members(key models.FilterKey, values []string) []string {
	valid := filters.ValidMembers(key, values)
	if len(valid) == 0 {
		c.report.ignore(key, models.ReasonNoValidValues)
		c.report.warn("%s has no recognized values and was ignored", key)
		return nil
	}
	if len(valid) < len(values) {
		c.report.warn("%s: unrecognized values dropped", key)
	}
	return valid
}

func chooseStrategy(e models.EnabledFlags) models.Strategy {
	keys := e.Keys()
	if len(keys) == 0 {
		return models.StrategyNoFilter
	}
	for _, k := range keys {
		if !filters.IsNetworkOnly(k) {
			return models.StrategyFull
		}
	}
	return models.StrategyNetworkOnly
}

// rowColumns names the per-row columns predicates are compiled against.
type rowColumns struct {
	alias        string
	bssid        string
	ssid         string
	signal       string
	frequency    string
	capabilities string
	accuracy     string
	lat          string
	lon          string
	time         string
	geom         string
	radio        sqlexpr.RadioColumns
	// manufacturer is empty when the name comes from the manufacturer join.
	manufacturer string
	// distanceKm is empty when distance is measured against the home CTE.
	distanceKm string
}

func observationColumns(alias string) rowColumns {
	return rowColumns{
		alias:        alias,
		bssid:        alias + ".bssid",
		ssid:         alias + ".ssid",
		signal:       alias + ".level",
		frequency:    alias + ".radio_frequency",
		capabilities: alias + ".radio_capabilities",
		accuracy:     alias + ".accuracy",
		lat:          alias + ".lat",
		lon:          alias + ".lon",
		time:         alias + ".time",
		geom:         alias + ".geom",
		radio:        sqlexpr.ObservationRadio(alias),
	}
}

func networkColumns(alias string) rowColumns {
	return rowColumns{
		alias:        alias,
		bssid:        alias + ".bssid",
		ssid:         alias + ".ssid",
		signal:       alias + ".signal",
		frequency:    alias + ".frequency",
		capabilities: alias + ".security",
		accuracy:     alias + ".accuracy_meters",
		lat:          alias + ".lat",
		lon:          alias + ".lon",
		time:         alias + ".last_seen",
		radio:        sqlexpr.NetworkRadio(alias),
		manufacturer: alias + ".manufacturer",
		distanceKm:   alias + ".distance_from_home_km",
	}
}

// point returns a geometry for the row, building one from lat/lon when the row has none.
func (r rowColumns) point() string {
	if r.geom != "" {
		return r.geom
	}
	return "ST_SetSRID(ST_MakePoint(" + r.lon + ", " + r.lat + "), 4326)"
}

// networkTargets names the per-network values network-level predicates compare.
type networkTargets struct {
	observations sq.Sqlizer
	threatScore  sq.Sqlizer
	threatLevel  sq.Sqlizer
	// stationary is set on the aggregated path only. Stationary filters are
	// not network-only, so they always select that path.
	stationary sq.Sqlizer
}

var threatColumns = sqlexpr.ScoreColumns("nts", "nt")

func materializedTargets() networkTargets {
	return networkTargets{
		observations: sqlexpr.Column("ne.observations"),
		threatScore:  sqlexpr.ThreatScoreExpr(threatColumns),
		threatLevel:  sqlexpr.ThreatLevelExpr(threatColumns),
	}
}

func aggregatedTargets() networkTargets {
	return networkTargets{
		observations: sqlexpr.Column("r.observation_count"),
		threatScore:  sqlexpr.ThreatScoreExpr(threatColumns),
		threatLevel:  sqlexpr.ThreatLevelExpr(threatColumns),
		stationary:   sqlexpr.Column("s.stationary_confidence"),
	}
}
