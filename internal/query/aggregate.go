package query

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
	"github.com/cyclonite69/shadowcheck-static-sub002/pkg/geo"
)

const (
	cteHome          = "home"
	cteFiltered      = "filtered_obs"
	cteRollup        = "obs_rollup"
	cteLatest        = "obs_latest"
	cteCentroids     = "obs_centroids"
	cteSpatial       = "obs_spatial"
	cteNetworkFilter = "network_filter"
	cteNetworks      = "networks"

	homeMarker = "home"
)

var observationFields = []string{
	"bssid", "ssid", "lat", "lon", "level", "accuracy", "time",
	"radio_type", "radio_frequency", "radio_capabilities", "geom",
}

func qualified(alias string, fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, alias+"."+f)
	}
	return out
}

func homeCTE() cte {
	q := sq.Select("ST_SetSRID(ST_MakePoint(m.longitude, m.latitude), 4326)::geography AS location").
		From(tableLocationMarkers + " m").
		Where(sq.Eq{"m.marker_type": homeMarker}).
		Suffix("LIMIT 1")
	return cte{name: cteHome, query: q}
}

// observationCTEs returns the home CTE when needed followed by filtered_obs.
func observationCTEs(p *compiledPredicate) []cte {
	q := sq.Select(qualified("o", observationFields)...).From(tableObservations + " o")
	if p.requiresHome {
		q = q.CrossJoin(cteHome)
	}
	q = p.apply(q)

	var ctes []cte
	if p.requiresHome {
		ctes = append(ctes, homeCTE())
	}
	return append(ctes, cte{name: cteFiltered, query: q})
}

// aggregationCTEs rolls filtered observations up to one row per network.
func aggregationCTEs(params geo.StationaryParams) []cte {
	rollup := sq.Select(
		"f.bssid",
		"COUNT(*) AS observation_count",
		"MIN(f.time) AS first_observed_at",
		"MAX(f.time) AS last_observed_at",
		"COUNT(DISTINCT CAST(f.time AS DATE)) AS unique_days",
		"COUNT(DISTINCT ROUND(CAST(f.lat AS NUMERIC), 3)::text || ',' || ROUND(CAST(f.lon AS NUMERIC), 3)::text) AS unique_locations",
		"AVG(f.level) AS avg_signal",
		"MIN(f.level) AS min_signal",
		"MAX(f.level) AS max_signal",
	).From(cteFiltered + " f").GroupBy("f.bssid")

	latest := sq.Select(qualified("f", observationFields)...).
		Options("DISTINCT ON (f.bssid)").
		From(cteFiltered + " f").
		OrderBy("f.bssid", "f.time DESC")

	centroids := sq.Select(
		"f.bssid",
		"ST_Centroid(ST_Collect(f.geom)) AS centroid",
		"MIN(f.time) AS first_time",
		"MAX(f.time) AS last_time",
		"COUNT(*) AS obs_count",
	).From(cteFiltered + " f").Where("f.geom IS NOT NULL").GroupBy("f.bssid")

	spatial := sq.Select(
		"c.bssid",
		maxDistance+" AS max_distance_meters",
		stationaryConfidence(params)+" AS stationary_confidence",
	).From(cteCentroids+" c").
		Join(cteFiltered+" f ON f.bssid = c.bssid AND f.geom IS NOT NULL").
		GroupBy("c.bssid", "c.obs_count", "c.first_time", "c.last_time")

	return []cte{
		{name: cteRollup, query: rollup},
		{name: cteLatest, query: latest},
		{name: cteCentroids, query: centroids},
		{name: cteSpatial, query: spatial},
	}
}

const maxDistance = "MAX(ST_Distance(f.geom::geography, c.centroid::geography))"

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "::float8"
}

// stationaryConfidence mirrors geo.StationaryConfidence.
func stationaryConfidence(p geo.StationaryParams) string {
	spatial := "(1 - LEAST(" + maxDistance + " / " + num(p.MaxDistanceMeters) + ", 1))"
	temporal := "(1 - LEAST(EXTRACT(EPOCH FROM (c.last_time - c.first_time))::float8 / 3600.0 / " + num(p.MaxSpanHours) + ", 1))"
	density := "LEAST(c.obs_count::float8 / " + num(p.SaturationCount) + ", 1)"
	score := num(p.SpatialWeight) + " * " + spatial + " + " +
		num(p.TemporalWeight) + " * " + temporal + " + " +
		num(p.DensityWeight) + " * " + density
	return "CASE WHEN c.obs_count < " + strconv.Itoa(p.MinObservations) +
		" THEN NULL ELSE GREATEST(0, LEAST(1, ROUND(CAST(" + score + " AS NUMERIC), 3))) END"
}

// aggregatedNetworks selects one row per network from the aggregation CTEs.
func aggregatedNetworks() sq.SelectBuilder {
	latestRadio := sqlexpr.ObservationRadio("l")
	b := columns(sq.Select(),
		"r.bssid",
		"l.ssid",
		sq.Alias(sqlexpr.RadioTypeExpr(latestRadio), "type"),
		sq.Alias(sqlexpr.SecurityExpr("l.radio_capabilities"), "security"),
		"l.radio_frequency AS frequency",
		sq.Alias(sqlexpr.ChannelExpr("l.radio_frequency"), "channel"),
		"r.observation_count AS observations",
		"r.first_observed_at AS first_seen",
		"r.last_observed_at AS last_seen",
		"l.lat",
		"l.lon",
		"r.max_signal AS signal",
		"r.avg_signal",
		"r.min_signal",
		"l.accuracy AS accuracy_meters",
		"ne.distance_from_home_km",
		sq.Alias(sqlexpr.ThreatScoreExpr(threatColumns), "threat_score"),
		sq.Alias(sqlexpr.ThreatLevelExpr(threatColumns), "threat_level"),
		"ne.manufacturer",
		"l.time AS observed_at",
		"r.unique_days",
		"r.unique_locations",
		"s.stationary_confidence",
	)
	return aggregatedJoins(b.From(cteRollup + " r"))
}

func aggregatedJoins(b sq.SelectBuilder) sq.SelectBuilder {
	return b.
		Join(cteLatest + " l ON l.bssid = r.bssid").
		LeftJoin(cteSpatial + " s ON s.bssid = r.bssid").
		LeftJoin(tableNetworks + " ne ON ne.bssid = r.bssid").
		LeftJoin(tableThreatScores + " nts ON nts.bssid = r.bssid").
		LeftJoin(tableTags + " nt ON nt.bssid = r.bssid")
}

// materializedNetworks selects one row per network from the explorer view.
// withLatest adds the most recent observation through a lateral lookup.
func materializedNetworks(withLatest bool) sq.SelectBuilder {
	b := columns(sq.Select(),
		"ne.bssid",
		"ne.ssid",
		sq.Alias(sqlexpr.RadioTypeExpr(sqlexpr.NetworkRadio("ne")), "type"),
		sq.Alias(sqlexpr.SecurityExpr("ne.security"), "security"),
		"ne.frequency",
		sq.Alias(sqlexpr.ChannelExpr("ne.frequency"), "channel"),
		"ne.observations",
		"ne.first_seen",
		"ne.last_seen",
		"ne.lat",
		"ne.lon",
		"ne.signal",
		"ne.accuracy_meters",
		"ne.distance_from_home_km",
		sq.Alias(sqlexpr.ThreatScoreExpr(threatColumns), "threat_score"),
		sq.Alias(sqlexpr.ThreatLevelExpr(threatColumns), "threat_level"),
		"ne.manufacturer",
	)
	if withLatest {
		b = b.Column("latest.time AS observed_at").Column("latest.level AS latest_signal")
	}
	b = b.Column("CAST(NULL AS DOUBLE PRECISION) AS stationary_confidence")

	b = materializedJoins(b.From(tableNetworks + " ne"))
	if withLatest {
		b = b.JoinClause("LEFT JOIN LATERAL (SELECT lo.time, lo.level FROM " + tableObservations +
			" lo WHERE lo.bssid = ne.bssid ORDER BY lo.time DESC LIMIT 1) latest ON TRUE")
	}
	return b
}

func materializedJoins(b sq.SelectBuilder) sq.SelectBuilder {
	return b.
		LeftJoin(tableThreatScores + " nts ON nts.bssid = ne.bssid").
		LeftJoin(tableTags + " nt ON nt.bssid = ne.bssid")
}
