package query

import (
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

type SortParam struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

const defaultSortField = "last_seen"

// sortAliases maps accepted spellings onto logical sort keys.
var sortAliases = map[string]string{
	"observedAt":           "observed_at",
	"lastSeen":             "last_seen",
	"firstSeen":            "first_seen",
	"rssi":                 "signal",
	"threat_score":         "threat",
	"threatScore":          "threat",
	"distance":             "distance_from_home_km",
	"distanceFromHome":     "distance_from_home_km",
	"stationaryConfidence": "stationary_confidence",
	"radio_type":           "type",
	"radioType":            "type",
}

// Bare output aliases (threat_score, security, channel, type) refer to computed select columns.
var sortColumns = map[models.Strategy]map[string]string{
	models.StrategyNoFilter: materializedSortColumns,
	models.StrategyNetworkOnly: materializedSortColumns,
	models.StrategyFull: {
		"observed_at":           "l.time",
		"last_seen":             "r.last_observed_at",
		"first_seen":            "r.first_observed_at",
		"signal":                "r.max_signal",
		"observations":          "r.observation_count",
		"threat":                "threat_score",
		"security":              "security",
		"distance_from_home_km": "ne.distance_from_home_km",
		"stationary_confidence": "s.stationary_confidence",
		"ssid":                  "l.ssid",
		"bssid":                 "r.bssid",
		"manufacturer":          "ne.manufacturer",
		"frequency":             "l.radio_frequency",
		"channel":               "channel",
		"type":                  "type",
	},
}

var materializedSortColumns = map[string]string{
	"observed_at":           "latest.time",
	"last_seen":             "ne.last_seen",
	"first_seen":            "ne.first_seen",
	"signal":                "ne.signal",
	"observations":          "ne.observations",
	"threat":                "threat_score",
	"security":              "security",
	"distance_from_home_km": "ne.distance_from_home_km",
	"ssid":                  "ne.ssid",
	"bssid":                 "ne.bssid",
	"manufacturer":          "ne.manufacturer",
	"frequency":             "ne.frequency",
	"channel":               "channel",
	"type":                  "type",
}

var logicalSortKeys = map[string]bool{
	"observed_at": true, "last_seen": true, "first_seen": true, "signal": true,
	"observations": true, "threat": true, "security": true, "distance_from_home_km": true,
	"stationary_confidence": true, "ssid": true, "bssid": true, "manufacturer": true,
	"frequency": true, "channel": true, "type": true,
}

// orderBy translates logical sort keys into ORDER BY items for the strategy.
// Unknown keys are dropped; bssid always breaks ties.
func (c *compileContext) orderBy(sorts []SortParam) []string {
	cols := sortColumns[c.strategy]

	var clauses []string
	for _, s := range sorts {
		field := s.Field
		if alias, ok := sortAliases[field]; ok {
			field = alias
		}
		col, ok := cols[field]
		if !ok {
			if logicalSortKeys[field] {
				c.report.warn("sort by %s is not available on the %s path and was skipped", field, c.strategy)
			} else {
				c.report.warn("unknown sort key %q was skipped", s.Field)
			}
			continue
		}
		dir := " ASC"
		if s.Desc {
			dir = " DESC"
		}
		clauses = append(clauses, col+dir+" NULLS LAST")
	}

	if len(clauses) == 0 {
		clauses = append(clauses, cols[defaultSortField]+" DESC NULLS LAST")
	}
	return append(clauses, cols["bssid"]+" ASC")
}
