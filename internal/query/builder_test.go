package query_test

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/query"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
	"github.com/cyclonite69/shadowcheck-static-sub002/pkg/geo"
)

var placeholder = regexp.MustCompile(`\$(\d+)`)

// expectParity checks that placeholders run 1..N with no gaps and N equals len(params).
func expectParity(sql string, params []any) {
	seen := map[int]bool{}
	highest := 0
	for _, m := range placeholder.FindAllStringSubmatch(sql, -1) {
		n, err := strconv.Atoi(m[1])
		Expect(err).NotTo(HaveOccurred())
		seen[n] = true
		if n > highest {
			highest = n
		}
	}
	Expect(highest).To(Equal(len(params)))
	for i := 1; i <= highest; i++ {
		Expect(seen).To(HaveKey(i))
	}
}

func expectReportCoversEnabled(r *models.QueryResult, enabled int) {
	Expect(len(r.AppliedFilters) + len(r.IgnoredFilters)).To(Equal(enabled))
}

func list(filters, enabled map[string]any) *models.QueryResult {
	r, err := query.NewBuilder(filters, enabled).BuildNetworkList(query.ListOptions{})
	Expect(err).NotTo(HaveOccurred())
	return r
}

var _ = Describe("Builder", func() {
	Context("strategy selection", func() {
		DescribeTable("selects the cheapest path",
			func(enabled map[string]any, expected models.Strategy) {
				filters := map[string]any{
					"ssid":           "cafe",
					"rssiMin":        -70.0,
					"threatScoreMin": 40.0,
					"boundingBox":    map[string]any{"north": 1.0, "south": 0.0, "east": 1.0, "west": 0.0},
				}
				b := query.NewBuilder(filters, enabled)
				Expect(b.Strategy()).To(Equal(expected))

				r, err := b.BuildNetworkList(query.ListOptions{})
				Expect(err).NotTo(HaveOccurred())
				Expect(r.Strategy).To(Equal(expected))
			},
			Entry("nothing enabled", map[string]any{}, models.StrategyNoFilter),
			Entry("ssid only", map[string]any{"ssid": true}, models.StrategyNetworkOnly),
			Entry("ssid and threat", map[string]any{"ssid": true, "threatScoreMin": true}, models.StrategyNetworkOnly),
			Entry("ssid and rssiMin", map[string]any{"ssid": true, "rssiMin": true}, models.StrategyFull),
			Entry("bounding box", map[string]any{"boundingBox": true}, models.StrategyFull),
		)
	})

	Context("gating", func() {
		It("should ignore filter values whose flag is off", func() {
			// Arrange
			filters := map[string]any{"ssid": "cafe", "rssiMin": -70.0, "radioTypes": []any{"W"}}

			// Act
			gated := list(filters, map[string]any{"ssid": false, "rssiMin": "false"})
			empty := list(map[string]any{}, map[string]any{})

			// Assert
			Expect(gated.Strategy).To(Equal(models.StrategyNoFilter))
			Expect(gated.SQL).To(Equal(empty.SQL))
			Expect(gated.Params).To(Equal(empty.Params))
			Expect(gated.AppliedFilters).To(BeEmpty())
			Expect(gated.IgnoredFilters).To(BeEmpty())
		})

		It("should record an enabled flag without a value as ignored", func() {
			r := list(map[string]any{}, map[string]any{"ssid": true})

			Expect(r.AppliedFilters).To(BeEmpty())
			Expect(r.IgnoredFilters).To(ConsistOf(models.IgnoredFilter{
				Dimension: models.DimensionIdentity,
				Field:     models.FilterSSID,
				Reason:    models.ReasonEnabledWithoutValue,
			}))
			Expect(r.SQL).NotTo(ContainSubstring("ILIKE"))
		})
	})

	Context("no-op", func() {
		It("should read the explorer view with no predicates", func() {
			r := list(nil, nil)

			Expect(r.Strategy).To(Equal(models.StrategyNoFilter))
			Expect(r.SQL).To(ContainSubstring("FROM app.api_network_explorer_mv ne"))
			Expect(strings.Count(r.SQL, "WHERE")).To(Equal(1), "only the latest observation lookup filters")
			Expect(r.SQL).NotTo(ContainSubstring("WITH"))
			Expect(r.AppliedFilters).To(BeEmpty())
			expectParity(r.SQL, r.Params)
		})
	})

	Context("end to end", func() {
		It("should compile rssiMin and radioTypes over observations", func() {
			// Given
			filters := map[string]any{"rssiMin": -70.0, "radioTypes": []any{"W"}}
			enabled := map[string]any{"rssiMin": true, "radioTypes": true}

			// When
			r := list(filters, enabled)

			// Then
			Expect(r.Strategy).To(Equal(models.StrategyFull))
			Expect(r.SQL).To(HavePrefix("WITH filtered_obs AS ("))
			Expect(r.SQL).To(ContainSubstring("FROM app.observations o"))
			Expect(r.SQL).To(MatchRegexp(`o\.level >= \$\d+`))
			Expect(r.SQL).To(ContainSubstring("obs_rollup"))
			Expect(r.SQL).To(ContainSubstring("DISTINCT ON (f.bssid)"))
			Expect(r.SQL).To(ContainSubstring("stationary_confidence"))
			Expect(r.SQL).NotTo(ContainSubstring("home AS ("))
			Expect(r.Params).To(ContainElements(-70.0, -95.0, "W"))
			Expect(r.AppliedFilters).To(ConsistOf(
				models.AppliedFilter{Dimension: models.DimensionRadio, Field: models.FilterRadioTypes, Value: []string{"W"}},
				models.AppliedFilter{Dimension: models.DimensionRadio, Field: models.FilterRSSIMin, Value: -70.0},
			))
			Expect(r.IgnoredFilters).To(BeEmpty())
			expectParity(r.SQL, r.Params)
		})
	})

	Context("placeholder parity", func() {
		DescribeTable("numbers every parameter once",
			func(filters, enabled map[string]any) {
				b := query.NewBuilder(filters, enabled)
				r, err := b.BuildNetworkList(query.ListOptions{
					Sort:   []query.SortParam{{Field: "threat", Desc: true}},
					Limit:  25,
					Offset: 50,
				})
				Expect(err).NotTo(HaveOccurred())
				expectParity(r.SQL, r.Params)
				expectReportCoversEnabled(r, len(enabled))
				Expect(r.Params[len(r.Params)-2:]).To(Equal([]any{uint64(25), uint64(50)}))
			},
			Entry("network only",
				map[string]any{"ssid": "home_net", "encryptionTypes": "WPA2,WPA3", "threatCategories": []any{"high", "medium"}},
				map[string]any{"ssid": true, "encryptionTypes": true, "threatCategories": true}),
			Entry("full with distance and timeframe",
				map[string]any{
					"distanceFromHomeMax": 2.5,
					"timeframe":           map[string]any{"type": "relative", "relativeWindow": "7d"},
					"authMethods":         []any{"PSK", "EAP", "NONE"},
					"qualityFilter":       "all",
				},
				map[string]any{"distanceFromHomeMax": true, "timeframe": true, "authMethods": true, "qualityFilter": true}),
			Entry("full with network filters",
				map[string]any{
					"radiusFilter":            map[string]any{"lat": 40.0, "lon": -75.0, "radius": 500.0},
					"observationCountMin":     3,
					"stationaryConfidenceMin": 0.5,
					"frequencyBands":          []any{"2.4", "5GHz"},
				},
				map[string]any{"radiusFilter": true, "observationCountMin": true, "stationaryConfidenceMin": true, "frequencyBands": true}),
		)
	})

	Context("home location", func() {
		It("should add the home CTE when distance needs observations", func() {
			r := list(
				map[string]any{"distanceFromHomeMin": 1.0, "rssiMax": -40.0},
				map[string]any{"distanceFromHomeMin": true, "rssiMax": true},
			)

			Expect(r.SQL).To(HavePrefix("WITH home AS ("))
			Expect(r.SQL).To(ContainSubstring("CROSS JOIN home"))
			Expect(r.SQL).To(ContainSubstring("home.location"))
			Expect(r.Params).To(ContainElement("home"))
		})

		It("should use the precomputed distance on the explorer view", func() {
			r := list(map[string]any{"distanceFromHomeMin": 1.0}, map[string]any{"distanceFromHomeMin": true})

			Expect(r.Strategy).To(Equal(models.StrategyNetworkOnly))
			Expect(r.SQL).To(ContainSubstring("ne.distance_from_home_km >= $"))
			Expect(r.SQL).NotTo(ContainSubstring("home AS ("))
		})
	})

	Context("unsupported dimensions", func() {
		It("should ignore networkId with a warning", func() {
			r := list(map[string]any{"networkId": "abc"}, map[string]any{"networkId": true})

			Expect(r.IgnoredFilters).To(ConsistOf(models.IgnoredFilter{
				Dimension: models.DimensionIdentity,
				Field:     models.FilterNetworkID,
				Reason:    models.ReasonUnsupportedBackend,
			}))
			Expect(r.Warnings).To(HaveLen(1))
		})

		It("should ignore a set with no recognized values", func() {
			r := list(map[string]any{"radioTypes": []any{"Z", "Q"}}, map[string]any{"radioTypes": true})

			Expect(r.IgnoredFilters).To(HaveLen(1))
			Expect(r.IgnoredFilters[0].Reason).To(Equal(models.ReasonNoValidValues))
			Expect(r.Warnings).NotTo(BeEmpty())
			expectParity(r.SQL, r.Params)
		})

		It("should keep recognized members and warn about the rest", func() {
			r := list(map[string]any{"radioTypes": []any{"W", "Z"}}, map[string]any{"radioTypes": true})

			Expect(r.AppliedFilters).To(HaveLen(1))
			Expect(r.AppliedFilters[0].Value).To(Equal([]string{"W"}))
			Expect(r.Warnings).To(HaveLen(1))
		})

		It("should warn when temporalScope has no timeframe", func() {
			r := list(map[string]any{"temporalScope": "network_lifetime"}, map[string]any{"temporalScope": true})

			Expect(r.AppliedFilters).To(HaveLen(1))
			Expect(r.Warnings).To(ContainElement(ContainSubstring("without an enabled timeframe")))
		})
	})

	Context("temporal scope", func() {
		It("should compare network lifetime through the explorer view", func() {
			r := list(
				map[string]any{
					"timeframe":     map[string]any{"type": "absolute", "startTimestamp": "2024-01-01T00:00:00Z", "endTimestamp": "2024-02-01T00:00:00Z"},
					"temporalScope": "network_lifetime",
				},
				map[string]any{"timeframe": true, "temporalScope": true},
			)

			Expect(r.SQL).To(ContainSubstring("EXISTS (SELECT 1 FROM app.api_network_explorer_mv nl WHERE nl.bssid = o.bssid"))
			Expect(r.SQL).To(MatchRegexp(`nl\.last_seen >= \$\d+`))
			Expect(r.SQL).To(MatchRegexp(`nl\.first_seen <= \$\d+`))
			expectParity(r.SQL, r.Params)
		})
	})

	Context("sorting", func() {
		It("should fall back to last seen when every sort key is unknown", func() {
			b := query.NewBuilder(nil, nil)
			r, err := b.BuildNetworkList(query.ListOptions{Sort: []query.SortParam{{Field: "nope"}}})
			Expect(err).NotTo(HaveOccurred())

			Expect(r.SQL).To(ContainSubstring("ORDER BY ne.last_seen DESC NULLS LAST, ne.bssid ASC"))
			Expect(r.Warnings).To(ContainElement(ContainSubstring(`"nope"`)))
		})

		It("should skip stationary confidence on the explorer view", func() {
			b := query.NewBuilder(nil, nil)
			r, err := b.BuildNetworkList(query.ListOptions{Sort: []query.SortParam{{Field: "stationaryConfidence", Desc: true}, {Field: "ssid"}}})
			Expect(err).NotTo(HaveOccurred())

			Expect(r.SQL).To(ContainSubstring("ORDER BY ne.ssid ASC NULLS LAST, ne.bssid ASC"))
			Expect(r.Warnings).To(HaveLen(1))
		})

		It("should sort by stationary confidence on the full path", func() {
			b := query.NewBuilder(map[string]any{"rssiMin": -80.0}, map[string]any{"rssiMin": true})
			r, err := b.BuildNetworkList(query.ListOptions{Sort: []query.SortParam{{Field: "stationary_confidence", Desc: true}}})
			Expect(err).NotTo(HaveOccurred())

			Expect(r.SQL).To(ContainSubstring("ORDER BY s.stationary_confidence DESC NULLS LAST, r.bssid ASC"))
		})
	})

	Context("identity", func() {
		DescribeTable("compiles bssid by length",
			func(bssid, fragment string, param any) {
				// Act
				r := list(map[string]any{"bssid": bssid}, map[string]any{"bssid": true})

				// Assert
				Expect(r.Strategy).To(Equal(models.StrategyNetworkOnly))
				Expect(r.SQL).To(MatchRegexp(fragment))
				Expect(r.Params).To(ContainElement(param))
				expectParity(r.SQL, r.Params)
			},
			Entry("full address", "aa:bb:cc:dd:ee:ff", `UPPER\(ne\.bssid\) = \$\d+`, "AA:BB:CC:DD:EE:FF"),
			Entry("prefix", "aa:bb", `UPPER\(ne\.bssid\) LIKE \$\d+`, "AA:BB%"),
		)

		It("should compare a vendor prefix against the bssid OUI", func() {
			r := list(map[string]any{"manufacturer": "00:11:22"}, map[string]any{"manufacturer": true})

			Expect(r.SQL).To(MatchRegexp(`UPPER\(REPLACE\(REPLACE\(LEFT\(ne\.bssid, 8\), ':', ''\), '-', ''\)\) = \$\d+`))
			Expect(r.SQL).NotTo(ContainSubstring("ILIKE"))
			Expect(r.Params).To(ContainElement("001122"))
			expectParity(r.SQL, r.Params)
		})

		It("should match a manufacturer name through the vendor table on the full path", func() {
			// Given a name and an observation-level filter
			filters := map[string]any{"manufacturer": "Apple", "rssiMin": -80.0}
			enabled := map[string]any{"manufacturer": true, "rssiMin": true}

			// When
			r := list(filters, enabled)

			// Then
			Expect(r.Strategy).To(Equal(models.StrategyFull))
			Expect(r.SQL).To(ContainSubstring("LEFT JOIN app.radio_manufacturers rm ON rm.prefix = UPPER(REPLACE(REPLACE(LEFT(o.bssid, 8)"))
			Expect(r.SQL).To(MatchRegexp(`rm\.manufacturer ILIKE \$\d+`))
			Expect(r.Params).To(ContainElement("%Apple%"))
			expectParity(r.SQL, r.Params)
		})

		It("should match a manufacturer name on the explorer view column", func() {
			r := list(map[string]any{"manufacturer": "Apple"}, map[string]any{"manufacturer": true})

			Expect(r.SQL).To(MatchRegexp(`ne\.manufacturer ILIKE \$\d+`))
			Expect(r.SQL).NotTo(ContainSubstring("app.radio_manufacturers"))
		})
	})

	Context("security on the explorer view", func() {
		It("should keep the stored class of the security column", func() {
			// Act
			r := list(map[string]any{"encryptionTypes": []any{"OPEN"}}, map[string]any{"encryptionTypes": true})

			// Assert
			Expect(r.Strategy).To(Equal(models.StrategyNetworkOnly))
			Expect(r.SQL).To(ContainSubstring("CASE WHEN TRIM(UPPER(COALESCE(ne.security, ''))) = 'OPEN' THEN 'OPEN'"))
			Expect(r.Params).To(ContainElement("OPEN"))
			expectParity(r.SQL, r.Params)
		})

		It("should expand WPA2 to its enterprise class", func() {
			r := list(map[string]any{"encryptionTypes": []any{"WPA2"}}, map[string]any{"encryptionTypes": true})

			Expect(r.Strategy).To(Equal(models.StrategyNetworkOnly))
			Expect(r.Params).To(ContainElements("WPA2", "WPA2-E"))
			Expect(r.AppliedFilters).To(ConsistOf(models.AppliedFilter{
				Dimension: models.DimensionSecurity,
				Field:     models.FilterEncryptionTypes,
				Value:     []string{"WPA2"},
			}))
			expectParity(r.SQL, r.Params)
		})
	})

	Context("spatial", func() {
		It("should split a bounding box across the antimeridian", func() {
			// Given a box whose west edge is east of its east edge
			box := map[string]any{"north": 10.0, "south": -10.0, "east": -170.0, "west": 170.0}

			// When
			r := list(map[string]any{"boundingBox": box}, map[string]any{"boundingBox": true})

			// Then
			Expect(r.SQL).To(MatchRegexp(`o\.lat BETWEEN \$\d+ AND \$\d+`))
			Expect(r.SQL).To(MatchRegexp(`\(o\.lon >= \$\d+ OR o\.lon <= \$\d+\)`))
			Expect(r.SQL).NotTo(MatchRegexp(`o\.lon BETWEEN`))
			Expect(r.Params).To(ContainElements(-10.0, 10.0, 170.0, -170.0))
			expectParity(r.SQL, r.Params)
		})

		It("should compare a plain bounding box with one longitude range", func() {
			box := map[string]any{"north": 1.0, "south": 0.0, "east": 1.0, "west": 0.0}
			r := list(map[string]any{"boundingBox": box}, map[string]any{"boundingBox": true})

			Expect(r.SQL).To(MatchRegexp(`o\.lon BETWEEN \$\d+ AND \$\d+`))
		})

		It("should compile a radius to ST_DWithin on geography", func() {
			r := list(
				map[string]any{"radiusFilter": map[string]any{"latitude": 42.33, "longitude": -83.04, "radiusMeters": 250.0}},
				map[string]any{"radiusFilter": true},
			)

			Expect(r.Strategy).To(Equal(models.StrategyFull))
			Expect(r.SQL).To(MatchRegexp(`ST_DWithin\(o\.geom::geography, ST_SetSRID\(ST_MakePoint\(\$\d+, \$\d+\), 4326\)::geography, \$\d+\)`))
			Expect(r.Params).To(ContainElements(-83.04, 42.33, 250.0))
			expectParity(r.SQL, r.Params)
		})
	})

	Context("quality", func() {
		DescribeTable("compiles each quality mode",
			func(mode string, fragments []string, params []any) {
				// Act
				r := list(map[string]any{"qualityFilter": mode}, map[string]any{"qualityFilter": true})

				// Assert
				Expect(r.Strategy).To(Equal(models.StrategyFull))
				for _, f := range fragments {
					Expect(r.SQL).To(MatchRegexp(f))
				}
				if len(params) > 0 {
					Expect(r.Params).To(ContainElements(params...))
				}
				Expect(r.Warnings).To(BeEmpty())
				expectParity(r.SQL, r.Params)
			},
			Entry("temporal", "temporal",
				[]string{`o\.time >= \$\d+ AND o\.time <= NOW\(\) \+ CAST\(\$\d+ AS INTERVAL\)`},
				[]any{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "1 day"}),
			Entry("extreme", "extreme",
				[]string{`o\.level BETWEEN \$\d+ AND \$\d+ AND \(o\.accuracy IS NULL OR o\.accuracy <= \$\d+\)`},
				[]any{-120.0, 0.0, 1000.0}),
			Entry("duplicate", "duplicate",
				[]string{`NOT EXISTS \(SELECT 1 FROM app\.observations d WHERE d\.bssid = o\.bssid .* AND d\.ctid < o\.ctid\)`},
				[]any{}),
			Entry("all", "all",
				[]string{`NOW\(\) \+ CAST`, `o\.level BETWEEN`, `d\.ctid < o\.ctid`},
				[]any{"1 day", -120.0, 1000.0}),
		)
	})

	Context("threat window scope", func() {
		It("should fall back to observation time with a warning", func() {
			// Arrange
			filters := map[string]any{
				"timeframe":     map[string]any{"type": "relative", "relativeWindow": "7d"},
				"temporalScope": "threat_window",
			}
			enabled := map[string]any{"timeframe": true, "temporalScope": true}

			// Act
			r := list(filters, enabled)

			// Assert
			Expect(r.SQL).To(MatchRegexp(`o\.time >= NOW\(\) - CAST\(\$\d+ AS INTERVAL\)`))
			Expect(r.SQL).NotTo(ContainSubstring("nl.last_seen"))
			Expect(r.Params).To(ContainElement("7 days"))
			Expect(r.Warnings).To(ConsistOf(ContainSubstring("threat_window has no dedicated timestamp")))
			expectReportCoversEnabled(r, len(enabled))
			expectParity(r.SQL, r.Params)
		})
	})

	Context("stationary params", func() {
		It("should keep the default scoring when the override cannot divide", func() {
			// Arrange
			p := geo.DefaultStationaryParams()
			p.MaxDistanceMeters = 0
			b := query.NewBuilder(map[string]any{"rssiMin": -80.0}, map[string]any{"rssiMin": true}, query.WithStationaryParams(p))

			// Act
			r, err := b.BuildNetworkList(query.ListOptions{})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(r.SQL).To(ContainSubstring(" / 500::float8"))
			Expect(r.SQL).NotTo(ContainSubstring(" / 0::float8"))
		})
	})

	Context("lifecycle", func() {
		It("should refuse a second build", func() {
			b := query.NewBuilder(nil, nil)
			_, err := b.BuildNetworkList(query.ListOptions{})
			Expect(err).NotTo(HaveOccurred())

			_, err = b.BuildNetworkCount()
			Expect(err).To(MatchError(query.ErrBuilderConsumed))
			Expect(srvErrors.IsBuilderConsumedError(err)).To(BeTrue())
		})

		It("should return validation errors instead of SQL", func() {
			b := query.NewBuilder(map[string]any{"rssiMin": -96.0}, map[string]any{"rssiMin": true})
			Expect(b.ValidationErrors()).To(HaveLen(1))

			_, err := b.BuildNetworkList(query.ListOptions{})
			Expect(srvErrors.IsValidationFailedError(err)).To(BeTrue())
			Expect(srvErrors.ValidationErrors(err)).To(HaveLen(1))
		})

		It("should not validate disabled filters", func() {
			b := query.NewBuilder(map[string]any{"rssiMin": -96.0}, map[string]any{"rssiMin": false})
			Expect(b.ValidationErrors()).To(BeEmpty())
		})
	})
})

var _ = Describe("BuildNetworkCount", func() {
	It("should count the same relation as the list", func() {
		filters := map[string]any{"ssid": "cafe", "gpsAccuracyMax": 25.0}
		enabled := map[string]any{"ssid": true, "gpsAccuracyMax": true}

		c, err := query.NewBuilder(filters, enabled).BuildNetworkCount()
		Expect(err).NotTo(HaveOccurred())

		Expect(c.SQL).To(HavePrefix("SELECT COUNT(*) AS total FROM (SELECT ne.bssid"))
		Expect(c.SQL).NotTo(ContainSubstring("LIMIT"))
		Expect(c.SQL).NotTo(ContainSubstring("LATERAL"))
		Expect(c.Strategy).To(Equal(models.StrategyNetworkOnly))
		Expect(c.Params).To(ContainElements("%cafe%", 25.0))
		expectParity(c.SQL, c.Params)
	})
})

var _ = Describe("BuildGeospatial", func() {
	It("should select observation points for the requested networks", func() {
		b := query.NewBuilder(map[string]any{"ssid": "cafe"}, map[string]any{"ssid": true})
		r, err := b.BuildGeospatial(query.GeospatialOptions{BSSIDs: []string{"aa:bb:cc:dd:ee:ff", "AA:BB:CC:DD:EE:FF", " "}})
		Expect(err).NotTo(HaveOccurred())

		Expect(r.SQL).To(ContainSubstring("FROM app.observations o"))
		Expect(r.SQL).To(ContainSubstring("o.bssid IN (SELECT ne.bssid FROM app.api_network_explorer_mv ne"))
		Expect(r.SQL).To(ContainSubstring("UPPER(o.bssid) IN ($"))
		Expect(r.SQL).To(ContainSubstring("ORDER BY o.time DESC, o.bssid ASC"))
		Expect(r.Params).To(ContainElement("AA:BB:CC:DD:EE:FF"))
		Expect(r.Params[len(r.Params)-1]).To(Equal(uint64(query.DefaultGeospatialLimit)))
		expectParity(r.SQL, r.Params)
	})

	It("should add a network filter CTE when network predicates are present on the full path", func() {
		b := query.NewBuilder(
			map[string]any{"rssiMin": -80.0, "threatScoreMin": 50.0},
			map[string]any{"rssiMin": true, "threatScoreMin": true},
		)
		r, err := b.BuildGeospatial(query.GeospatialOptions{Limit: 100})
		Expect(err).NotTo(HaveOccurred())

		Expect(r.SQL).To(ContainSubstring("network_filter AS (SELECT r.bssid FROM obs_rollup r"))
		Expect(r.SQL).To(ContainSubstring("FROM filtered_obs o"))
		Expect(r.SQL).To(ContainSubstring("o.bssid IN (SELECT bssid FROM network_filter)"))
		expectParity(r.SQL, r.Params)
	})

	It("should skip the network filter CTE without network predicates", func() {
		b := query.NewBuilder(map[string]any{"rssiMin": -80.0}, map[string]any{"rssiMin": true})
		r, err := b.BuildGeospatial(query.GeospatialOptions{})
		Expect(err).NotTo(HaveOccurred())

		Expect(r.SQL).NotTo(ContainSubstring("network_filter"))
		Expect(r.SQL).NotTo(ContainSubstring("obs_rollup"))
	})
})

var _ = Describe("BuildAnalytics", func() {
	DescribeTable("compiles every aggregate",
		func(kind query.AnalyticsKind, fragment string) {
			b := query.NewBuilder(map[string]any{"encryptionTypes": []any{"WPA2"}}, map[string]any{"encryptionTypes": true})
			r, err := b.BuildAnalytics(kind, query.AnalyticsOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(r.SQL).To(ContainSubstring(fragment))
			expectParity(r.SQL, r.Params)
			expectReportCoversEnabled(r, 1)
		},
		Entry("radio types", query.AnalyticsRadioTypes, "GROUP BY n.type"),
		Entry("signal strength", query.AnalyticsSignalStrength, "'excellent'"),
		Entry("security", query.AnalyticsSecurity, "GROUP BY n.security"),
		Entry("temporal", query.AnalyticsTemporal, "DATE_TRUNC('day', o.time)"),
		Entry("top networks", query.AnalyticsTopNetworks, "ORDER BY n.observations DESC NULLS LAST"),
	)

	It("should reject an unknown aggregate", func() {
		_, err := query.NewBuilder(nil, nil).BuildAnalytics("heatmap", query.AnalyticsOptions{})
		Expect(srvErrors.IsUnsupportedShapeError(err)).To(BeTrue())
	})
})
