package query

import (
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/util"
)

var macAddress = regexp.MustCompile(`^([0-9A-F]{2}[:-]){5}[0-9A-F]{2}$`)

var relativeIntervals = map[string]string{
	"24h": "24 hours",
	"7d":  "7 days",
	"30d": "30 days",
	"90d": "90 days",
}

const (
	minPlausibleSignal = -120.0
	maxPlausibleSignal = 0.0
	futureSkew         = "1 day"
)

// earliestPlausibleObservation rejects timestamps left at the epoch by devices without a clock.
var earliestPlausibleObservation = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// compiledPredicate is the row-level result of compilation.
type compiledPredicate struct {
	where        []sq.Sqlizer
	joins        []join
	requiresHome bool
}

func (p *compiledPredicate) add(s sq.Sqlizer) {
	p.where = append(p.where, s)
}

func (p *compiledPredicate) join(j join) {
	for _, existing := range p.joins {
		if existing.table == j.table {
			return
		}
	}
	p.joins = append(p.joins, j)
}

func (p *compiledPredicate) apply(b sq.SelectBuilder) sq.SelectBuilder {
	for _, j := range p.joins {
		b = b.JoinClause(j.clause())
	}
	return where(b, p.where)
}

// compileRowFilters compiles every row-level dimension against cols in a fixed order.
func (c *compileContext) compileRowFilters(cols rowColumns) *compiledPredicate {
	p := &compiledPredicate{}
	c.identity(cols, p)
	c.radio(cols, p)
	c.security(cols, p)
	c.temporal(cols, p)
	c.quality(cols, p)
	c.spatial(cols, p)
	return p
}

func (c *compileContext) identity(cols rowColumns, p *compiledPredicate) {
	f := c.filters

	if c.active(models.FilterSSID) {
		p.add(sq.Expr(cols.ssid+" ILIKE ?", "%"+util.EscapeLike(*f.SSID)+"%"))
		c.report.apply(models.FilterSSID, *f.SSID)
	}

	if c.active(models.FilterBSSID) {
		v := strings.ToUpper(*f.BSSID)
		if macAddress.MatchString(v) {
			p.add(sq.Expr("UPPER("+cols.bssid+") = ?", v))
		} else {
			p.add(sq.Expr("UPPER("+cols.bssid+") LIKE ?", util.EscapeLike(v)+"%"))
		}
		c.report.apply(models.FilterBSSID, v)
	}

	if c.active(models.FilterManufacturer) {
		v := *f.Manufacturer
		oui, isOUI := sqlexpr.NormalizeOUI(v)
		switch {
		case isOUI:
			p.add(sqlexpr.Compare(sqlexpr.OUIExpr(cols.bssid), "=", oui))
		case cols.manufacturer != "":
			p.add(sq.Expr(cols.manufacturer+" ILIKE ?", "%"+util.EscapeLike(v)+"%"))
		default:
			p.join(join{kind: "LEFT JOIN", table: tableManufacturers + " rm", on: "rm.prefix = " + sqlexpr.OUI(cols.bssid)})
			p.add(sq.Expr("rm.manufacturer ILIKE ?", "%"+util.EscapeLike(v)+"%"))
		}
		c.report.apply(models.FilterManufacturer, v)
	}

	if c.active(models.FilterNetworkID) {
		c.report.ignore(models.FilterNetworkID, models.ReasonUnsupportedBackend)
		c.report.warn("networkId is not supported by this backend and was ignored")
	}
}

func (c *compileContext) radio(cols rowColumns, p *compiledPredicate) {
	f := c.filters

	if c.active(models.FilterRadioTypes) {
		if valid := c.members(models.FilterRadioTypes, f.RadioTypes); valid != nil {
			p.add(sqlexpr.In(sqlexpr.RadioTypeExpr(cols.radio), valid))
			c.report.apply(models.FilterRadioTypes, valid)
		}
	}

	if c.active(models.FilterFrequencyBands) {
		if valid := c.members(models.FilterFrequencyBands, f.FrequencyBands); valid != nil {
			bands := sq.Or{}
			for _, b := range valid {
				bands = append(bands, sqlexpr.BandExpr(cols.frequency, sqlexpr.Bands[b]))
			}
			p.add(bands)
			c.report.apply(models.FilterFrequencyBands, valid)
		}
	}

	if c.active(models.FilterChannelMin) {
		p.add(sqlexpr.Compare(sqlexpr.ChannelExpr(cols.frequency), ">=", *f.ChannelMin))
		c.report.apply(models.FilterChannelMin, *f.ChannelMin)
	}
	if c.active(models.FilterChannelMax) {
		p.add(sqlexpr.Compare(sqlexpr.ChannelExpr(cols.frequency), "<=", *f.ChannelMax))
		c.report.apply(models.FilterChannelMax, *f.ChannelMax)
	}

	minOn := c.active(models.FilterRSSIMin)
	maxOn := c.active(models.FilterRSSIMax)
	if minOn {
		p.add(sq.Expr(cols.signal+" >= ?", *f.RSSIMin))
		c.report.apply(models.FilterRSSIMin, *f.RSSIMin)
	}
	if maxOn {
		p.add(sq.Expr(cols.signal+" <= ?", *f.RSSIMax))
		c.report.apply(models.FilterRSSIMax, *f.RSSIMax)
	}
	if minOn || maxOn {
		p.add(sq.Expr(cols.signal+" >= ?", filters.NoiseFloorDBM))
	}
}

func (c *compileContext) security(cols rowColumns, p *compiledPredicate) {
	f := c.filters
	class := func() sq.Sqlizer { return sqlexpr.SecurityExpr(cols.capabilities) }

	if c.active(models.FilterEncryptionTypes) {
		if valid := c.members(models.FilterEncryptionTypes, f.EncryptionTypes); valid != nil {
			p.add(sqlexpr.In(class(), filters.Expand(filters.EncryptionClasses, valid)))
			c.report.apply(models.FilterEncryptionTypes, valid)
		}
	}

	if c.active(models.FilterAuthMethods) {
		if valid := c.members(models.FilterAuthMethods, f.AuthMethods); valid != nil {
			caps := "UPPER(COALESCE(" + cols.capabilities + ", ''))"
			methods := sq.Or{}
			for _, m := range valid {
				if m == filters.AuthNone {
					methods = append(methods, sqlexpr.In(class(), []string{sqlexpr.SecurityOpen}))
					continue
				}
				for _, token := range filters.AuthTokens[m] {
					methods = append(methods, sq.Expr(caps+" LIKE ?", "%"+token+"%"))
				}
			}
			p.add(methods)
			c.report.apply(models.FilterAuthMethods, valid)
		}
	}

	if c.active(models.FilterInsecureFlags) {
		if valid := c.members(models.FilterInsecureFlags, f.InsecureFlags); valid != nil {
			p.add(sqlexpr.In(class(), filters.Expand(filters.InsecureClasses, valid)))
			c.report.apply(models.FilterInsecureFlags, valid)
		}
	}

	if c.active(models.FilterSecurityFlags) {
		if valid := c.members(models.FilterSecurityFlags, f.SecurityFlags); valid != nil {
			p.add(sqlexpr.In(class(), filters.Expand(filters.SecurityFlagClasses, valid)))
			c.report.apply(models.FilterSecurityFlags, valid)
		}
	}
}

func (c *compileContext) temporal(cols rowColumns, p *compiledPredicate) {
	timeframeOn := c.active(models.FilterTimeframe)

	scope := models.ScopeObservationTime
	if c.active(models.FilterTemporalScope) {
		requested := *c.filters.TemporalScope
		c.report.apply(models.FilterTemporalScope, requested)
		scope = requested
		if requested == models.ScopeThreatWindow {
			c.report.warn("temporalScope threat_window has no dedicated timestamp; observation_time was used")
			scope = models.ScopeObservationTime
		}
		if !timeframeOn {
			c.report.warn("temporalScope has no effect without an enabled timeframe")
		}
	}

	if !timeframeOn {
		return
	}

	tf := c.filters.Timeframe
	c.report.apply(models.FilterTimeframe, *tf)

	from, to := cols.time, cols.time
	if scope == models.ScopeNetworkLifetime {
		from, to = "nl.last_seen", "nl.first_seen"
	}

	var bounds []sq.Sqlizer
	switch tf.Type {
	case models.TimeframeRelative:
		if interval, ok := relativeIntervals[tf.RelativeWindow]; ok {
			bounds = append(bounds, sq.Expr(from+" >= NOW() - CAST(? AS INTERVAL)", interval))
		}
	case models.TimeframeAbsolute:
		if tf.Start != nil {
			bounds = append(bounds, sq.Expr(from+" >= ?", tf.Start.UTC()))
		}
		if tf.End != nil {
			bounds = append(bounds, sq.Expr(to+" <= ?", tf.End.UTC()))
		}
	}
	if len(bounds) == 0 {
		return
	}

	if scope != models.ScopeNetworkLifetime {
		for _, b := range bounds {
			p.add(b)
		}
		return
	}

	lifetime := sq.Select("1").From(tableNetworks + " nl").Where("nl.bssid = " + cols.bssid)
	p.add(sq.Expr("EXISTS (?)", where(lifetime, bounds)))
}

func (c *compileContext) quality(cols rowColumns, p *compiledPredicate) {
	f := c.filters

	if c.active(models.FilterGPSAccuracyMax) {
		p.add(sq.Expr(cols.accuracy+" <= ?", *f.GPSAccuracyMax))
		c.report.apply(models.FilterGPSAccuracyMax, *f.GPSAccuracyMax)
	}

	if c.active(models.FilterExcludeInvalidCoords) {
		if *f.ExcludeInvalidCoords {
			p.add(validCoordinates(cols))
		}
		c.report.apply(models.FilterExcludeInvalidCoords, *f.ExcludeInvalidCoords)
	}

	// Quality keys are not network-only, so cols are always observation rows here.
	if c.active(models.FilterQualityFilter) {
		q := *f.QualityFilter
		if q == models.QualityTemporal || q == models.QualityAll {
			p.add(sq.Expr(cols.time+" >= ? AND "+cols.time+" <= NOW() + CAST(? AS INTERVAL)", earliestPlausibleObservation, futureSkew))
		}
		if q == models.QualityExtreme || q == models.QualityAll {
			p.add(sq.Expr(cols.signal+" BETWEEN ? AND ? AND ("+cols.accuracy+" IS NULL OR "+cols.accuracy+" <= ?)",
				minPlausibleSignal, maxPlausibleSignal, filters.MaxGPSAccuracyMeters))
		}
		if q == models.QualityDuplicate || q == models.QualityAll {
			a := cols.alias
			p.add(sq.Expr("NOT EXISTS (SELECT 1 FROM " + tableObservations + " d WHERE d.bssid = " + a + ".bssid AND d.time = " + a +
				".time AND d.lat = " + a + ".lat AND d.lon = " + a + ".lon AND d.ctid < " + a + ".ctid)"))
		}
		c.report.apply(models.FilterQualityFilter, q)
	}
}

func validCoordinates(cols rowColumns) sq.Sqlizer {
	lat, lon := cols.lat, cols.lon
	return sq.Expr(lat+" IS NOT NULL AND "+lon+" IS NOT NULL AND "+
		lat+" BETWEEN ? AND ? AND "+lon+" BETWEEN ? AND ? AND NOT ("+lat+" = ? AND "+lon+" = ?)",
		-90.0, 90.0, -180.0, 180.0, 0.0, 0.0)
}

func (c *compileContext) spatial(cols rowColumns, p *compiledPredicate) {
	f := c.filters

	distance := func() string {
		if cols.distanceKm != "" {
			return cols.distanceKm
		}
		p.requiresHome = true
		return "(ST_Distance(" + cols.point() + "::geography, " + cteHome + ".location) / 1000.0)"
	}

	if c.active(models.FilterDistanceFromHomeMin) {
		p.add(sq.Expr(distance()+" >= ?", *f.DistanceFromHomeMin))
		c.report.apply(models.FilterDistanceFromHomeMin, *f.DistanceFromHomeMin)
	}
	if c.active(models.FilterDistanceFromHomeMax) {
		p.add(sq.Expr(distance()+" <= ?", *f.DistanceFromHomeMax))
		c.report.apply(models.FilterDistanceFromHomeMax, *f.DistanceFromHomeMax)
	}

	if c.active(models.FilterBoundingBox) {
		b := *f.BoundingBox
		p.add(sq.Expr(cols.lat+" BETWEEN ? AND ?", b.South, b.North))
		if b.West <= b.East {
			p.add(sq.Expr(cols.lon+" BETWEEN ? AND ?", b.West, b.East))
		} else {
			p.add(sq.Expr("("+cols.lon+" >= ? OR "+cols.lon+" <= ?)", b.West, b.East))
		}
		c.report.apply(models.FilterBoundingBox, b)
	}

	if c.active(models.FilterRadiusFilter) {
		r := *f.RadiusFilter
		p.add(sq.Expr("ST_DWithin("+cols.point()+"::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			r.Longitude, r.Latitude, r.RadiusMeters))
		c.report.apply(models.FilterRadiusFilter, r)
	}
}
