package filters

import (
	"fmt"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

const (
	NoiseFloorDBM        = -95.0
	MaxRSSIDBM           = 0.0
	MaxGPSAccuracyMeters = 1000.0
	MinThreatScore       = 0.0
	MaxThreatScore       = 100.0
)

type checker struct {
	f    models.Filters
	e    models.EnabledFlags
	errs []models.ValidationError
}

// Validate range-checks enabled filters that carry a value. An empty result means
// the filters can be compiled.
func Validate(f models.Filters, e models.EnabledFlags) []models.ValidationError {
	c := &checker{f: f, e: e}

	c.rssi()
	if c.on(models.FilterGPSAccuracyMax) {
		switch {
		case *f.GPSAccuracyMax > MaxGPSAccuracyMeters:
			c.fail(models.FilterGPSAccuracyMax, "gpsAccuracyMax cannot exceed %g meters", MaxGPSAccuracyMeters)
		case *f.GPSAccuracyMax < 0:
			c.fail(models.FilterGPSAccuracyMax, "gpsAccuracyMax cannot be negative")
		}
	}
	c.between(models.FilterThreatScoreMin, f.ThreatScoreMin, MinThreatScore, MaxThreatScore, "%s must be between 0 and 100")
	c.between(models.FilterThreatScoreMax, f.ThreatScoreMax, MinThreatScore, MaxThreatScore, "%s must be between 0 and 100")
	c.between(models.FilterStationaryConfidenceMin, f.StationaryConfidenceMin, 0, 1, "%s must be between 0.0 and 1.0")
	c.between(models.FilterStationaryConfidenceMax, f.StationaryConfidenceMax, 0, 1, "%s must be between 0.0 and 1.0")
	c.nonNegative(models.FilterDistanceFromHomeMin, f.DistanceFromHomeMin)
	c.nonNegative(models.FilterDistanceFromHomeMax, f.DistanceFromHomeMax)

	c.ordered(models.FilterChannelMin, models.FilterChannelMax, asFloat(f.ChannelMin), asFloat(f.ChannelMax))
	c.ordered(models.FilterObservationCountMin, models.FilterObservationCountMax, asFloat(f.ObservationCountMin), asFloat(f.ObservationCountMax))
	c.ordered(models.FilterDistanceFromHomeMin, models.FilterDistanceFromHomeMax, f.DistanceFromHomeMin, f.DistanceFromHomeMax)
	c.ordered(models.FilterThreatScoreMin, models.FilterThreatScoreMax, f.ThreatScoreMin, f.ThreatScoreMax)
	c.ordered(models.FilterStationaryConfidenceMin, models.FilterStationaryConfidenceMax, f.StationaryConfidenceMin, f.StationaryConfidenceMax)

	if c.on(models.FilterTimeframe) {
		tf := f.Timeframe
		if tf.Type == models.TimeframeAbsolute && tf.Start != nil && tf.End != nil && tf.Start.After(*tf.End) {
			c.fail(models.FilterTimeframe, "timeframe startTimestamp cannot be after endTimestamp")
		}
	}

	return c.errs
}

func (c *checker) on(key models.FilterKey) bool {
	return c.e.Enabled(key) && c.f.Has(key)
}

func (c *checker) fail(key models.FilterKey, format string, args ...any) {
	c.errs = append(c.errs, models.ValidationError{Field: key, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) rssi() {
	minOn, maxOn := c.on(models.FilterRSSIMin), c.on(models.FilterRSSIMax)
	if minOn && *c.f.RSSIMin < NoiseFloorDBM {
		c.fail(models.FilterRSSIMin, "rssiMin cannot be below the noise floor of %g dBm", NoiseFloorDBM)
	}
	if maxOn && *c.f.RSSIMax > MaxRSSIDBM {
		c.fail(models.FilterRSSIMax, "rssiMax cannot be greater than %g dBm", MaxRSSIDBM)
	}
	if minOn && maxOn && *c.f.RSSIMin > *c.f.RSSIMax {
		c.fail(models.FilterRSSIMin, "rssiMin cannot be greater than rssiMax")
	}
}

func (c *checker) between(key models.FilterKey, v *float64, lo, hi float64, format string) {
	if c.on(key) && (*v < lo || *v > hi) {
		c.fail(key, format, key)
	}
}

func (c *checker) nonNegative(key models.FilterKey, v *float64) {
	if c.on(key) && *v < 0 {
		c.fail(key, "%s cannot be negative", key)
	}
}

func (c *checker) ordered(minKey, maxKey models.FilterKey, lo, hi *float64) {
	if c.on(minKey) && c.on(maxKey) && *lo > *hi {
		c.fail(minKey, "%s cannot be greater than %s", minKey, maxKey)
	}
}

func asFloat(n *int) *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
