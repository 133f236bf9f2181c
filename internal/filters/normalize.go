package filters

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/util"
)

var validate = validator.New()

// Normalize turns raw request input into typed filters and enable flags.
// It never fails: unknown keys are dropped and malformed values become absent.
func Normalize(rawFilters, rawEnabled map[string]any) (models.Filters, models.EnabledFlags) {
	enabled := models.EnabledFlags{}
	for _, key := range models.FilterKeys {
		if v, ok := rawEnabled[string(key)]; ok && coerceFlag(v) {
			enabled[key] = true
		}
	}

	var f models.Filters
	for _, spec := range schema {
		raw, ok := rawFilters[string(spec.Key)]
		if !ok || raw == nil {
			continue
		}
		assign(&f, spec, raw)
	}

	return f, enabled
}

func coerceFlag(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.TrimSpace(t)
		return s == "true" || s == "1"
	case json.Number:
		return t.String() == "1"
	default:
		n, ok := toFloat(v)
		return ok && n == 1
	}
}

func assign(f *models.Filters, spec KeySpec, raw any) {
	switch spec.Kind {
	case KindString:
		if s, ok := toString(raw); ok {
			setString(f, spec.Key, s)
		}
	case KindStringSet:
		if set := toStringSet(spec.Key, raw); len(set) > 0 {
			setStringSet(f, spec.Key, set)
		}
	case KindInteger:
		if n, ok := toInt(raw); ok {
			setInt(f, spec.Key, n)
		}
	case KindNumber:
		if n, ok := toFloat(raw); ok {
			setFloat(f, spec.Key, n)
		}
	case KindBoolean:
		if b, ok := toBool(raw); ok {
			f.ExcludeInvalidCoords = &b
		}
	case KindTimeframe:
		f.Timeframe = toTimeframe(raw)
	case KindTemporalScope:
		if s, ok := toString(raw); ok {
			scope := models.TemporalScope(strings.ToLower(s))
			switch scope {
			case models.ScopeObservationTime, models.ScopeNetworkLifetime, models.ScopeThreatWindow:
				f.TemporalScope = &scope
			}
		}
	case KindQuality:
		if s, ok := toString(raw); ok {
			q := models.QualityFilter(strings.ToLower(s))
			switch q {
			case models.QualityTemporal, models.QualityExtreme, models.QualityDuplicate, models.QualityAll:
				f.QualityFilter = &q
			}
		}
	case KindBoundingBox:
		f.BoundingBox = toBoundingBox(raw)
	case KindRadius:
		f.RadiusFilter = toRadius(raw)
	}
}

func setString(f *models.Filters, key models.FilterKey, s string) {
	switch key {
	case models.FilterSSID:
		f.SSID = &s
	case models.FilterBSSID:
		f.BSSID = &s
	case models.FilterManufacturer:
		f.Manufacturer = &s
	case models.FilterNetworkID:
		f.NetworkID = &s
	}
}

func setStringSet(f *models.Filters, key models.FilterKey, set []string) {
	switch key {
	case models.FilterRadioTypes:
		f.RadioTypes = set
	case models.FilterFrequencyBands:
		f.FrequencyBands = set
	case models.FilterEncryptionTypes:
		f.EncryptionTypes = set
	case models.FilterAuthMethods:
		f.AuthMethods = set
	case models.FilterInsecureFlags:
		f.InsecureFlags = set
	case models.FilterSecurityFlags:
		f.SecurityFlags = set
	case models.FilterThreatCategories:
		f.ThreatCategories = set
	}
}

func setInt(f *models.Filters, key models.FilterKey, n int) {
	switch key {
	case models.FilterChannelMin:
		f.ChannelMin = &n
	case models.FilterChannelMax:
		f.ChannelMax = &n
	case models.FilterObservationCountMin:
		f.ObservationCountMin = &n
	case models.FilterObservationCountMax:
		f.ObservationCountMax = &n
	}
}

func setFloat(f *models.Filters, key models.FilterKey, n float64) {
	switch key {
	case models.FilterRSSIMin:
		f.RSSIMin = &n
	case models.FilterRSSIMax:
		f.RSSIMax = &n
	case models.FilterGPSAccuracyMax:
		f.GPSAccuracyMax = &n
	case models.FilterDistanceFromHomeMin:
		f.DistanceFromHomeMin = &n
	case models.FilterDistanceFromHomeMax:
		f.DistanceFromHomeMax = &n
	case models.FilterThreatScoreMin:
		f.ThreatScoreMin = &n
	case models.FilterThreatScoreMax:
		f.ThreatScoreMax = &n
	case models.FilterStationaryConfidenceMin:
		f.StationaryConfidenceMin = &n
	case models.FilterStationaryConfidenceMax:
		f.StationaryConfidenceMax = &n
	}
}

func toString(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func toBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.TrimSpace(t) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return false, false
	}
	if n, ok := toFloat(v); ok && (n == 0 || n == 1) {
		return n == 1, true
	}
	return false, false
}

func toStringSet(key models.FilterKey, v any) []string {
	var items []string
	switch t := v.(type) {
	case []string:
		items = t
	case []any:
		for _, e := range t {
			if s, ok := toString(e); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(t, ",")
	default:
		return nil
	}

	var set []string
	for _, item := range items {
		s := strings.TrimSpace(item)
		if s == "" {
			continue
		}
		s = canonicalize(key, s)
		if !slices.Contains(set, s) {
			set = append(set, s)
		}
	}
	return set
}

func field(m map[string]any, names ...string) (float64, bool) {
	for _, n := range names {
		if v, ok := m[n]; ok {
			return toFloat(v)
		}
	}
	return 0, false
}

func toBoundingBox(v any) *models.BoundingBox {
	var bbox models.BoundingBox
	switch t := v.(type) {
	case models.BoundingBox:
		bbox = t
	case *models.BoundingBox:
		if t == nil {
			return nil
		}
		bbox = *t
	case map[string]any:
		var ok [4]bool
		bbox.North, ok[0] = field(t, "north")
		bbox.South, ok[1] = field(t, "south")
		bbox.East, ok[2] = field(t, "east")
		bbox.West, ok[3] = field(t, "west")
		if slices.Contains(ok[:], false) {
			return nil
		}
	default:
		return nil
	}
	if validate.Struct(bbox) != nil {
		return nil
	}
	return &bbox
}

func toRadius(v any) *models.RadiusFilter {
	var r models.RadiusFilter
	switch t := v.(type) {
	case models.RadiusFilter:
		r = t
	case *models.RadiusFilter:
		if t == nil {
			return nil
		}
		r = *t
	case map[string]any:
		var ok [3]bool
		r.Latitude, ok[0] = field(t, "latitude", "lat")
		r.Longitude, ok[1] = field(t, "longitude", "lon", "lng")
		r.RadiusMeters, ok[2] = field(t, "radiusMeters", "radius", "radius_m")
		if slices.Contains(ok[:], false) {
			return nil
		}
	default:
		return nil
	}
	if validate.Struct(r) != nil {
		return nil
	}
	return &r
}

func toTimeframe(v any) *models.Timeframe {
	var tf models.Timeframe
	switch t := v.(type) {
	case models.Timeframe:
		tf = t
	case *models.Timeframe:
		if t == nil {
			return nil
		}
		tf = *t
	case map[string]any:
		if s, ok := toString(t["type"]); ok {
			tf.Type = models.TimeframeType(strings.ToLower(s))
		}
		for _, name := range []string{"relativeWindow", "window"} {
			if s, ok := toString(t[name]); ok {
				tf.RelativeWindow = strings.ToLower(s)
				break
			}
		}
		tf.Start = toTime(first(t, "startTimestamp", "start"))
		tf.End = toTime(first(t, "endTimestamp", "end"))
	default:
		return nil
	}

	if validate.Struct(tf) != nil {
		return nil
	}
	switch tf.Type {
	case models.TimeframeRelative:
		if !slices.Contains(RelativeWindows, tf.RelativeWindow) {
			return nil
		}
		tf.Start, tf.End = nil, nil
	case models.TimeframeAbsolute:
		if tf.Start == nil && tf.End == nil {
			return nil
		}
		tf.RelativeWindow = ""
	}
	return &tf
}

func first(m map[string]any, names ...string) any {
	for _, n := range names {
		if v, ok := m[n]; ok && v != nil {
			return v
		}
	}
	return nil
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// toTime accepts RFC 3339 strings, dates, time.Time values and unix milliseconds.
func toTime(v any) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return util.Ptr(t.UTC())
	case *time.Time:
		if t == nil {
			return nil
		}
		return util.Ptr(t.UTC())
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return util.Ptr(parsed.UTC())
			}
		}
		return nil
	}
	if ms, ok := toFloat(v); ok {
		return util.Ptr(time.UnixMilli(int64(ms)).UTC())
	}
	return nil
}
