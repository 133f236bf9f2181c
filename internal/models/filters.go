package models

import "time"

// FilterKey identifies one filter dimension accepted by the compiler.
type FilterKey string

const (
	FilterSSID                    FilterKey = "ssid"
	FilterBSSID                   FilterKey = "bssid"
	FilterManufacturer            FilterKey = "manufacturer"
	FilterNetworkID               FilterKey = "networkId"
	FilterRadioTypes              FilterKey = "radioTypes"
	FilterFrequencyBands          FilterKey = "frequencyBands"
	FilterChannelMin              FilterKey = "channelMin"
	FilterChannelMax              FilterKey = "channelMax"
	FilterRSSIMin                 FilterKey = "rssiMin"
	FilterRSSIMax                 FilterKey = "rssiMax"
	FilterEncryptionTypes         FilterKey = "encryptionTypes"
	FilterAuthMethods             FilterKey = "authMethods"
	FilterInsecureFlags           FilterKey = "insecureFlags"
	FilterSecurityFlags           FilterKey = "securityFlags"
	FilterTimeframe               FilterKey = "timeframe"
	FilterTemporalScope           FilterKey = "temporalScope"
	FilterObservationCountMin     FilterKey = "observationCountMin"
	FilterObservationCountMax     FilterKey = "observationCountMax"
	FilterGPSAccuracyMax          FilterKey = "gpsAccuracyMax"
	FilterExcludeInvalidCoords    FilterKey = "excludeInvalidCoords"
	FilterQualityFilter           FilterKey = "qualityFilter"
	FilterDistanceFromHomeMin     FilterKey = "distanceFromHomeMin"
	FilterDistanceFromHomeMax     FilterKey = "distanceFromHomeMax"
	FilterBoundingBox             FilterKey = "boundingBox"
	FilterRadiusFilter            FilterKey = "radiusFilter"
	FilterThreatScoreMin          FilterKey = "threatScoreMin"
	FilterThreatScoreMax          FilterKey = "threatScoreMax"
	FilterThreatCategories        FilterKey = "threatCategories"
	FilterStationaryConfidenceMin FilterKey = "stationaryConfidenceMin"
	FilterStationaryConfidenceMax FilterKey = "stationaryConfidenceMax"
)

// FilterKeys lists every key in compilation order.
var FilterKeys = []FilterKey{
	FilterSSID,
	FilterBSSID,
	FilterManufacturer,
	FilterNetworkID,
	FilterRadioTypes,
	FilterFrequencyBands,
	FilterChannelMin,
	FilterChannelMax,
	FilterRSSIMin,
	FilterRSSIMax,
	FilterEncryptionTypes,
	FilterAuthMethods,
	FilterInsecureFlags,
	FilterSecurityFlags,
	FilterTimeframe,
	FilterTemporalScope,
	FilterGPSAccuracyMax,
	FilterExcludeInvalidCoords,
	FilterQualityFilter,
	FilterDistanceFromHomeMin,
	FilterDistanceFromHomeMax,
	FilterBoundingBox,
	FilterRadiusFilter,
	FilterObservationCountMin,
	FilterObservationCountMax,
	FilterThreatScoreMin,
	FilterThreatScoreMax,
	FilterThreatCategories,
	FilterStationaryConfidenceMin,
	FilterStationaryConfidenceMax,
}

type Dimension string

const (
	DimensionIdentity Dimension = "identity"
	DimensionRadio    Dimension = "radio"
	DimensionSecurity Dimension = "security"
	DimensionTemporal Dimension = "temporal"
	DimensionSpatial  Dimension = "spatial"
	DimensionQuality  Dimension = "quality"
	DimensionThreat   Dimension = "threat"
)

type TimeframeType string

const (
	TimeframeRelative TimeframeType = "relative"
	TimeframeAbsolute TimeframeType = "absolute"
)

type TemporalScope string

const (
	ScopeObservationTime TemporalScope = "observation_time"
	ScopeNetworkLifetime TemporalScope = "network_lifetime"
	ScopeThreatWindow    TemporalScope = "threat_window"
)

type QualityFilter string

const (
	QualityTemporal  QualityFilter = "temporal"
	QualityExtreme   QualityFilter = "extreme"
	QualityDuplicate QualityFilter = "duplicate"
	QualityAll       QualityFilter = "all"
)

type BoundingBox struct {
	North float64 `json:"north" validate:"min=-90,max=90,gtefield=South"`
	South float64 `json:"south" validate:"min=-90,max=90"`
	East  float64 `json:"east" validate:"min=-180,max=180"`
	West  float64 `json:"west" validate:"min=-180,max=180"`
}

type RadiusFilter struct {
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radiusMeters" validate:"gt=0"`
}

// Timeframe is either a relative window ending now or an absolute range.
// An absolute range needs at least one bound.
type Timeframe struct {
	Type           TimeframeType `json:"type" validate:"oneof=relative absolute"`
	RelativeWindow string        `json:"relativeWindow,omitempty"`
	Start          *time.Time    `json:"startTimestamp,omitempty"`
	End            *time.Time    `json:"endTimestamp,omitempty"`
}

// Filters holds normalized filter values. A nil field means the value is absent.
type Filters struct {
	SSID                    *string        `json:"ssid,omitempty"`
	BSSID                   *string        `json:"bssid,omitempty"`
	Manufacturer            *string        `json:"manufacturer,omitempty"`
	NetworkID               *string        `json:"networkId,omitempty"`
	RadioTypes              []string       `json:"radioTypes,omitempty"`
	FrequencyBands          []string       `json:"frequencyBands,omitempty"`
	ChannelMin              *int           `json:"channelMin,omitempty"`
	ChannelMax              *int           `json:"channelMax,omitempty"`
	RSSIMin                 *float64       `json:"rssiMin,omitempty"`
	RSSIMax                 *float64       `json:"rssiMax,omitempty"`
	EncryptionTypes         []string       `json:"encryptionTypes,omitempty"`
	AuthMethods             []string       `json:"authMethods,omitempty"`
	InsecureFlags           []string       `json:"insecureFlags,omitempty"`
	SecurityFlags           []string       `json:"securityFlags,omitempty"`
	Timeframe               *Timeframe     `json:"timeframe,omitempty"`
	TemporalScope           *TemporalScope `json:"temporalScope,omitempty"`
	ObservationCountMin     *int           `json:"observationCountMin,omitempty"`
	ObservationCountMax     *int           `json:"observationCountMax,omitempty"`
	GPSAccuracyMax          *float64       `json:"gpsAccuracyMax,omitempty"`
	ExcludeInvalidCoords    *bool          `json:"excludeInvalidCoords,omitempty"`
	QualityFilter           *QualityFilter `json:"qualityFilter,omitempty"`
	DistanceFromHomeMin     *float64       `json:"distanceFromHomeMin,omitempty"`
	DistanceFromHomeMax     *float64       `json:"distanceFromHomeMax,omitempty"`
	BoundingBox             *BoundingBox   `json:"boundingBox,omitempty"`
	RadiusFilter            *RadiusFilter  `json:"radiusFilter,omitempty"`
	ThreatScoreMin          *float64       `json:"threatScoreMin,omitempty"`
	ThreatScoreMax          *float64       `json:"threatScoreMax,omitempty"`
	ThreatCategories        []string       `json:"threatCategories,omitempty"`
	StationaryConfidenceMin *float64       `json:"stationaryConfidenceMin,omitempty"`
	StationaryConfidenceMax *float64       `json:"stationaryConfidenceMax,omitempty"`
}

// Value returns the normalized value for key, or nil when it is absent.
func (f Filters) Value(key FilterKey) any {
	switch key {
	case FilterSSID:
		return deref(f.SSID)
	case FilterBSSID:
		return deref(f.BSSID)
	case FilterManufacturer:
		return deref(f.Manufacturer)
	case FilterNetworkID:
		return deref(f.NetworkID)
	case FilterRadioTypes:
		return set(f.RadioTypes)
	case FilterFrequencyBands:
		return set(f.FrequencyBands)
	case FilterChannelMin:
		return deref(f.ChannelMin)
	case FilterChannelMax:
		return deref(f.ChannelMax)
	case FilterRSSIMin:
		return deref(f.RSSIMin)
	case FilterRSSIMax:
		return deref(f.RSSIMax)
	case FilterEncryptionTypes:
		return set(f.EncryptionTypes)
	case FilterAuthMethods:
		return set(f.AuthMethods)
	case FilterInsecureFlags:
		return set(f.InsecureFlags)
	case FilterSecurityFlags:
		return set(f.SecurityFlags)
	case FilterTimeframe:
		return deref(f.Timeframe)
	case FilterTemporalScope:
		return deref(f.TemporalScope)
	case FilterObservationCountMin:
		return deref(f.ObservationCountMin)
	case FilterObservationCountMax:
		return deref(f.ObservationCountMax)
	case FilterGPSAccuracyMax:
		return deref(f.GPSAccuracyMax)
	case FilterExcludeInvalidCoords:
		return deref(f.ExcludeInvalidCoords)
	case FilterQualityFilter:
		return deref(f.QualityFilter)
	case FilterDistanceFromHomeMin:
		return deref(f.DistanceFromHomeMin)
	case FilterDistanceFromHomeMax:
		return deref(f.DistanceFromHomeMax)
	case FilterBoundingBox:
		return deref(f.BoundingBox)
	case FilterRadiusFilter:
		return deref(f.RadiusFilter)
	case FilterThreatScoreMin:
		return deref(f.ThreatScoreMin)
	case FilterThreatScoreMax:
		return deref(f.ThreatScoreMax)
	case FilterThreatCategories:
		return set(f.ThreatCategories)
	case FilterStationaryConfidenceMin:
		return deref(f.StationaryConfidenceMin)
	case FilterStationaryConfidenceMax:
		return deref(f.StationaryConfidenceMax)
	}
	return nil
}

// Has reports whether a value is present for key.
func (f Filters) Has(key FilterKey) bool {
	return f.Value(key) != nil
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func set(v []string) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

// EnabledFlags maps each key to its enable flag. Missing keys are disabled.
type EnabledFlags map[FilterKey]bool

func (e EnabledFlags) Enabled(key FilterKey) bool {
	return e[key]
}

// Keys returns the enabled keys in compilation order.
func (e EnabledFlags) Keys() []FilterKey {
	var keys []FilterKey
	for _, k := range FilterKeys {
		if e[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

func (e EnabledFlags) Count() int {
	return len(e.Keys())
}

func (e EnabledFlags) Any() bool {
	return e.Count() > 0
}
