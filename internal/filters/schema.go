package filters

import (
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

// Kind is the canonical value type of a filter key.
type Kind string

const (
	KindString        Kind = "string"
	KindStringSet     Kind = "string_set"
	KindInteger       Kind = "integer"
	KindNumber        Kind = "number"
	KindBoolean       Kind = "boolean"
	KindTimeframe     Kind = "timeframe"
	KindTemporalScope Kind = "temporal_scope"
	KindQuality       Kind = "quality"
	KindBoundingBox   Kind = "bounding_box"
	KindRadius        Kind = "radius"
)

// KeySpec describes a filter key. NetworkOnly keys can be answered from the
// network explorer view without touching raw observations.
type KeySpec struct {
	Key         models.FilterKey `json:"key"`
	Dimension   models.Dimension `json:"dimension"`
	Kind        Kind             `json:"kind"`
	NetworkOnly bool             `json:"networkOnly"`
	Target      string           `json:"target"`
	Values      []string         `json:"values,omitempty"`
}

var schema = []KeySpec{
	{Key: models.FilterSSID, Dimension: models.DimensionIdentity, Kind: KindString, NetworkOnly: true, Target: "ssid"},
	{Key: models.FilterBSSID, Dimension: models.DimensionIdentity, Kind: KindString, NetworkOnly: true, Target: "bssid"},
	{Key: models.FilterManufacturer, Dimension: models.DimensionIdentity, Kind: KindString, NetworkOnly: true, Target: "radio_manufacturers.manufacturer"},
	{Key: models.FilterNetworkID, Dimension: models.DimensionIdentity, Kind: KindString, Target: "none"},
	{Key: models.FilterRadioTypes, Dimension: models.DimensionRadio, Kind: KindStringSet, NetworkOnly: true, Target: "radio type classification"},
	{Key: models.FilterFrequencyBands, Dimension: models.DimensionRadio, Kind: KindStringSet, NetworkOnly: true, Target: "radio_frequency"},
	{Key: models.FilterChannelMin, Dimension: models.DimensionRadio, Kind: KindInteger, NetworkOnly: true, Target: "channel derivation"},
	{Key: models.FilterChannelMax, Dimension: models.DimensionRadio, Kind: KindInteger, NetworkOnly: true, Target: "channel derivation"},
	{Key: models.FilterRSSIMin, Dimension: models.DimensionRadio, Kind: KindNumber, Target: "observations.level"},
	{Key: models.FilterRSSIMax, Dimension: models.DimensionRadio, Kind: KindNumber, Target: "observations.level"},
	{Key: models.FilterEncryptionTypes, Dimension: models.DimensionSecurity, Kind: KindStringSet, NetworkOnly: true, Target: "security classification"},
	{Key: models.FilterAuthMethods, Dimension: models.DimensionSecurity, Kind: KindStringSet, Target: "radio_capabilities"},
	{Key: models.FilterInsecureFlags, Dimension: models.DimensionSecurity, Kind: KindStringSet, Target: "security classification"},
	{Key: models.FilterSecurityFlags, Dimension: models.DimensionSecurity, Kind: KindStringSet, NetworkOnly: true, Target: "security classification"},
	{Key: models.FilterTimeframe, Dimension: models.DimensionTemporal, Kind: KindTimeframe, Target: "observations.time"},
	{Key: models.FilterTemporalScope, Dimension: models.DimensionTemporal, Kind: KindTemporalScope, Target: "timeframe column"},
	{Key: models.FilterObservationCountMin, Dimension: models.DimensionQuality, Kind: KindInteger, NetworkOnly: true, Target: "observation count"},
	{Key: models.FilterObservationCountMax, Dimension: models.DimensionQuality, Kind: KindInteger, NetworkOnly: true, Target: "observation count"},
	{Key: models.FilterGPSAccuracyMax, Dimension: models.DimensionQuality, Kind: KindNumber, NetworkOnly: true, Target: "accuracy"},
	{Key: models.FilterExcludeInvalidCoords, Dimension: models.DimensionQuality, Kind: KindBoolean, NetworkOnly: true, Target: "lat, lon"},
	{Key: models.FilterQualityFilter, Dimension: models.DimensionQuality, Kind: KindQuality, Target: "observations"},
	{Key: models.FilterDistanceFromHomeMin, Dimension: models.DimensionSpatial, Kind: KindNumber, NetworkOnly: true, Target: "distance from home (km)"},
	{Key: models.FilterDistanceFromHomeMax, Dimension: models.DimensionSpatial, Kind: KindNumber, NetworkOnly: true, Target: "distance from home (km)"},
	{Key: models.FilterBoundingBox, Dimension: models.DimensionSpatial, Kind: KindBoundingBox, Target: "observations.lat, observations.lon"},
	{Key: models.FilterRadiusFilter, Dimension: models.DimensionSpatial, Kind: KindRadius, Target: "observations.geom"},
	{Key: models.FilterThreatScoreMin, Dimension: models.DimensionThreat, Kind: KindNumber, NetworkOnly: true, Target: "threat score"},
	{Key: models.FilterThreatScoreMax, Dimension: models.DimensionThreat, Kind: KindNumber, NetworkOnly: true, Target: "threat score"},
	{Key: models.FilterThreatCategories, Dimension: models.DimensionThreat, Kind: KindStringSet, NetworkOnly: true, Target: "threat level"},
	{Key: models.FilterStationaryConfidenceMin, Dimension: models.DimensionSpatial, Kind: KindNumber, Target: "stationary confidence"},
	{Key: models.FilterStationaryConfidenceMax, Dimension: models.DimensionSpatial, Kind: KindNumber, Target: "stationary confidence"},
}

var schemaByKey = func() map[models.FilterKey]KeySpec {
	m := make(map[models.FilterKey]KeySpec, len(schema))
	for _, s := range schema {
		if v, ok := vocabularies[s.Key]; ok {
			s.Values = v.allowed
		}
		m[s.Key] = s
	}
	return m
}()

// Spec returns the schema entry of key.
func Spec(key models.FilterKey) (KeySpec, bool) {
	s, ok := schemaByKey[key]
	return s, ok
}

// Specs returns every schema entry in compilation order.
func Specs() []KeySpec {
	specs := make([]KeySpec, 0, len(models.FilterKeys))
	for _, k := range models.FilterKeys {
		specs = append(specs, schemaByKey[k])
	}
	return specs
}

func DimensionOf(key models.FilterKey) models.Dimension {
	return schemaByKey[key].Dimension
}

func IsNetworkOnly(key models.FilterKey) bool {
	return schemaByKey[key].NetworkOnly
}
