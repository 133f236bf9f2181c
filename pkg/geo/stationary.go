package geo

import (
	"math"
	"time"

	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371008.8

// StationaryParams weights the three stationary confidence components.
// Weights are expected to sum to 1.
type StationaryParams struct {
	SpatialWeight     float64 `json:"spatialWeight" default:"0.5" validate:"min=0,max=1"`
	TemporalWeight    float64 `json:"temporalWeight" default:"0.3" validate:"min=0,max=1"`
	DensityWeight     float64 `json:"densityWeight" default:"0.2" validate:"min=0,max=1"`
	MaxDistanceMeters float64 `json:"maxDistanceMeters" default:"500" validate:"gt=0"`
	MaxSpanHours      float64 `json:"maxSpanHours" default:"168" validate:"gt=0"`
	SaturationCount   float64 `json:"saturationCount" default:"50" validate:"gt=0"`
	MinObservations   int     `json:"minObservations" default:"2" validate:"min=2"`
}

// Usable reports whether the divisors are positive so a score can be computed.
func (p StationaryParams) Usable() bool {
	return p.MaxDistanceMeters > 0 && p.MaxSpanHours > 0 && p.SaturationCount > 0
}

func DefaultStationaryParams() StationaryParams {
	return StationaryParams{
		SpatialWeight:     0.5,
		TemporalWeight:    0.3,
		DensityWeight:     0.2,
		MaxDistanceMeters: 500,
		MaxSpanHours:      168,
		SaturationCount:   50,
		MinObservations:   2,
	}
}

type Point struct {
	Lat  float64
	Lon  float64
	Time time.Time
}

// Centroid is the planar mean of the coordinates, matching ST_Centroid over a point collection.
func Centroid(points []Point) (lat, lon float64) {
	for _, p := range points {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(points))
	return lat / n, lon / n
}

// DistanceMeters is the great circle distance between two coordinates.
func DistanceMeters(aLat, aLon, bLat, bLon float64) float64 {
	a := s2.LatLngFromDegrees(aLat, aLon)
	b := s2.LatLngFromDegrees(bLat, bLon)
	return a.Distance(b).Radians() * earthRadiusMeters
}

// StationaryConfidence scores how likely a transmitter is fixed in place.
// It returns false when there are too few observations to score or the
// params cannot produce a finite score.
func StationaryConfidence(points []Point, p StationaryParams) (float64, bool) {
	if !p.Usable() || len(points) == 0 || len(points) < p.MinObservations {
		return 0, false
	}

	cLat, cLon := Centroid(points)
	first, last := points[0].Time, points[0].Time
	var maxDist float64
	for _, pt := range points {
		maxDist = math.Max(maxDist, DistanceMeters(pt.Lat, pt.Lon, cLat, cLon))
		if pt.Time.Before(first) {
			first = pt.Time
		}
		if pt.Time.After(last) {
			last = pt.Time
		}
	}

	spatial := 1 - math.Min(maxDist/p.MaxDistanceMeters, 1)
	temporal := 1 - math.Min(last.Sub(first).Hours()/p.MaxSpanHours, 1)
	density := math.Min(float64(len(points))/p.SaturationCount, 1)

	score := p.SpatialWeight*spatial + p.TemporalWeight*temporal + p.DensityWeight*density
	score = math.Round(score*1000) / 1000
	return math.Max(0, math.Min(1, score)), true
}
