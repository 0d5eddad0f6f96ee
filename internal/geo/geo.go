// Package geo computes great-circle distances between airports.
package geo

import (
	"math"

	"github.com/vanshika/airroute/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used for all distance calculations.
const EarthRadiusKm = 6371.0

// Unknown is returned in place of a distance when an endpoint cannot be resolved.
const Unknown = -1.0

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b domain.Coordinate) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	deltaPhi := toRadians(b.Lat - a.Lat)
	deltaLambda := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Round3 rounds a distance to three decimal places for display.
func Round3(km float64) float64 {
	return math.Round(km*1000) / 1000
}
