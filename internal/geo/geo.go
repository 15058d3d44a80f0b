// Package geo provides great-circle distance calculations for sorting
// venues by proximity.
package geo

import (
	"math"
)

// earthRadiusKm is the mean radius of the Earth in kilometers
const earthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers between two
// WGS84 coordinates.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
