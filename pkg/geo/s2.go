package geo

import (
	"github.com/golang/geo/s2"
)

// CalculateGeodesicDistance. great-circle distance in meter on the s2 sphere.
func CalculateGeodesicDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, longOne)
	b := s2.LatLngFromDegrees(latTwo, longTwo)
	return a.Distance(b).Radians() * earthRadiusKM * 1000
}
