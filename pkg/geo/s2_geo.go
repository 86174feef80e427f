package geo

import (
	"github.com/golang/geo/s2"
)

const (
	earthRadiusKM = 6371.0
)

// GreatCircleDistance returns the distance in km between two lat/lon points on the sphere.
func GreatCircleDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, lonOne)
	b := s2.LatLngFromDegrees(latTwo, lonTwo)
	return a.Distance(b).Radians() * earthRadiusKM
}
