package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func haversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	hav := func(angleRad float64) float64 {
		return (1 - math.Cos(angleRad)) / 2.0
	}
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := hav(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*hav(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

func TestGreatCircleDistanceMatchesHaversine(t *testing.T) {
	// jakarta -> surakarta
	latOne, lonOne := -6.200000, 106.816666
	latTwo, lonTwo := -7.575489, 110.824327

	hav := haversineDistance(latOne, lonOne, latTwo, lonTwo)
	s2Dist := GreatCircleDistance(latOne, lonOne, latTwo, lonTwo)

	assert.InDelta(t, hav, s2Dist, 0.01)
	assert.InDelta(t, 468.0, s2Dist, 10.0)
}

func TestGreatCircleDistanceSamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, GreatCircleDistance(47.6, -122.3, 47.6, -122.3), 1e-9)
}
