package snap

import (
	"errors"
	"math"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/geo"
)

var (
	ErrNoCityNearby = errors.New("no city near the given location")
)

type KVDB interface {
	GetNearestCitiesFromPointCoord(lat, lon float64) ([]datastructure.City, error)
}

// CitySnapper maps an arbitrary coordinate to the closest city of the network.
type CitySnapper struct {
	kv KVDB
}

func NewCitySnapper(kv KVDB) *CitySnapper {
	return &CitySnapper{kv: kv}
}

// SnapToCity returns the candidate city with the smallest great circle distance to the
// point, and that distance in km.
func (cs *CitySnapper) SnapToCity(lat, lon float64) (datastructure.City, float64, error) {
	candidates, err := cs.kv.GetNearestCitiesFromPointCoord(lat, lon)
	if err != nil {
		return datastructure.City{}, 0, err
	}

	best := -1
	bestDist := math.MaxFloat64
	for i, c := range candidates {
		if !c.HasLocation() {
			continue
		}
		dist := geo.GreatCircleDistance(lat, lon, c.Location.Lat, c.Location.Lon)
		if best == -1 || dist < bestDist || (dist == bestDist && c.ID < candidates[best].ID) {
			best = i
			bestDist = dist
		}
	}

	if best == -1 {
		return datastructure.City{}, 0, ErrNoCityNearby
	}

	return candidates[best], bestDist, nil
}
