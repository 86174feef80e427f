package kv

import (
	"github.com/lintang-b-s/modalroute/pkg/datastructure"

	"github.com/kelindar/binary"
)

// kvCity is the value layout stored under an h3 cell key.
type kvCity struct {
	ID   int32
	Name string
	Lat  float64
	Lon  float64
}

func newKVCity(c datastructure.City) kvCity {
	return kvCity{
		ID:   c.ID,
		Name: c.Name,
		Lat:  c.Location.Lat,
		Lon:  c.Location.Lon,
	}
}

func (c kvCity) toCity() datastructure.City {
	return datastructure.NewCityWithLocation(c.ID, c.Name, c.Lat, c.Lon)
}

func encodeCities(cities []kvCity) ([]byte, error) {
	return binary.Marshal(cities)
}

func decodeCities(bb []byte) ([]kvCity, error) {
	var cities []kvCity
	if len(bb) == 0 {
		return cities, nil
	}
	err := binary.Unmarshal(bb, &cities)
	return cities, err
}
