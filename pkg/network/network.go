package network

import (
	"fmt"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
)

// Network pairs the city registry with the route graph built from it.
type Network struct {
	cities []datastructure.City
	routes []datastructure.Edge
	graph  *datastructure.Graph
}

func (n *Network) Graph() *datastructure.Graph {
	return n.graph
}

func (n *Network) Cities() []datastructure.City {
	return n.cities
}

// Routes lists each route once, in definition order and direction.
func (n *Network) Routes() []datastructure.Edge {
	return n.routes
}

func (n *Network) NumCities() int {
	return len(n.cities)
}

func (n *Network) City(id int32) (datastructure.City, bool) {
	if id < 0 || int(id) >= len(n.cities) {
		return datastructure.City{}, false
	}
	return n.cities[id], true
}

func (n *Network) HasCity(id int32) bool {
	_, ok := n.City(id)
	return ok
}

func (n *Network) CityName(id int32) string {
	c, ok := n.City(id)
	if !ok {
		return fmt.Sprintf("city %d", id)
	}
	return c.Name
}

// PathCoordinates returns the locations of the path cities, or false when some city on
// the path has no location.
func (n *Network) PathCoordinates(path []int32) ([]datastructure.Coordinate, bool) {
	coords := make([]datastructure.Coordinate, 0, len(path))
	for _, id := range path {
		c, ok := n.City(id)
		if !ok || !c.HasLocation() {
			return nil, false
		}
		coords = append(coords, *c.Location)
	}
	return coords, true
}
