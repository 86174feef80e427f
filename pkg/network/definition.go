package network

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidDefinition = errors.New("invalid network definition")
)

// Definition is the serializable description of a network: the city registry and the
// undirected routes between cities.
type Definition struct {
	Cities []CityDefinition  `json:"cities" validate:"required,min=1,dive"`
	Routes []RouteDefinition `json:"routes" validate:"dive"`
}

type CityDefinition struct {
	ID   int32    `json:"id" validate:"gte=0"`
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

type RouteDefinition struct {
	From     int32  `json:"from" validate:"gte=0"`
	To       int32  `json:"to" validate:"gte=0"`
	Mode     string `json:"mode" validate:"required,oneof=train car airplane"`
	Distance uint32 `json:"distance"`
	Cost     uint32 `json:"cost"`
}

func (c CityDefinition) toCity() datastructure.City {
	if c.Lat == nil || c.Lon == nil {
		return datastructure.NewCity(c.ID, c.Name)
	}
	return datastructure.NewCityWithLocation(c.ID, c.Name, *c.Lat, *c.Lon)
}

var validate = validator.New()

// Validate checks field rules, then that city ids are exactly 0..n-1 and that every route
// joins known cities.
func (d Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	n := len(d.Cities)
	seen := make([]bool, n)
	for _, c := range d.Cities {
		if int(c.ID) >= n {
			return fmt.Errorf("%w: city %q has id %d, ids must be in [0, %d)", ErrInvalidDefinition, c.Name, c.ID, n)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate city id %d", ErrInvalidDefinition, c.ID)
		}
		seen[c.ID] = true

		if (c.Lat == nil) != (c.Lon == nil) {
			return fmt.Errorf("%w: city %d needs both lat and lon", ErrInvalidDefinition, c.ID)
		}
	}

	for i, r := range d.Routes {
		if int(r.From) >= n || int(r.To) >= n {
			return fmt.Errorf("%w: route %d joins unknown city (%d, %d)", ErrInvalidDefinition, i, r.From, r.To)
		}
	}
	return nil
}

// Build validates the definition and constructs the network. The graph is filled by one
// AddRoute per route, in definition order.
func Build(d Definition) (*Network, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cities := make([]datastructure.City, len(d.Cities))
	for _, c := range d.Cities {
		cities[c.ID] = c.toCity()
	}

	graph := datastructure.NewGraph()
	routes := make([]datastructure.Edge, 0, len(d.Routes))
	for _, r := range d.Routes {
		mode, err := datastructure.ParseMode(r.Mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		graph.AddRoute(r.From, r.To, mode, r.Distance, r.Cost)
		routes = append(routes, datastructure.NewEdge(r.From, r.To, mode, r.Distance, r.Cost))
	}

	return &Network{cities: cities, routes: routes, graph: graph}, nil
}
