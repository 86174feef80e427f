package service

import (
	"context"
	"errors"

	"golang.org/x/exp/slices"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/modalroute/pkg/kv"
	"github.com/lintang-b-s/modalroute/pkg/server"
	"github.com/lintang-b-s/modalroute/pkg/snap"
	"github.com/lintang-b-s/modalroute/pkg/util"
)

type RoutingAlgorithm interface {
	ShortestPath(from, to int32, mode datastructure.Mode) datastructure.PathResult
	ShortestPathManyToMany(ctx context.Context, from []int32, to []int32,
		mode datastructure.Mode) (map[int32]map[int32]datastructure.PathResult, error)
	ModeComponents(mode datastructure.Mode) routingalgorithm.Components
}

type Network interface {
	Cities() []datastructure.City
	City(id int32) (datastructure.City, bool)
	HasCity(id int32) bool
	CityName(id int32) string
	Routes() []datastructure.Edge
	PathCoordinates(path []int32) ([]datastructure.Coordinate, bool)
}

type CitySnapper interface {
	SnapToCity(lat, lon float64) (datastructure.City, float64, error)
}

// Route is one queried path with the display data the handlers and the console need.
type Route struct {
	Result   datastructure.PathResult
	Cities   []string
	Polyline string
}

type NavigationService struct {
	network Network
	routing RoutingAlgorithm
	snapper CitySnapper
}

// NewNavigationService wires the query dependencies. snapper may be nil, the nearest city
// lookup then reports ErrNotFound.
func NewNavigationService(network Network, routing RoutingAlgorithm, snapper CitySnapper) *NavigationService {
	return &NavigationService{network: network, routing: routing, snapper: snapper}
}

func (uc *NavigationService) ShortestPath(ctx context.Context, from, to int32, mode datastructure.Mode) (Route, error) {
	if err := uc.checkQuery([]int32{from}, []int32{to}, mode); err != nil {
		return Route{}, err
	}

	res := uc.routing.ShortestPath(from, to, mode)
	return uc.newRoute(res), nil
}

func (uc *NavigationService) ShortestPathManyToMany(ctx context.Context, from, to []int32,
	mode datastructure.Mode) (map[int32]map[int32]Route, error) {
	if err := uc.checkQuery(from, to, mode); err != nil {
		return nil, err
	}

	matrix, err := uc.routing.ShortestPathManyToMany(ctx, from, to, mode)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, server.WrapErrorf(err, server.ErrInternalServerError, "query cancelled")
		}
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}

	routes := make(map[int32]map[int32]Route, len(matrix))
	for s, row := range matrix {
		routes[s] = make(map[int32]Route, len(row))
		for d, res := range row {
			routes[s][d] = uc.newRoute(res)
		}
	}
	return routes, nil
}

func (uc *NavigationService) Cities(ctx context.Context) []datastructure.City {
	return uc.network.Cities()
}

// Routes lists every route once, in definition order.
func (uc *NavigationService) Routes(ctx context.Context) []datastructure.Edge {
	return uc.network.Routes()
}

// Components groups the cities into islands that are mutually reachable with mode.
func (uc *NavigationService) Components(ctx context.Context, mode datastructure.Mode) ([][]int32, error) {
	if !mode.Valid() {
		return nil, server.WrapErrorf(datastructure.ErrInvalidMode, server.ErrBadParamInput, "invalid mode %d", uint8(mode))
	}

	comps := uc.routing.ModeComponents(mode)
	members := comps.Members
	for _, c := range uc.network.Cities() {
		// cities without any route are not graph nodes
		if _, ok := comps.ComponentOf(c.ID); !ok {
			members = append(members, []int32{c.ID})
		}
	}
	slices.SortFunc(members, func(a, b []int32) int {
		return int(a[0]) - int(b[0])
	})
	return members, nil
}

func (uc *NavigationService) Modes(ctx context.Context) []datastructure.Mode {
	return datastructure.AllModes()
}

func (uc *NavigationService) CityName(id int32) string {
	return uc.network.CityName(id)
}

// NearestCity snaps a coordinate to the closest city that has a location.
func (uc *NavigationService) NearestCity(ctx context.Context, lat, lon float64) (datastructure.City, float64, error) {
	if uc.snapper == nil {
		return datastructure.City{}, 0, server.NewErrorf(server.ErrNotFound, "nearest city lookup is not enabled")
	}

	city, dist, err := uc.snapper.SnapToCity(lat, lon)
	if err != nil {
		if errors.Is(err, snap.ErrNoCityNearby) || errors.Is(err, kv.ErrCitiesNotFound) {
			return datastructure.City{}, 0, server.WrapErrorf(err, server.ErrNotFound, "no city near (%f, %f)", lat, lon)
		}
		return datastructure.City{}, 0, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return city, util.RoundFloat(dist, 3), nil
}

func (uc *NavigationService) checkQuery(from, to []int32, mode datastructure.Mode) error {
	if !mode.Valid() {
		return server.WrapErrorf(datastructure.ErrInvalidMode, server.ErrBadParamInput, "invalid mode %d", uint8(mode))
	}
	for _, ids := range [][]int32{from, to} {
		for _, id := range ids {
			if !uc.network.HasCity(id) {
				return server.NewErrorf(server.ErrNotFound, "city %d not found", id)
			}
		}
	}
	return nil
}

func (uc *NavigationService) newRoute(res datastructure.PathResult) Route {
	route := Route{
		Result: res,
		Cities: make([]string, 0, len(res.Path)),
	}
	for _, id := range res.Path {
		route.Cities = append(route.Cities, uc.network.CityName(id))
	}
	if coords, ok := uc.network.PathCoordinates(res.Path); ok && len(coords) > 1 {
		route.Polyline = datastructure.CreatePolyline(coords)
	}
	return route
}
