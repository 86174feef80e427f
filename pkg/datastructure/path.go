package datastructure

import (
	"math"

	"github.com/twpayne/go-polyline"
)

// Unreachable is the Cost of a PathResult whose destination was never reached.
const Unreachable = uint64(math.MaxUint64)

// PathResult is the answer to a single shortest path query.
type PathResult struct {
	Found    bool
	Cost     uint64
	Distance uint64 // sum of leg distances, informational only
	Path     []int32
	Legs     []Edge
}

func NewUnreachablePathResult() PathResult {
	return PathResult{
		Found: false,
		Cost:  Unreachable,
		Path:  []int32{},
		Legs:  []Edge{},
	}
}

func NewPathResult(cost uint64, path []int32, legs []Edge) PathResult {
	var dist uint64
	for _, leg := range legs {
		dist += uint64(leg.Distance)
	}
	return PathResult{
		Found:    true,
		Cost:     cost,
		Distance: dist,
		Path:     path,
		Legs:     legs,
	}
}

type SPSingleResultResult struct {
	Source int32
	Dest   int32
	Result PathResult
}

// CreatePolyline encodes the path coordinates with the google polyline algorithm.
func CreatePolyline(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
