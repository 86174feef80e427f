package routingalgorithm

import (
	"math"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/util"
)

type cameFromPair struct {
	Edge   datastructure.Edge
	NodeID int32
}

// RouteAlgorithm answers mode filtered shortest path queries over a read-only graph.
// It holds no per-query state, so one RouteAlgorithm can serve concurrent callers.
type RouteAlgorithm struct {
	graph Graph
}

func NewRouteAlgorithm(graph Graph) *RouteAlgorithm {
	return &RouteAlgorithm{graph: graph}
}

const infinity = uint64(math.MaxUint64)

// ShortestPath runs dijkstra from `from` using only edges whose mode equals mode and
// returns the cheapest path to `to`.
//
// The frontier keeps stale entries instead of decreasing keys; an entry whose rank is
// worse than the node's settled cost is skipped when popped. The search does not stop
// at the first pop of `to`; it drains the frontier and keeps the path of the strictly
// best pop of `to`, which for non-negative costs is the first one.
//
// Node ids that are not in the graph are not rejected: an unknown source has no edges and
// an unknown destination is never reached, both giving an unreachable result.
func (rt *RouteAlgorithm) ShortestPath(from, to int32, mode datastructure.Mode) datastructure.PathResult {
	nodeIDs := rt.graph.NodeIDs()

	dist := make(map[int32]uint64, len(nodeIDs))
	for _, id := range nodeIDs {
		dist[id] = infinity
	}
	dist[from] = 0

	cameFrom := make(map[int32]cameFromPair, len(nodeIDs))

	pq := datastructure.NewMinHeap[int32]()
	pq.Insert(datastructure.NewPriorityQueueNode(0, from))

	bestCost := infinity
	var bestPath []int32
	var bestLegs []datastructure.Edge

	for pq.Size() > 0 {
		current, _ := pq.ExtractMin()
		u, d := current.Item, current.Rank

		if u == to && d < bestCost {
			bestCost = d
			bestPath, bestLegs = reconstructPath(cameFrom, from, to)
		}

		if d > dist[u] {
			// stale entry, u was already settled with a smaller cost
			continue
		}

		for _, edge := range rt.graph.GetNodeOutEdges(u) {
			if edge.Mode != mode {
				continue
			}

			v := edge.ToNodeID
			newCost := d + uint64(edge.Cost)

			if old, ok := dist[v]; ok && newCost >= old {
				continue
			}

			dist[v] = newCost
			cameFrom[v] = cameFromPair{Edge: edge, NodeID: u}
			pq.Insert(datastructure.NewPriorityQueueNode(newCost, v))
		}
	}

	if bestCost == infinity {
		return datastructure.NewUnreachablePathResult()
	}

	return datastructure.NewPathResult(bestCost, bestPath, bestLegs)
}

// reconstructPath walks parent links from `to` back to `from` and returns the node
// sequence and the edges used, both ordered from `from` to `to`.
func reconstructPath(cameFrom map[int32]cameFromPair, from, to int32) ([]int32, []datastructure.Edge) {
	path := []int32{}
	legs := []datastructure.Edge{}

	node := to
	for node != from {
		prev := cameFrom[node]
		path = append(path, node)
		legs = append(legs, prev.Edge)
		node = prev.NodeID
	}
	path = append(path, from)

	return util.ReverseG(path), util.ReverseG(legs)
}
