package routingalgorithm

import (
	"golang.org/x/exp/slices"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/util"
)

// Components is the partition of the graph nodes into strongly connected components of
// one mode. Members are sorted and components are ordered by their smallest node id.
type Components struct {
	Members     [][]int32
	componentOf map[int32]int
}

// Connected reports whether v can be reached from u and u from v using the mode the
// components were computed for. Unknown nodes are only connected to themselves.
func (c Components) Connected(u, v int32) bool {
	if u == v {
		return true
	}
	cu, okU := c.componentOf[u]
	cv, okV := c.componentOf[v]
	return okU && okV && cu == cv
}

// ComponentOf returns the index into Members of the component holding nodeID.
func (c Components) ComponentOf(nodeID int32) (int, bool) {
	i, ok := c.componentOf[nodeID]
	return i, ok
}

// ModeComponents runs kosaraju over the edges of mode. Every node of the graph lands in
// exactly one component, a node without edges of mode is a component of its own.
func (rt *RouteAlgorithm) ModeComponents(mode datastructure.Mode) Components {
	nodeIDs := rt.graph.NodeIDs()

	inEdges := make(map[int32][]int32, len(nodeIDs))
	for _, u := range nodeIDs {
		for _, e := range rt.graph.GetNodeOutEdges(u) {
			if e.Mode == mode {
				inEdges[e.ToNodeID] = append(inEdges[e.ToNodeID], u)
			}
		}
	}

	order := make([]int32, 0, len(nodeIDs))
	visited := make(map[int32]bool, len(nodeIDs))
	for _, u := range nodeIDs {
		if !visited[u] {
			rt.dfs(u, mode, &order, visited)
		}
	}

	order = util.ReverseG[int32](order)

	// reset visited
	visited = make(map[int32]bool, len(nodeIDs))

	members := make([][]int32, 0)
	for _, v := range order {
		if !visited[v] {
			component := make([]int32, 0)
			dfsReversed(v, inEdges, &component, visited)
			slices.Sort(component)
			members = append(members, component)
		}
	}

	slices.SortFunc(members, func(a, b []int32) int {
		return int(a[0]) - int(b[0])
	})

	componentOf := make(map[int32]int, len(nodeIDs))
	for i, component := range members {
		for _, v := range component {
			componentOf[v] = i
		}
	}

	return Components{Members: members, componentOf: componentOf}
}

func (rt *RouteAlgorithm) dfs(v int32, mode datastructure.Mode, output *[]int32, visited map[int32]bool) {
	visited[v] = true

	for _, e := range rt.graph.GetNodeOutEdges(v) {
		if e.Mode == mode && !visited[e.ToNodeID] {
			rt.dfs(e.ToNodeID, mode, output, visited)
		}
	}

	*output = append(*output, v)
}

func dfsReversed(v int32, inEdges map[int32][]int32, output *[]int32, visited map[int32]bool) {
	visited[v] = true

	for _, u := range inEdges[v] {
		if !visited[u] {
			dfsReversed(u, inEdges, output, visited)
		}
	}

	*output = append(*output, v)
}
