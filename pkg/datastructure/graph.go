package datastructure

import (
	"golang.org/x/exp/slices"
)

// Edge is one directed adjacency record. An undirected route is stored as two Edges
// that only differ in direction.
type Edge struct {
	FromNodeID int32  `json:"from_node_id"`
	ToNodeID   int32  `json:"to_node_id"`
	Mode       Mode   `json:"mode"`
	Distance   uint32 `json:"distance"`
	Cost       uint32 `json:"cost"`
}

func NewEdge(from, to int32, mode Mode, distance, cost uint32) Edge {
	return Edge{
		FromNodeID: from,
		ToNodeID:   to,
		Mode:       mode,
		Distance:   distance,
		Cost:       cost,
	}
}

// Reverse returns the same edge pointing the other way.
func (e Edge) Reverse() Edge {
	return NewEdge(e.ToNodeID, e.FromNodeID, e.Mode, e.Distance, e.Cost)
}

// Graph is a multigraph adjacency list keyed by node id. It is built by AddRoute calls
// and only read afterwards, so concurrent queries may share one Graph.
type Graph struct {
	outEdges map[int32][]Edge
	numEdges int
}

func NewGraph() *Graph {
	return &Graph{
		outEdges: make(map[int32][]Edge),
	}
}

// AddRoute stores the route as two directed edges from->to and to->from with the same
// mode, distance and cost. Endpoints are not checked and duplicate routes are kept as
// parallel edges.
func (g *Graph) AddRoute(from, to int32, mode Mode, distance, cost uint32) {
	e := NewEdge(from, to, mode, distance, cost)
	g.outEdges[from] = append(g.outEdges[from], e)
	g.outEdges[to] = append(g.outEdges[to], e.Reverse())
	g.numEdges += 2
}

// GetNodeOutEdges returns the outgoing edges of nodeID in insertion order, nil if the node
// has none. The returned slice must not be modified.
func (g *Graph) GetNodeOutEdges(nodeID int32) []Edge {
	return g.outEdges[nodeID]
}

func (g *Graph) HasNode(nodeID int32) bool {
	_, ok := g.outEdges[nodeID]
	return ok
}

// NodeIDs returns every node id that appears in the edge store, ascending.
func (g *Graph) NodeIDs() []int32 {
	ids := make([]int32, 0, len(g.outEdges))
	for id := range g.outEdges {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (g *Graph) NumNodes() int {
	return len(g.outEdges)
}

// NumEdges counts directed records, two per route.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// Edges lists all directed records, grouped by source node ascending and in insertion
// order within a node.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.numEdges)
	for _, id := range g.NodeIDs() {
		edges = append(edges, g.outEdges[id]...)
	}
	return edges
}

// ForOutEdgesOf calls handle for every outgoing edge of nodeID whose mode is mode.
func (g *Graph) ForOutEdgesOf(nodeID int32, mode Mode, handle func(e Edge)) {
	for _, e := range g.outEdges[nodeID] {
		if e.Mode != mode {
			continue
		}
		handle(e)
	}
}
