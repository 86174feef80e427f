package routingalgorithm

import "github.com/lintang-b-s/modalroute/pkg/datastructure"

type Graph interface {
	GetNodeOutEdges(nodeID int32) []datastructure.Edge
	NodeIDs() []int32
}
