package topology

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// topoGraph wraps a multi.UndirectedGraph to track connectivity between
// nodes. A multigraph is needed since two nodes may be joined by more than
// one link, on different ports.
type topoGraph struct {
	*multi.UndirectedGraph
	byID map[string]*topoNode
}

func newTopoGraph() *topoGraph {
	return &topoGraph{
		UndirectedGraph: multi.NewUndirectedGraph(),
		byID:            make(map[string]*topoNode),
	}
}

// addNode registers a topology node with the graph.
func (g *topoGraph) addNode(n *Node) {
	tn := &topoNode{Node: g.UndirectedGraph.NewNode(), node: n}
	g.AddNode(tn)
	g.byID[n.ID] = tn
}

// addLink records a connection between the owning nodes of a link's
// endpoints. Endpoints on a common node must be rejected before this
// point, the underlying graph does not represent self-loops.
func (g *topoGraph) addLink(l *Link) {
	from := g.byID[l.A.Node.ID]
	to := g.byID[l.B.Node.ID]
	g.SetLine(g.NewLine(from, to))
}

// degree returns the number of link endpoints attached to the named node.
func (g *topoGraph) degree(id string) int {
	tn := g.byID[id]
	if tn == nil {
		return 0
	}
	d := 0
	it := g.From(tn.ID())
	for it.Next() {
		d += len(graph.LinesOf(g.LinesBetween(tn.ID(), it.Node().ID())))
	}
	return d
}

// neighbors returns the nodes adjacent to the named node.
func (g *topoGraph) neighbors(id string) []*Node {
	tn := g.byID[id]
	if tn == nil {
		return nil
	}
	var ns []*Node
	for _, x := range graph.NodesOf(g.From(tn.ID())) {
		ns = append(ns, x.(*topoNode).node)
	}
	return ns
}

// topoNode ties a graph node to its topology Node.
type topoNode struct {
	graph.Node
	node *Node
}

func (n *topoNode) String() string { return n.node.ID }
