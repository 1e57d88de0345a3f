package skelgraph

import "github.com/katalvlaran/polyskel/vec2"

// Graph owns the arena of Nodes produced during one simulation run. Nodes
// are appended as they are allocated (by the driver at initialization or
// by the wavefront during simulation) and are never removed; Graph gives
// the driver a single insertion-ordered view to hand back as
// Result.StartNodes / Result.EndNodes and lets tests walk every node in
// one pass to check the mapping-symmetry invariant.
type Graph struct {
	nodes []*Node
}

// NewGraph returns an empty arena.
func NewGraph() *Graph {
	return &Graph{}
}

// Alloc allocates a new Node at position p, appends it to the arena, and
// returns it.
func (g *Graph) Alloc(p vec2.Vec2) *Node {
	n := NewNode(p)
	g.nodes = append(g.nodes, n)

	return n
}

// Nodes returns the arena's nodes in allocation order. The returned slice
// is a live view into the arena and must not be mutated by callers.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Len returns the number of nodes allocated so far.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// CheckMappingSymmetry verifies that for every node x and every outgoing
// edge x.outgoing[y] == k, y.incoming[x] == k holds, and vice versa. It
// is intended for tests exercising the mapping-symmetry invariant, not
// for production use.
func (g *Graph) CheckMappingSymmetry() bool {
	for _, n := range g.nodes {
		for y, k := range n.outgoing {
			if got, ok := y.incoming[n]; !ok || got != k {
				return false
			}
		}
		for x, k := range n.incoming {
			if got, ok := x.outgoing[n]; !ok || got != k {
				return false
			}
		}
	}

	return true
}
