package polyskel

import (
	"github.com/katalvlaran/polyskel/engine"
	"github.com/katalvlaran/polyskel/loopset"
	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
)

// Result describes the skeleton graph produced by one Apply call.
type Result struct {
	// StartNodes are the original skeleton-graph nodes allocated for the
	// input polygon's vertices, in input order.
	StartNodes []*skelgraph.Node

	// EndNodes are every terminal node in Graph — those with an incoming
	// edge but no outgoing edge — in Graph allocation order. A vertex that
	// fully collapsed contributes its final node here; a vertex still live
	// when the simulation reached its target distance contributes its
	// current node. A node that an EdgeEvent merge left with no edges at
	// all is not included.
	EndNodes []*skelgraph.Node

	// Graph is the full append-only arena of skeleton nodes produced
	// during the run.
	Graph *skelgraph.Graph

	ctx *engine.Context
}

// PositionOf returns n's recorded position.
func (r *Result) PositionOf(n *skelgraph.Node) vec2.Vec2 { return n.P }

// NodeLoops returns the disjoint moving-node rings still live at the
// moment the simulation stopped (empty if the polygon fully collapsed
// before reaching Distance).
func (r *Result) NodeLoops() [][]*skelgraph.Node {
	rings := loopset.Loops(r.ctx)

	loops := make([][]*skelgraph.Node, len(rings))
	for i, ring := range rings {
		loop := make([]*skelgraph.Node, len(ring))
		for j, n := range ring {
			loop[j] = n.Skel
		}
		loops[i] = loop
	}

	return loops
}

func collectEndNodes(g *skelgraph.Graph) []*skelgraph.Node {
	var ends []*skelgraph.Node
	for _, n := range g.Nodes() {
		if n.Terminal() && len(n.Incoming()) > 0 {
			ends = append(ends, n)
		}
	}

	return ends
}
