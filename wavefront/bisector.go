package wavefront

import (
	"math"

	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
)

// Params is the minimal read-only context wavefront needs from the
// scheduler to run its geometry: the target offset's sign (+1 grow, -1
// shrink) and the degeneracy tolerance. It is kept as its own tiny type
// (rather than wavefront importing engine.Context) to avoid a dependency
// cycle: engine depends on wavefront, not vice versa.
type Params struct {
	// DistanceSign is +1 for grow, -1 for shrink.
	DistanceSign float32

	// Epsilon is the degeneracy tolerance.
	Epsilon float32
}

// CalcBisector computes n's bisector from the directions to its two ring
// neighbours, following the edge-bisector construction of the core
// engine: all edges must advance at unit orthogonal speed regardless of
// the vertex's interior angle, which is what the 1/sin(angle) speed
// below achieves.
//
// Returns false (and zeroes Bisector, clears Reflex) when the vertex is
// geometrically degenerate: a two-node ring, a zero-length incident
// edge, or incident edges whose bisector direction is undefined
// (vanishing sin). Callers must route a false result to the
// degenerate-angle handler rather than scheduling edge/split events from
// a zeroed bisector.
func (n *Node) CalcBisector(p Params) bool {
	if n.Next.Next == n {
		// Ring has collapsed to two nodes; no interior angle exists.
		n.Bisector = vec2.Zero
		n.Reflex = false

		return false
	}

	vPrevRaw := vec2.Sub(n.Prev.Skel.P, n.Skel.P)
	vNextRaw := vec2.Sub(n.Next.Skel.P, n.Skel.P)

	if vec2.Length(vPrevRaw) < p.Epsilon || vec2.Length(vNextRaw) < p.Epsilon {
		n.Bisector = vec2.Zero
		n.Reflex = false

		return false
	}

	vPrev, _ := vec2.Normalize(vPrevRaw, p.Epsilon)
	vNext, _ := vec2.Normalize(vNextRaw, p.Epsilon)

	cosAngle := vec2.Dot(vPrev, vNext)
	if cosAngle < p.Epsilon-1 {
		// Edges are near-antiparallel (interior angle near 180 degrees):
		// the corner is flat and moves perpendicular to its edges.
		n.Bisector = vec2.Scale(vec2.Rotate90(vPrev), p.DistanceSign)
		n.Reflex = vec2.Dot(n.Bisector, vPrev) < 0

		return true
	}

	bDir, ok := vec2.Normalize(vec2.Add(vPrev, vNext), p.Epsilon)
	if !ok {
		n.Bisector = vec2.Zero
		n.Reflex = false

		return false
	}

	sinAngle := vec2.Determinant(vPrev, bDir)
	if absF32(sinAngle) < p.Epsilon {
		n.Bisector = vec2.Zero
		n.Reflex = false

		return false
	}

	speed := p.DistanceSign / sinAngle
	n.Bisector = vec2.Scale(bDir, speed)
	n.Reflex = vec2.Dot(n.Bisector, vPrev) < 0

	// Disabled: the original engine carried a reflex-side sanity check
	// here, re-deriving Reflex from vNext and asserting it agreed with
	// the vPrev-derived value above. Enabling it breaks grow operations
	// (DistanceSign > 0), so it stays commented out; reproduce, don't
	// re-enable without a regression test covering grow.
	//
	// if altReflex := vec2.Dot(n.Bisector, vNext) < 0; altReflex != n.Reflex {
	//     panic("calcBisector: reflex side disagreement")
	// }

	return true
}

// UpdateEdge recomputes EdgeDir (the unit direction from this node toward
// Next) and EdgeCollapseTime, the time until edge (n, n.Next) shrinks to
// zero length under the current bisectors. EdgeCollapseTime is NaN when
// the edge is growing, parallel-advancing, or degenerate (zero length).
func (n *Node) UpdateEdge(p Params) {
	delta := vec2.Sub(n.Next.Skel.P, n.Skel.P)
	length := vec2.Length(delta)

	dir, ok := vec2.Normalize(delta, p.Epsilon)
	if !ok {
		n.EdgeDir = vec2.Zero
		n.EdgeCollapseTime = float32(math.NaN())

		return
	}
	n.EdgeDir = dir

	denom := vec2.Dot(n.Bisector, dir) - vec2.Dot(n.Next.Bisector, dir)
	if denom > 0 {
		n.EdgeCollapseTime = length / denom
	} else {
		n.EdgeCollapseTime = float32(math.NaN())
	}
}

// LeaveSkeletonNode is called just before n starts moving away from its
// current skeleton position under a newly (re)computed bisector. It
// allocates a fresh skelgraph.Node at the same point, links a Mapping
// edge from the old node to the new one, and installs the new node as
// n.Skel. This is what causes the output graph to trace n's path: each
// change of bisector starts a new Mapping edge.
func (n *Node) LeaveSkeletonNode(arena *skelgraph.Graph) (*skelgraph.Node, error) {
	next := arena.Alloc(n.Skel.P)
	next.Reflex = n.Reflex
	if err := skelgraph.Link(n.Skel, next, skelgraph.Mapping); err != nil {
		return nil, err
	}
	n.Skel = next

	return next, nil
}

func absF32(f float32) float32 {
	if f < 0 {
		return -f
	}

	return f
}
