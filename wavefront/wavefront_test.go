package wavefront_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

// square builds a 4-node CCW ring at the corners of [0,4]x[0,4] and
// returns the arena and the nodes in order.
func square(t *testing.T, arena *skelgraph.Graph) []*wavefront.Node {
	t.Helper()
	pts := []vec2.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	nodes := make([]*wavefront.Node, len(pts))
	for i, p := range pts {
		nodes[i] = wavefront.NewNode(i, arena.Alloc(p))
	}
	for i := range nodes {
		wavefront.Link(nodes[i], nodes[(i+1)%len(nodes)])
	}

	return nodes
}

func TestCalcBisector_Square(t *testing.T) {
	arena := skelgraph.NewGraph()
	nodes := square(t, arena)
	params := wavefront.Params{DistanceSign: -1, Epsilon: 1e-4}

	for _, n := range nodes {
		ok := n.CalcBisector(params)
		require.True(t, ok)
		assert.False(t, n.Reflex, "convex square has no reflex vertices")
	}

	// Each corner of a square bisects at 45 degrees; shrinking, the
	// bisector should point diagonally inward with magnitude sqrt(2).
	want := float32(math.Sqrt2)
	assert.InDelta(t, want, vec2.Length(nodes[0].Bisector), 1e-3)
}

func TestCalcBisector_TwoNodeRingIsDegenerate(t *testing.T) {
	arena := skelgraph.NewGraph()
	a := wavefront.NewNode(0, arena.Alloc(vec2.Vec2{X: 0, Y: 0}))
	b := wavefront.NewNode(1, arena.Alloc(vec2.Vec2{X: 1, Y: 0}))
	wavefront.Link(a, b)
	wavefront.Link(b, a)

	ok := a.CalcBisector(wavefront.Params{DistanceSign: -1, Epsilon: 1e-4})
	assert.False(t, ok)
	assert.Equal(t, vec2.Zero, a.Bisector)
}

func TestCalcBisector_ReflexVertex(t *testing.T) {
	// L-shape reflex vertex at (7,8): prev=(10,8), next=(7,10).
	arena := skelgraph.NewGraph()
	prev := wavefront.NewNode(0, arena.Alloc(vec2.Vec2{X: 10, Y: 8}))
	reflex := wavefront.NewNode(1, arena.Alloc(vec2.Vec2{X: 7, Y: 8}))
	next := wavefront.NewNode(2, arena.Alloc(vec2.Vec2{X: 7, Y: 10}))
	extra := wavefront.NewNode(3, arena.Alloc(vec2.Vec2{X: 0, Y: 10}))
	wavefront.Link(prev, reflex)
	wavefront.Link(reflex, next)
	wavefront.Link(next, extra)
	wavefront.Link(extra, prev)

	ok := reflex.CalcBisector(wavefront.Params{DistanceSign: -1, Epsilon: 1e-4})
	require.True(t, ok)
	assert.True(t, reflex.Reflex)
}

func TestUpdateEdge_CollapseTimePositiveWhenShrinking(t *testing.T) {
	arena := skelgraph.NewGraph()
	nodes := square(t, arena)
	params := wavefront.Params{DistanceSign: -1, Epsilon: 1e-4}
	for _, n := range nodes {
		n.CalcBisector(params)
	}
	for _, n := range nodes {
		n.UpdateEdge(params)
	}
	for _, n := range nodes {
		assert.False(t, math.IsNaN(float64(n.EdgeCollapseTime)))
		assert.Greater(t, n.EdgeCollapseTime, float32(0))
	}
}

func TestUpdateEdge_NaNWhenGrowing(t *testing.T) {
	arena := skelgraph.NewGraph()
	nodes := square(t, arena)
	params := wavefront.Params{DistanceSign: 1, Epsilon: 1e-4}
	for _, n := range nodes {
		n.CalcBisector(params)
	}
	for _, n := range nodes {
		n.UpdateEdge(params)
	}
	for _, n := range nodes {
		assert.True(t, math.IsNaN(float64(n.EdgeCollapseTime)), "growing square edges never collapse")
	}
}

func TestLeaveSkeletonNode_AppendsMappingEdge(t *testing.T) {
	arena := skelgraph.NewGraph()
	nodes := square(t, arena)
	old := nodes[0].Skel

	next, err := nodes[0].LeaveSkeletonNode(arena)
	require.NoError(t, err)
	assert.Same(t, next, nodes[0].Skel)

	kind, ok := old.HasOutgoing(next)
	require.True(t, ok)
	assert.Equal(t, skelgraph.Mapping, kind)
	assert.Equal(t, old.P, next.P)
}

func TestSplice_RemovesNodeFromRing(t *testing.T) {
	arena := skelgraph.NewGraph()
	nodes := square(t, arena)
	wavefront.Splice(nodes[1])

	assert.Equal(t, nodes[2], nodes[0].Next)
	assert.Equal(t, nodes[0], nodes[2].Prev)
	assert.Equal(t, 3, wavefront.RingSize(nodes[0], 10))
}

func TestAbortEvents_ClearsBackReferences(t *testing.T) {
	arena := skelgraph.NewGraph()
	nodes := square(t, arena)
	aborted := 0
	ref := fakeEvent(func() { aborted++ })
	nodes[0].AddEvent(ref)
	nodes[0].AbortEvents()
	assert.Equal(t, 1, aborted)
	assert.Empty(t, nodes[0].Events)
}

type fakeEventRef func()

func (f fakeEventRef) Abort() { f() }

func fakeEvent(onAbort func()) wavefront.EventRef {
	return fakeEventRef(onAbort)
}
