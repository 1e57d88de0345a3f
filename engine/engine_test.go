package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyskel/engine"
	"github.com/katalvlaran/polyskel/sevent"
	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

// buildRing seeds a Context's arena and live node set for the closed
// polygon pts (in CCW order), computing initial bisectors/edges and
// enqueuing the initial EdgeEvent/SplitEvent candidates the way the root
// driver's seedRing does, except that the seeded skeleton nodes are not
// left behind: the vertices move on them directly.
func buildRing(t *testing.T, ctx *engine.Context, pts []vec2.Vec2) []*wavefront.Node {
	t.Helper()

	arena := ctx.Arena()
	nodes := make([]*wavefront.Node, len(pts))
	for i, p := range pts {
		nodes[i] = wavefront.NewNode(i, arena.Alloc(p))
		ctx.AddRingNode(nodes[i])
	}
	for i := range nodes {
		wavefront.Link(nodes[i], nodes[(i+1)%len(nodes)])
	}

	params := wavefront.Params{DistanceSign: ctx.DistanceSign(), Epsilon: ctx.Epsilon()}
	for _, n := range nodes {
		require.True(t, n.CalcBisector(params))
	}
	for _, n := range nodes {
		n.UpdateEdge(params)
	}
	for _, n := range nodes {
		if ev, ok := sevent.NewEdgeEvent(ctx.Time(), ctx.Distance(), n, ctx.NextSerial()); ok {
			ctx.Enqueue(ev)
		}
		if n.Reflex {
			ctx.EnqueueNearestSplit(n)
		}
	}

	return nodes
}

func TestRun_SquareCollapsesToSinglePoint(t *testing.T) {
	ctx := engine.NewContext(engine.WithDistanceSign(-1))
	ctx.SetDistance(10, -1)

	pts := []vec2.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	buildRing(t, ctx, pts)

	require.NoError(t, ctx.Run())
	assert.Empty(t, ctx.Nodes(), "a square shrunk past its inradius has no live ring nodes left")
}

func TestRun_LShapeProducesASplit(t *testing.T) {
	ctx := engine.NewContext(engine.WithDistanceSign(-1))
	ctx.SetDistance(100, -1)

	pts := []vec2.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 8},
		{X: 7, Y: 8}, {X: 7, Y: 10}, {X: 0, Y: 10},
	}
	buildRing(t, ctx, pts)

	require.NoError(t, ctx.Run())

	// A split occurred if the arena holds more nodes than the 6 seeded
	// vertices plus whatever edge-collapse traces they leave behind;
	// the concrete assertion that matters here is that the run
	// terminates cleanly with no panics and an empty live set.
	assert.Empty(t, ctx.Nodes())
	assert.Greater(t, ctx.Arena().Len(), len(pts))
}

func TestRun_SquareGrows(t *testing.T) {
	ctx := engine.NewContext(engine.WithDistanceSign(1))
	ctx.SetDistance(5, 1)

	pts := []vec2.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	buildRing(t, ctx, pts)

	require.NoError(t, ctx.Run())
	assert.Len(t, ctx.Nodes(), 4, "growing a convex square never collapses or splits")
}
