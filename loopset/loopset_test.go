package loopset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyskel/engine"
	"github.com/katalvlaran/polyskel/loopset"
	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

func ring(ctx *engine.Context, pts []vec2.Vec2) []*wavefront.Node {
	arena := ctx.Arena()
	nodes := make([]*wavefront.Node, len(pts))
	for i, p := range pts {
		nodes[i] = wavefront.NewNode(i, arena.Alloc(p))
		ctx.AddRingNode(nodes[i])
	}
	for i := range nodes {
		wavefront.Link(nodes[i], nodes[(i+1)%len(nodes)])
	}

	return nodes
}

func TestLoops_SingleRing(t *testing.T) {
	ctx := engine.NewContext()
	nodes := ring(ctx, []vec2.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})

	loops := loopset.Loops(ctx)
	require.Len(t, loops, 1)
	assert.ElementsMatch(t, nodes, loops[0])
}

func TestLoops_TwoDisjointRings(t *testing.T) {
	ctx := engine.NewContext()
	a := ring(ctx, []vec2.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	b := ring(ctx, []vec2.Vec2{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}})

	loops := loopset.Loops(ctx)
	require.Len(t, loops, 2)
	assert.ElementsMatch(t, a, loops[0])
	assert.ElementsMatch(t, b, loops[1])
}
