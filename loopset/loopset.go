// Package loopset recovers the disjoint cyclic rings currently live in
// an engine.Context's moving-node set. It is written ring-agnostic —
// it walks whatever Next-linked cycles it finds, regardless of how many
// there are — so that a future multi-loop driver (holes, multiple
// boundary polygons) needs no changes here; only the single-ring driver
// in the root polyskel package is the current limitation.
package loopset

import (
	"github.com/katalvlaran/polyskel/engine"
	"github.com/katalvlaran/polyskel/wavefront"
)

// Loops walks ctx.Nodes() and groups them into their disjoint cyclic
// rings via Next pointers, returning each ring's nodes in traversal
// order starting from whichever of its nodes appears first in
// ctx.Nodes().
func Loops(ctx *engine.Context) [][]*wavefront.Node {
	nodes := ctx.Nodes()
	seen := make(map[*wavefront.Node]bool, len(nodes))

	var loops [][]*wavefront.Node
	for _, start := range nodes {
		if seen[start] {
			continue
		}

		var loop []*wavefront.Node
		for cur := start; !seen[cur]; cur = cur.Next {
			seen[cur] = true
			loop = append(loop, cur)
		}
		loops = append(loops, loop)
	}

	return loops
}
