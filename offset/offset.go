// Package offset reconstructs a polygon cross-section at an arbitrary
// simulation time from an already-computed Result, without re-running
// the simulation. Each original vertex's trace through the skeleton
// graph is a sequence of straight segments (the moving node's bisector
// is constant direction×speed between LeaveSkeletonNode events), so the
// position at any t is a linear interpolation between the two
// consecutive skeleton nodes whose timestamps bracket it.
//
//	go get github.com/katalvlaran/polyskel/offset
package offset

import (
	"errors"

	"github.com/katalvlaran/polyskel"
	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
)

// ErrNegativeTime indicates a negative t was requested.
var ErrNegativeTime = errors.New("offset: t must be non-negative")

// walkLimit bounds the Mapping-chain traversal per vertex; a trace
// longer than this indicates a malformed graph rather than a
// legitimately long one.
const walkLimit = 1 << 20

// OffsetRing evaluates res at simulation time t, returning one position
// per original polygon vertex (in res.StartNodes order). t is clamped at
// each vertex's own trace: a vertex whose trace ended before t (it fully
// collapsed, or the run itself stopped early) simply holds its final
// position.
func OffsetRing(res *polyskel.Result, t float32) ([]vec2.Vec2, error) {
	if t < 0 {
		return nil, ErrNegativeTime
	}

	ring := make([]vec2.Vec2, len(res.StartNodes))
	for i, start := range res.StartNodes {
		chain := skelgraph.Walk(start, walkLimit)
		ring[i] = positionAt(chain, t)
	}

	return ring, nil
}

// positionAt linearly interpolates chain (a Mapping-ordered sequence of
// timestamped nodes) at time t.
func positionAt(chain []*skelgraph.Node, t float32) vec2.Vec2 {
	if len(chain) == 0 {
		return vec2.Zero
	}
	if t <= chain[0].T {
		return chain[0].P
	}

	for i := 0; i < len(chain)-1; i++ {
		a, b := chain[i], chain[i+1]
		if t <= b.T {
			span := b.T - a.T
			if span <= 0 {
				return a.P
			}

			frac := (t - a.T) / span

			return vec2.Add(a.P, vec2.Scale(vec2.Sub(b.P, a.P), frac))
		}
	}

	return chain[len(chain)-1].P
}
