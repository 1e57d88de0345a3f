package engine

import (
	"github.com/katalvlaran/polyskel/sevent"
	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/vec2"
	"github.com/katalvlaran/polyskel/wavefront"
)

// ringSizeGuard bounds wavefront.RingSize's traversal: a ring larger than
// this in a correctly-built polygon indicates a linkage bug rather than a
// legitimately huge input, so counting stops early instead of looping
// forever on a broken ring.
const ringSizeGuard = 1 << 20

// Rehandle implements sevent.Scheduler: the shared post-mutation
// finisher run after every EdgeEvent/SplitEvent fires. It recomputes
// node's bisector and, as long as the vertex there stays degenerate (a
// zero-length incident edge, or incident edges folded onto each other so
// the bisector's sin vanishes), absorbs node into its neighbours and
// retries at whichever neighbour is closer, until either a valid
// bisector is found or the ring collapses entirely.
func (c *Context) Rehandle(node *wavefront.Node) {
	cur := node
	for {
		size := wavefront.RingSize(cur, ringSizeGuard)
		if size <= 1 {
			c.RemoveRingNode(cur)

			return
		}
		if size == 2 {
			c.collapseRingOfTwo(cur)

			return
		}

		params := wavefront.Params{DistanceSign: c.distanceSign, Epsilon: c.epsilon}
		if cur.CalcBisector(params) {
			next, err := cur.LeaveSkeletonNode(c.arena)
			if err != nil {
				panic("engine: LeaveSkeletonNode on a live ring node: " + err.Error())
			}
			next.T = c.time
			cur.UpdateEdge(params)
			cur.Prev.UpdateEdge(params)

			c.regenerateEvents(cur)

			return
		}

		cur = c.handleDegenerateAngle(cur)
	}
}

// collapseRingOfTwo closes out a ring that has degenerated to exactly
// two live nodes: it records a Degeneracy edge between their current
// skeleton nodes (if they don't already share one) and retires both.
func (c *Context) collapseRingOfTwo(n *wavefront.Node) {
	other := n.Next
	if other != n && n.Skel != other.Skel {
		_ = skelgraph.Link(n.Skel, other.Skel, skelgraph.Degeneracy)
	}

	c.AbortNodeEvents(n)
	c.RemoveRingNode(n)
	if other != n {
		c.AbortNodeEvents(other)
		c.RemoveRingNode(other)
	}
}

// handleDegenerateAngle absorbs n — whose bisector could not be computed
// because an incident edge has zero length or its incident edges point
// the same way within tolerance — into the ring by splicing it out and connecting its
// neighbours with a Degeneracy edge to whichever of them sits closer to
// n's current position. It returns the neighbour Rehandle should
// continue at.
func (c *Context) handleDegenerateAngle(n *wavefront.Node) *wavefront.Node {
	prev, next := n.Prev, n.Next

	wavefront.Splice(n)
	c.AbortNodeEvents(n)
	c.RemoveRingNode(n)

	target := prev
	if vec2.Distance(n.Skel.P, next.Skel.P) < vec2.Distance(n.Skel.P, prev.Skel.P) {
		target = next
	}
	if n.Skel != target.Skel {
		_ = skelgraph.Link(n.Skel, target.Skel, skelgraph.Degeneracy)
	}

	return target
}

// regenerateEvents aborts every event touching node, then enqueues fresh
// EdgeEvents for the two ring edges now incident to it and, if node is
// still reflex, its single nearest SplitEvent candidate.
func (c *Context) regenerateEvents(node *wavefront.Node) {
	c.AbortNodeEvents(node)

	c.enqueueEdgeEvent(node.Prev)
	c.enqueueEdgeEvent(node)

	if node.Reflex {
		c.EnqueueNearestSplit(node)
	}
}

func (c *Context) enqueueEdgeEvent(n *wavefront.Node) {
	ev, ok := sevent.NewEdgeEvent(c.time, c.distance, n, c.nextSerial())
	if ok {
		c.queue.Enqueue(ev)
	}
}

// EnqueueNearestSplit scans every ring edge eligible as an opposite side
// for reflex (those separated from it by at least two ring edges in
// each direction — see eligibleSplitEdge) and enqueues only the single
// candidate with the smallest absolute hit time, matching §4.5's
// "split-event economy". SplitEvents already queued for reflex are not
// aborted here, so a reflex vertex that is rehandled and also marked for
// recheck in the same step can hold two queued SplitEvents.
func (c *Context) EnqueueNearestSplit(reflex *wavefront.Node) {
	var bestA, bestB *wavefront.Node
	var bestAbs float32
	found := false

	for a := reflex.Next; a != reflex; a = a.Next {
		b := a.Next
		if !eligibleSplitEdge(reflex, a, b) {
			continue
		}

		dt, ok := sevent.SplitTime(c.distanceSign, reflex, a, b)
		if !ok {
			continue
		}

		abs := c.time + dt
		if !sevent.ValidTime(abs, c.distance) {
			continue
		}

		if !found || abs < bestAbs {
			bestA, bestB, bestAbs, found = a, b, abs, true
		}
	}

	if !found {
		return
	}

	ev, ok := sevent.NewSplitEvent(c.time, c.distance, c.distanceSign, reflex, bestA, bestB, c.nextSerial())
	if ok {
		c.queue.Enqueue(ev)
	}
}

// eligibleSplitEdge reports whether edge (a, b) is a valid opposite side
// for reflex: neither endpoint may be reflex itself or either of its two
// immediate ring neighbours. For a ring of 4 or fewer live vertices this
// excludes every edge: a quadrilateral reflex vertex (and smaller) never
// produces a valid split.
func eligibleSplitEdge(reflex, a, b *wavefront.Node) bool {
	excluded := [...]*wavefront.Node{reflex, reflex.Next, reflex.Prev}
	for _, x := range excluded {
		if a == x || b == x {
			return false
		}
	}

	return true
}
