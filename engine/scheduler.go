package engine

import (
	"github.com/katalvlaran/polyskel/sevent"
	"github.com/katalvlaran/polyskel/wavefront"
)

// The methods in this file implement sevent.Scheduler. They are kept
// together, separate from the simulation-loop logic in run.go and
// rehandle.go, so the contract a Handle implementation relies on is
// visible in one place.

// Time implements sevent.Scheduler.
func (c *Context) Time() float32 { return c.time }

// Epsilon implements sevent.Scheduler.
func (c *Context) Epsilon() float32 { return c.epsilon }

// DistanceSign implements sevent.Scheduler.
func (c *Context) DistanceSign() float32 { return c.distanceSign }

// Distance implements sevent.Scheduler.
func (c *Context) Distance() float32 { return c.distance }

// AddRingNode implements sevent.Scheduler.
func (c *Context) AddRingNode(n *wavefront.Node) {
	if _, ok := c.live[n]; ok {
		return
	}
	c.live[n] = struct{}{}
	c.nodes = append(c.nodes, n)
}

// RemoveRingNode implements sevent.Scheduler.
func (c *Context) RemoveRingNode(n *wavefront.Node) {
	if _, ok := c.live[n]; !ok {
		return
	}
	delete(c.live, n)
	for i, x := range c.nodes {
		if x == n {
			c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)

			break
		}
	}
}

// AbortNodeEvents implements sevent.Scheduler: every event referencing n
// is dequeued, has its back-references cleared on all of its
// participants, and, for a SplitEvent, has its reflex vertex marked for
// recheck.
func (c *Context) AbortNodeEvents(n *wavefront.Node) {
	// Snapshot first: ev.Abort() below mutates n.Events (and its other
	// participants' Events) in place via wavefront.Node.RemoveEvent.
	events := append([]wavefront.EventRef(nil), n.Events...)
	for _, ref := range events {
		ev, ok := ref.(sevent.Event)
		if !ok {
			continue
		}
		c.abortEvent(ev)
	}
}

// abortEvent retires ev: dequeues it, marks its reflex vertex (if any)
// for recheck, then clears its back-references. Idempotent via
// eventSet.Remove and Event.Abort both tolerating an already-gone event.
func (c *Context) abortEvent(ev sevent.Event) {
	c.queue.Remove(ev)
	if ev.Kind() == sevent.SplitKind {
		if p := ev.Participants(); len(p) > 0 {
			c.MarkAbortedReflex(p[0])
		}
	}
	ev.Abort()
}

// MarkAbortedReflex implements sevent.Scheduler.
func (c *Context) MarkAbortedReflex(n *wavefront.Node) {
	if _, ok := c.abortedReflexSet[n]; ok {
		return
	}
	c.abortedReflexSet[n] = struct{}{}
	c.abortedReflexOrder = append(c.abortedReflexOrder, n)
}

// NextNodeID implements sevent.Scheduler.
func (c *Context) NextNodeID() int {
	c.nodeIDCounter++

	return c.nodeIDCounter
}

// isLive reports whether n is still a live moving node.
func (c *Context) isLive(n *wavefront.Node) bool {
	_, ok := c.live[n]

	return ok
}
